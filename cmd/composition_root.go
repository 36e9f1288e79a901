package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases over gormDB. The tracker hosted by
// this deployment is TRACKER_ADDRESS; when unset the ledger runs without a
// reachable tracker.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	var trackers []kernel.Party
	if cfg.TrackerAddress != "" {
		tracker, err := kernel.NewParty(cfg.TrackerAddress)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("TRACKER_ADDRESS: %w", err)
		}
		trackers = append(trackers, tracker)
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, trackers...),
		logger:     logger,
	}, nil
}

// InitializePlatform creates the platform account on first start.
func (c *CompositionRoot) InitializePlatform(ctx context.Context) error {
	owner, err := kernel.NewParty(c.cfg.OwnerAddress)
	if err != nil {
		return fmt.Errorf("OWNER_ADDRESS: %w", err)
	}
	fee, err := kernel.NewBasisPoints(c.cfg.PlatformFeeBP)
	if err != nil {
		return fmt.Errorf("PLATFORM_FEE_BP: %w", err)
	}

	cmd, err := commands.NewInitializePlatformCommand(owner, fee)
	if err != nil {
		return err
	}
	h := c.CreatePlatformCommandHandler()
	return h.Initialize(ctx, cmd)
}

func (c *CompositionRoot) ledgerUoWFactory() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateRaiseDisputeCommandHandler() commands.RaiseDisputeCommandHandler {
	return commands.NewRaiseDisputeCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	return commands.NewResolveDisputeCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreatePlatformCommandHandler() commands.PlatformCommandHandler {
	var f commands.PlatformUoWFactory = FuncPlatformUoWFactory(func() commands.PlatformUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewPlatformCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliveryCommandHandler() commands.DeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateOutboxCommandHandler(publisher ports.MessagePublisher) commands.OutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewOutboxCommandHandler(f, publisher)
}

func (c *CompositionRoot) CreateOrderQueryHandler() queries.OrderQueryHandler {
	return queries.NewOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePreviewCreateOrderQueryHandler() queries.PreviewCreateOrderQueryHandler {
	var f queries.PreviewUoWFactory = FuncPreviewUoWFactory(func() queries.PreviewUoW {
		return c.uowFactory.CreateGorm()
	})
	return queries.NewPreviewCreateOrderQueryHandler(f)
}

func (c *CompositionRoot) CreateGetPlatformQueryHandler() queries.GetPlatformQueryHandler {
	return queries.NewGetPlatformQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDeliveryQueryHandler() queries.DeliveryQueryHandler {
	return queries.NewDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		RaiseDispute:   c.CreateRaiseDisputeCommandHandler(),
		ResolveDispute: c.CreateResolveDisputeCommandHandler(),
		CompleteOrder:  c.CreateCompleteOrderCommandHandler(),
		Platform:       c.CreatePlatformCommandHandler(),
		Delivery:       c.CreateDeliveryCommandHandler(),

		Orders:        c.CreateOrderQueryHandler(),
		PreviewOrder:  c.CreatePreviewCreateOrderQueryHandler(),
		PlatformQuery: c.CreateGetPlatformQueryHandler(),
		Deliveries:    c.CreateDeliveryQueryHandler(),
	}
	return httpin.NewServer(handlers, httpin.NewAuthenticator(c.cfg.JWTSecret), c.logger)
}

func (c *CompositionRoot) CreateJobManager(publisher ports.MessagePublisher) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateOutboxCommandHandler(publisher),
		jobs.OutboxSettings{
			Schedule:  c.cfg.OutboxSchedule,
			BatchSize: c.cfg.OutboxBatchSize,
			Retention: c.cfg.OutboxRetention,
		},
		c.logger,
	)
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncPlatformUoWFactory func() commands.PlatformUoW

func (f FuncPlatformUoWFactory) Create() commands.PlatformUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncPreviewUoWFactory func() queries.PreviewUoW

func (f FuncPreviewUoWFactory) Create() queries.PreviewUoW {
	return f()
}
