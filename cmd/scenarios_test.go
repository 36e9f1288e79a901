package cmd_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"marketplace/cmd"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var (
	buyer     = kernel.MustNewParty("0x1111111111111111111111111111111111111111")
	seller    = kernel.MustNewParty("0x2222222222222222222222222222222222222222")
	courier   = kernel.MustNewParty("0x3333333333333333333333333333333333333333")
	owner     = kernel.MustNewParty("0x5555555555555555555555555555555555555555")
	trackerID = kernel.MustNewParty("0x9999999999999999999999999999999999999999")
	oneEther  = kernel.MustAmount("1000000000000000000")
)

type ScenarioTestSuite struct {
	suite.Suite
	db   *gorm.DB
	root cmd.CompositionRoot
}

func (s *ScenarioTestSuite) SetupTest() {
	cfg := cmd.Config{
		DBDriver:       cmd.DriverSQLite,
		SQLitePath:     filepath.Join(s.T().TempDir(), "marketplace.db"),
		OwnerAddress:   owner.String(),
		TrackerAddress: trackerID.String(),
		PlatformFeeBP:  int(ledger.DefaultPlatformFee),
		JWTSecret:      "secret",
	}

	db, err := cmd.OpenDatabase(cfg)
	s.Require().NoError(err)
	s.db = db

	s.root, err = cmd.NewCompositionRoot(cfg, db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.Require().NoError(s.root.InitializePlatform(s.T().Context()))
}

func (s *ScenarioTestSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *ScenarioTestSuite) createOrder() kernel.OrderID {
	command, err := commands.NewCreateOrderCommand(buyer, seller, oneEther, oneEther)
	s.Require().NoError(err)
	h := s.root.CreateCreateOrderCommandHandler()
	id, err := h.Handle(s.T().Context(), command)
	s.Require().NoError(err)
	return id
}

func (s *ScenarioTestSuite) raiseDispute(id kernel.OrderID, caller kernel.Party, reason string) error {
	command, err := commands.NewRaiseDisputeCommand(id, caller, reason)
	s.Require().NoError(err)
	h := s.root.CreateRaiseDisputeCommandHandler()
	return h.Handle(s.T().Context(), command)
}

func (s *ScenarioTestSuite) bindTracker() {
	command, err := commands.NewSetOrderTrackingCommand(owner, trackerID)
	s.Require().NoError(err)
	h := s.root.CreatePlatformCommandHandler()
	s.Require().NoError(h.SetOrderTracking(s.T().Context(), command))
}

func (s *ScenarioTestSuite) deliver(id kernel.OrderID) {
	ctx := s.T().Context()
	h := s.root.CreateDeliveryCommandHandler()

	create, err := commands.NewCreateDeliveryCommand(id, buyer, seller)
	s.Require().NoError(err)
	s.Require().NoError(h.CreateDelivery(ctx, create))

	assign, err := commands.NewSetCourierCommand(id, seller, courier)
	s.Require().NoError(err)
	s.Require().NoError(h.SetCourier(ctx, assign))

	shipped, err := commands.NewConfirmShippedCommand(id, courier)
	s.Require().NoError(err)
	s.Require().NoError(h.Advance(ctx, shipped))

	delivered, err := commands.NewConfirmDeliveryCommand(id, courier)
	s.Require().NoError(err)
	s.Require().NoError(h.Advance(ctx, delivered))
}

func (s *ScenarioTestSuite) complete(id kernel.OrderID) {
	command, err := commands.NewCompleteOrderCommand(id, buyer)
	s.Require().NoError(err)
	h := s.root.CreateCompleteOrderCommandHandler()
	s.Require().NoError(h.Handle(s.T().Context(), command))
}

func (s *ScenarioTestSuite) platform() queries.PlatformView {
	view, err := s.root.CreateGetPlatformQueryHandler().Handle(s.T().Context(), queries.NewGetPlatformQuery())
	s.Require().NoError(err)
	return view
}

func (s *ScenarioTestSuite) payouts() []ledger.PayoutRequested {
	var rows []outboxrepo.MessageDTO
	s.Require().NoError(s.db.
		Where("name = ?", ledger.PayoutRequestedEventName).
		Order("position").
		Find(&rows).Error)

	payouts := make([]ledger.PayoutRequested, 0, len(rows))
	for _, row := range rows {
		var p ledger.PayoutRequested
		s.Require().NoError(json.Unmarshal([]byte(row.Payload), &p))
		payouts = append(payouts, p)
	}
	return payouts
}

func (s *ScenarioTestSuite) TestDisputeClosesFurtherDisputes() {
	ctx := s.T().Context()
	id := s.createOrder()
	orders := s.root.CreateOrderQueryHandler()

	canRaise := func(p kernel.Party) bool {
		q, err := queries.NewCanRaiseDisputeQuery(id, p)
		s.Require().NoError(err)
		ok, err := orders.CanRaiseDispute(ctx, q)
		s.Require().NoError(err)
		return ok
	}
	s.True(canRaise(buyer))

	s.Require().NoError(s.raiseDispute(id, buyer, "item damaged"))

	s.False(canRaise(buyer))
	s.False(canRaise(seller))

	dispute, err := orders.GetDispute(ctx, queries.NewOrderQuery(id))
	s.Require().NoError(err)
	s.True(dispute.Exists)
	s.Equal("item damaged", dispute.Reason)
	s.True(dispute.OpenedBy.IsEqual(buyer))
}

func (s *ScenarioTestSuite) TestDeliveredOrderPaysSellerMinusFee() {
	s.bindTracker()
	id := s.createOrder()
	s.deliver(id)
	s.complete(id)

	s.Equal("25000000000000000", s.platform().Balance.String())

	escrow, err := s.root.CreateOrderQueryHandler().GetEscrow(s.T().Context(), queries.NewOrderQuery(id))
	s.Require().NoError(err)
	s.Equal(ledger.Released, escrow.Status)

	payouts := s.payouts()
	s.Require().Len(payouts, 1)
	s.Equal(seller.String(), payouts[0].Beneficiary)
	s.Equal("975000000000000000", payouts[0].Amount)
	s.Equal(ledger.PayoutRelease, payouts[0].Reason)
}

func (s *ScenarioTestSuite) TestRefundLeavesPlatformBalanceUntouched() {
	id := s.createOrder()
	s.Require().NoError(s.raiseDispute(id, buyer, "never arrived"))

	command, err := commands.NewApproveRefundCommand(id, owner)
	s.Require().NoError(err)
	h := s.root.CreateResolveDisputeCommandHandler()
	s.Require().NoError(h.Handle(s.T().Context(), command))

	escrow, err := s.root.CreateOrderQueryHandler().GetEscrow(s.T().Context(), queries.NewOrderQuery(id))
	s.Require().NoError(err)
	s.Equal(ledger.Refunded, escrow.Status)
	s.True(s.platform().Balance.IsZero())

	payouts := s.payouts()
	s.Require().Len(payouts, 1)
	s.Equal(buyer.String(), payouts[0].Beneficiary)
	s.Equal(oneEther.String(), payouts[0].Amount)
}

func (s *ScenarioTestSuite) TestReleaseWithoutTrackerIsNotConfigured() {
	id := s.createOrder()
	s.Require().NoError(s.raiseDispute(id, seller, "buyer unresponsive"))

	command, err := commands.NewRejectRefundCommand(id, owner)
	s.Require().NoError(err)
	h := s.root.CreateResolveDisputeCommandHandler()
	err = h.Handle(s.T().Context(), command)

	s.Require().ErrorIs(err, errs.ErrNotConfigured)
	s.Equal("Order tracking not set", errs.Reason(err))

	order, err := s.root.CreateOrderQueryHandler().GetOrder(s.T().Context(), queries.NewOrderQuery(id))
	s.Require().NoError(err)
	s.Equal(ledger.Disputed, order.Status)
}

func (s *ScenarioTestSuite) TestWithdrawalLeavesOtherEscrowsInCustody() {
	s.bindTracker()
	first := s.createOrder()
	second := s.createOrder()
	s.deliver(first)
	s.complete(first)

	before := s.platform()
	s.Equal("1025000000000000000", before.Custody.String())

	command, err := commands.NewWithdrawPlatformFeesCommand(owner)
	s.Require().NoError(err)
	h := s.root.CreatePlatformCommandHandler()
	amount, err := h.WithdrawPlatformFees(s.T().Context(), command)
	s.Require().NoError(err)
	s.Equal("25000000000000000", amount.String())

	after := s.platform()
	s.True(after.Balance.IsZero())
	s.Equal(oneEther.String(), after.Custody.String())

	escrow, err := s.root.CreateOrderQueryHandler().GetEscrow(s.T().Context(), queries.NewOrderQuery(second))
	s.Require().NoError(err)
	s.Equal(ledger.Locked, escrow.Status)
	s.Equal(oneEther.String(), escrow.Amount.String())
}

func (s *ScenarioTestSuite) TestDeliveryStatusOfUnknownOrderIsNone() {
	status, err := s.root.CreateDeliveryQueryHandler().GetDeliveryStatus(s.T().Context(), queries.NewDeliveryQuery(404))
	s.Require().NoError(err)
	s.Equal(tracking.None, status)
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}

func TestNewCompositionRoot_RejectsBadTracker(t *testing.T) {
	_, err := cmd.NewCompositionRoot(cmd.Config{TrackerAddress: "nope"}, nil, slog.Default())
	require.Error(t, err)
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("OWNER_ADDRESS", owner.String())
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", cmd.DriverSQLite)
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 250, cfg.PlatformFeeBP)
	assert.Equal(t, 100, cfg.OutboxBatchSize)
}

func TestLoadConfig_RequiresOwner(t *testing.T) {
	t.Setenv("OWNER_ADDRESS", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
}
