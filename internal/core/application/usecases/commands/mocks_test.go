package commands_test

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextOrderID(ctx context.Context) (kernel.OrderID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}
func (m *MockOrderRepository) Add(ctx context.Context, o *ledger.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *ledger.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*ledger.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*ledger.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) Find(ctx context.Context, id kernel.OrderID) (*ledger.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*ledger.Order)
	return o, args.Error(1)
}

type MockPlatformRepository struct{ mock.Mock }

func (m *MockPlatformRepository) Add(ctx context.Context, p *ledger.Platform) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPlatformRepository) Update(ctx context.Context, p *ledger.Platform) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPlatformRepository) Get(ctx context.Context) (*ledger.Platform, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*ledger.Platform)
	return p, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, r *tracking.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, r *tracking.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.OrderID) (*tracking.Record, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*tracking.Record)
	return r, args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Pending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}
func (m *MockOutboxRepository) MarkDispatched(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
func (m *MockOutboxRepository) PurgeDispatched(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

type MockStatusReader struct{ mock.Mock }

func (m *MockStatusReader) DeliveryStatus(ctx context.Context, id kernel.OrderID) (tracking.Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(tracking.Status), args.Error(1)
}

// StaticRegistry resolves exactly the trackers it was given.
type StaticRegistry map[kernel.Party]ports.DeliveryStatusReader

func (r StaticRegistry) Resolve(tracker kernel.Party) (ports.DeliveryStatusReader, bool) {
	reader, ok := r[tracker]
	return reader, ok
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockUoW satisfies every unit of work shape the handlers ask for.
type MockUoW struct {
	MockTx

	Orders     *MockOrderRepository
	Platforms  *MockPlatformRepository
	Deliveries *MockDeliveryRepository
	Outbox     *MockOutboxRepository
	Registry   ports.TrackerRegistry
}

func (m *MockUoW) OrderRepository() ports.LedgerOrderRepository       { return m.Orders }
func (m *MockUoW) PlatformRepository() ports.PlatformRepository       { return m.Platforms }
func (m *MockUoW) DeliveryRepository() ports.DeliveryRecordRepository { return m.Deliveries }
func (m *MockUoW) TrackerRegistry() ports.TrackerRegistry             { return m.Registry }
func (m *MockUoW) OutboxRepository() ports.OutboxRepository           { return m.Outbox }

func newMockUoW() *MockUoW {
	return &MockUoW{
		Orders:     new(MockOrderRepository),
		Platforms:  new(MockPlatformRepository),
		Deliveries: new(MockDeliveryRepository),
		Outbox:     new(MockOutboxRepository),
		Registry:   StaticRegistry{},
	}
}

type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) next() *MockUoW {
	args := m.Called()
	return args.Get(0).(*MockUoW)
}

type ledgerFactory struct{ *MockFactory }

func (f ledgerFactory) Create() commands.LedgerUoW { return f.next() }

type platformFactory struct{ *MockFactory }

func (f platformFactory) Create() commands.PlatformUoW { return f.next() }

type outboxFactory struct{ *MockFactory }

func (f outboxFactory) Create() commands.OutboxUoW { return f.next() }

type deliveryFactory struct{ *MockFactory }

func (f deliveryFactory) Create() commands.DeliveryUoW { return f.next() }

var (
	buyer      = kernel.MustNewParty("0x1111111111111111111111111111111111111111")
	seller     = kernel.MustNewParty("0x2222222222222222222222222222222222222222")
	courier    = kernel.MustNewParty("0x3333333333333333333333333333333333333333")
	outsider   = kernel.MustNewParty("0x4444444444444444444444444444444444444444")
	owner      = kernel.MustNewParty("0x5555555555555555555555555555555555555555")
	trackerID  = kernel.MustNewParty("0x9999999999999999999999999999999999999999")
	oneEther   = kernel.MustAmount("1000000000000000000")
	halfEther  = kernel.MustAmount("500000000000000000")
	anyOrder   = mock.AnythingOfType("*ledger.Order")
	anyRecord  = mock.AnythingOfType("*tracking.Record")
	anyContext = mock.Anything
)
