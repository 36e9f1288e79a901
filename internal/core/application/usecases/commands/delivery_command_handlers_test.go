package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveryHandler(uow *MockUoW) *commands.DeliveryCommandHandler {
	factory := new(MockFactory)
	factory.On("next").Return(uow).Once()
	handler := commands.NewDeliveryCommandHandler(deliveryFactory{factory})
	return &handler
}

func TestDeliveryCommandHandler_CreateDelivery(t *testing.T) {
	t.Run("registers record", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateDeliveryCommand(1, buyer, seller)

		uow := newMockUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.Deliveries.On("Add", ctx, anyRecord).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		require.NoError(t, deliveryHandler(uow).CreateDelivery(ctx, cmd))
		uow.Deliveries.AssertExpectations(t)
	})

	t.Run("duplicate is reported", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateDeliveryCommand(1, buyer, seller)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Deliveries.On("Add", ctx, anyRecord).Return(errs.NewDuplicateOrderError("Order already exists")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := deliveryHandler(uow).CreateDelivery(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDuplicateOrder)
	})

	t.Run("zero buyer never reaches storage", func(t *testing.T) {
		cmd, _ := commands.NewCreateDeliveryCommand(1, kernel.ZeroParty(), seller)

		err := deliveryHandler(newMockUoW()).CreateDelivery(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestDeliveryCommandHandler_Advance(t *testing.T) {
	t.Run("courier confirms shipment", func(t *testing.T) {
		ctx := t.Context()
		record, err := tracking.RestoreRecord(5, buyer, seller, courier, tracking.Created, 1)
		require.NoError(t, err)
		cmd, _ := commands.NewConfirmShippedCommand(5, courier)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Deliveries.On("Get", ctx, kernel.OrderID(5)).Return(record, nil).Once()
		uow.Deliveries.On("Update", ctx, record).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		require.NoError(t, deliveryHandler(uow).Advance(ctx, cmd))
		assert.Equal(t, tracking.Shipped, record.Status())
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewConfirmDeliveryCommand(77, buyer)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Deliveries.On("Get", ctx, kernel.OrderID(77)).Return(nil, errs.NewObjectNotFoundError("delivery", int64(77))).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := deliveryHandler(uow).Advance(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("delivery before shipment", func(t *testing.T) {
		ctx := t.Context()
		record, err := tracking.RestoreRecord(5, buyer, seller, courier, tracking.Created, 1)
		require.NoError(t, err)
		cmd, _ := commands.NewConfirmDeliveryCommand(5, buyer)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Deliveries.On("Get", ctx, kernel.OrderID(5)).Return(record, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = deliveryHandler(uow).Advance(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "Order not in Shipped state", errs.Reason(err))
	})
}

func TestDeliveryCommandHandler_SetCourier(t *testing.T) {
	ctx := t.Context()
	record, err := tracking.RestoreRecord(6, buyer, seller, kernel.ZeroParty(), tracking.Created, 1)
	require.NoError(t, err)
	cmd, _ := commands.NewSetCourierCommand(6, buyer, courier)

	uow := newMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.Deliveries.On("Get", ctx, kernel.OrderID(6)).Return(record, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = deliveryHandler(uow).SetCourier(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, "Not seller", errs.Reason(err))
}
