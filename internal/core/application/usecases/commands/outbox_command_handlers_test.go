package commands_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxHandler(uow *MockUoW, publisher *MockPublisher) commands.OutboxCommandHandler {
	factory := new(MockFactory)
	factory.On("next").Return(uow).Once()
	return commands.NewOutboxCommandHandler(outboxFactory{factory}, publisher)
}

func TestNewDispatchOutboxCommand(t *testing.T) {
	_, err := commands.NewDispatchOutboxCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewDispatchOutboxCommand(50)
	require.NoError(t, err)
	assert.Equal(t, 50, cmd.BatchSize())
}

func TestOutboxCommandHandler_Dispatch(t *testing.T) {
	t.Run("publishes then marks dispatched", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewDispatchOutboxCommand(10)
		pending := []ports.OutboxMessage{
			{ID: kernel.NewUUID(), Name: "ledger.order_created", Key: "1"},
			{ID: kernel.NewUUID(), Name: "ledger.payout_requested", Key: "1"},
		}

		uow := newMockUoW()
		publisher := new(MockPublisher)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.Outbox.On("Pending", ctx, 10).Return(pending, nil).Once(),
			publisher.On("Publish", ctx, pending).Return(nil).Once(),
			uow.Outbox.On("MarkDispatched", ctx, []kernel.UUID{pending[0].ID, pending[1].ID}).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		sent, err := outboxHandler(uow, publisher).Dispatch(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		uow.Outbox.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("publisher failure leaves messages pending", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewDispatchOutboxCommand(10)
		pending := []ports.OutboxMessage{{ID: kernel.NewUUID(), Name: "x", Key: "1"}}

		uow := newMockUoW()
		publisher := new(MockPublisher)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Outbox.On("Pending", ctx, 10).Return(pending, nil).Once()
		publisher.On("Publish", ctx, pending).Return(errors.New("broker down")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := outboxHandler(uow, publisher).Dispatch(ctx, cmd)

		require.EqualError(t, err, "broker down")
		uow.Outbox.AssertNotCalled(t, "MarkDispatched", anyContext, mock.Anything)
		uow.AssertNotCalled(t, "Commit", anyContext)
	})

	t.Run("empty outbox publishes nothing", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewDispatchOutboxCommand(10)

		uow := newMockUoW()
		publisher := new(MockPublisher)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Outbox.On("Pending", ctx, 10).Return(nil, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		sent, err := outboxHandler(uow, publisher).Dispatch(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, sent)
		publisher.AssertNotCalled(t, "Publish", anyContext, mock.Anything)
	})
}

func TestOutboxCommandHandler_Purge(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewPurgeOutboxCommand(cutoff)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.Outbox.On("PurgeDispatched", ctx, cutoff).Return(int64(3), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	removed, err := outboxHandler(uow, new(MockPublisher)).Purge(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
