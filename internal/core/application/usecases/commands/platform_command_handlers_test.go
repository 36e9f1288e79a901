package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func platformHandler(uow *MockUoW) (commands.PlatformCommandHandler, *MockFactory) {
	factory := new(MockFactory)
	factory.On("next").Return(uow).Once()
	return commands.NewPlatformCommandHandler(platformFactory{factory}), factory
}

func TestPlatformCommandHandler_Initialize(t *testing.T) {
	t.Run("creates missing platform", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewInitializePlatformCommand(owner, ledger.DefaultPlatformFee)

		uow := newMockUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.Platforms.On("Get", ctx).Return(nil, errs.NewObjectNotFoundError("platform", 1)).Once(),
			uow.Platforms.On("Add", ctx, mock.AnythingOfType("*ledger.Platform")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		h, _ := platformHandler(uow)

		require.NoError(t, h.Initialize(ctx, cmd))
		uow.AssertExpectations(t)
		uow.Platforms.AssertExpectations(t)
	})

	t.Run("keeps existing platform", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewInitializePlatformCommand(owner, 100)
		existing := platformWithTracker(t, false)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Platforms.On("Get", ctx).Return(existing, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		h, _ := platformHandler(uow)

		require.NoError(t, h.Initialize(ctx, cmd))
		uow.Platforms.AssertNotCalled(t, "Add", anyContext, mock.Anything)
		assert.Equal(t, ledger.DefaultPlatformFee, existing.Fee())
	})
}

func TestPlatformCommandHandler_SetPlatformFee(t *testing.T) {
	t.Run("owner sets fee", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewSetPlatformFeeCommand(owner, 400)
		platform := platformWithTracker(t, false)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Platforms.On("Get", ctx).Return(platform, nil).Once()
		uow.Platforms.On("Update", ctx, platform).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		h, _ := platformHandler(uow)

		require.NoError(t, h.SetPlatformFee(ctx, cmd))
		assert.Equal(t, kernel.BasisPoints(400), platform.Fee())
	})

	t.Run("fee above cap is rejected", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewSetPlatformFeeCommand(owner, 501)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Platforms.On("Get", ctx).Return(platformWithTracker(t, false), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		h, _ := platformHandler(uow)

		err := h.SetPlatformFee(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Equal(t, "Fee too high", errs.Reason(err))
	})
}

func TestPlatformCommandHandler_WithdrawPlatformFees(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewWithdrawPlatformFeesCommand(owner)
	platform, err := ledger.RestorePlatform(owner, owner, 250, kernel.MustAmount("25"), kernel.ZeroParty(), 3)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.Platforms.On("Get", ctx).Return(platform, nil).Once()
	uow.Platforms.On("Update", ctx, platform).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	h, _ := platformHandler(uow)

	amount, err := h.WithdrawPlatformFees(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "25", amount.String())
	assert.True(t, platform.Balance().IsZero())
}

func TestPlatformCommandHandler_ChangeArbitrator_Unauthorized(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeArbitratorCommand(outsider, outsider)

	uow := newMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.Platforms.On("Get", ctx).Return(platformWithTracker(t, false), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	h, _ := platformHandler(uow)

	err := h.ChangeArbitrator(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	uow.Platforms.AssertNotCalled(t, "Update", anyContext, mock.Anything)
}
