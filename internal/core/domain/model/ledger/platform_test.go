package ledger_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tracker = kernel.MustNewParty("0x9999999999999999999999999999999999999999")

func newPlatform(t *testing.T) *ledger.Platform {
	t.Helper()
	p, err := ledger.NewPlatform(owner, ledger.DefaultPlatformFee)
	require.NoError(t, err)
	return p
}

func TestNewPlatform(t *testing.T) {
	p := newPlatform(t)

	assert.True(t, p.Owner().IsEqual(owner))
	assert.True(t, p.Arbitrator().IsEqual(owner))
	assert.Equal(t, kernel.BasisPoints(250), p.Fee())
	assert.True(t, p.Balance().IsZero())
	_, bound := p.Tracker()
	assert.False(t, bound)

	_, err := ledger.NewPlatform(kernel.ZeroParty(), 0)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = ledger.NewPlatform(owner, 501)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestPlatform_SetOrderTracking(t *testing.T) {
	t.Run("owner binds and rebinds tracker", func(t *testing.T) {
		p := newPlatform(t)

		require.NoError(t, p.SetOrderTracking(owner, tracker))
		require.NoError(t, p.SetOrderTracking(owner, other))

		bound, ok := p.Tracker()
		assert.True(t, ok)
		assert.True(t, bound.IsEqual(other))
	})

	t.Run("non owner is rejected", func(t *testing.T) {
		p := newPlatform(t)

		err := p.SetOrderTracking(buyer, tracker)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, "Not platform owner", errs.Reason(err))
	})

	t.Run("zero tracker is rejected", func(t *testing.T) {
		p := newPlatform(t)

		err := p.SetOrderTracking(owner, kernel.ZeroParty())

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Equal(t, "Invalid tracking address", errs.Reason(err))
	})
}

func TestPlatform_ChangeArbitrator(t *testing.T) {
	t.Run("hands over role", func(t *testing.T) {
		p := newPlatform(t)

		require.NoError(t, p.ChangeArbitrator(owner, other))

		assert.True(t, p.Arbitrator().IsEqual(other))
		require.NoError(t, p.CheckArbitrator(other))
		require.ErrorIs(t, p.CheckArbitrator(owner), errs.ErrUnauthorized)
	})

	t.Run("owner loses the right once replaced", func(t *testing.T) {
		p := newPlatform(t)
		require.NoError(t, p.ChangeArbitrator(owner, other))

		err := p.ChangeArbitrator(owner, owner)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, "Only arbitrator can change arbitrator", errs.Reason(err))
	})

	t.Run("zero arbitrator is rejected", func(t *testing.T) {
		p := newPlatform(t)

		err := p.ChangeArbitrator(owner, kernel.ZeroParty())

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Equal(t, "Invalid arbitrator", errs.Reason(err))
	})
}

func TestPlatform_SetFee(t *testing.T) {
	p := newPlatform(t)

	require.NoError(t, p.SetFee(owner, 500))
	assert.Equal(t, kernel.BasisPoints(500), p.Fee())

	require.NoError(t, p.SetFee(owner, 0))
	assert.True(t, p.FeeFor(oneEther).IsZero())

	err := p.SetFee(owner, 501)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Equal(t, "Fee too high", errs.Reason(err))

	require.ErrorIs(t, p.SetFee(buyer, 100), errs.ErrUnauthorized)
	assert.Equal(t, kernel.BasisPoints(0), p.Fee())
}

func TestPlatform_WithdrawFees(t *testing.T) {
	t.Run("pays accumulated fees to owner", func(t *testing.T) {
		p := newPlatform(t)
		p.CollectFee(p.FeeFor(oneEther))

		amount, err := p.WithdrawFees(owner)

		require.NoError(t, err)
		assert.Equal(t, "25000000000000000", amount.String())
		assert.True(t, p.Balance().IsZero())
		assert.Equal(t, []string{
			ledger.PlatformFeesWithdrawnEventName,
			ledger.PayoutRequestedEventName,
		}, eventNames(p.DomainEvents()))
		assert.Equal(t, "platform", p.DomainEvents()[1].EventKey())
	})

	t.Run("zero balance succeeds without payout", func(t *testing.T) {
		p := newPlatform(t)

		amount, err := p.WithdrawFees(owner)

		require.NoError(t, err)
		assert.True(t, amount.IsZero())
		assert.Empty(t, p.DomainEvents())
	})

	t.Run("non owner is rejected", func(t *testing.T) {
		p := newPlatform(t)
		p.CollectFee(kernel.MustAmount("10"))

		_, err := p.WithdrawFees(buyer)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, "10", p.Balance().String())
	})
}

func TestRestorePlatform(t *testing.T) {
	p, err := ledger.RestorePlatform(owner, other, 100, kernel.MustAmount("42"), kernel.ZeroParty(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, p.Version())
	assert.Equal(t, "42", p.Balance().String())

	_, err = ledger.RestorePlatform(owner, other, 900, kernel.Amount{}, kernel.ZeroParty(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
