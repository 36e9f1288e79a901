package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	buyerAddress  = "0x1111111111111111111111111111111111111111"
	sellerAddress = "0x2222222222222222222222222222222222222222"
)

func TestNewParty(t *testing.T) {
	t.Run("should parse a valid address", func(t *testing.T) {
		p, err := kernel.NewParty(buyerAddress)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, buyerAddress, p.String())
		assert.False(t, p.IsZero())
	})

	t.Run("should normalize case", func(t *testing.T) {
		upper, err := kernel.NewParty("0xABCDEFabcdef0000000000000000000000000001")
		require.NoError(t, err)
		lower, err := kernel.NewParty("0xabcdefabcdef0000000000000000000000000001")
		require.NoError(t, err)

		assert.True(t, upper.IsEqual(lower))
	})

	t.Run("should accept the zero address as the null identity", func(t *testing.T) {
		p, err := kernel.NewParty("0x0000000000000000000000000000000000000000")

		require.NoError(t, err)
		assert.True(t, p.IsZero())
		assert.True(t, p.IsEqual(kernel.ZeroParty()))
	})

	invalid := []struct {
		name  string
		input string
		kind  error
	}{
		{name: "empty", input: "", kind: errs.ErrValueIsRequired},
		{name: "missing prefix", input: "1111111111111111111111111111111111111111", kind: errs.ErrValueIsInvalid},
		{name: "not hex", input: "0xzz11111111111111111111111111111111111111", kind: errs.ErrValueIsInvalid},
		{name: "too short", input: "0x1111", kind: errs.ErrValueIsInvalid},
		{name: "too long", input: "0x111111111111111111111111111111111111111111", kind: errs.ErrValueIsInvalid},
	}
	for _, tc := range invalid {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			_, err := kernel.NewParty(tc.input)

			require.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestParty_ZeroValue(t *testing.T) {
	var p kernel.Party

	assert.True(t, p.IsZero())
	require.ErrorIs(t, p.Validate(), kernel.ErrPartyIsNotConstructed)
}

func TestRoleAssignment_Holds(t *testing.T) {
	buyer := kernel.MustNewParty(buyerAddress)
	seller := kernel.MustNewParty(sellerAddress)
	roles := kernel.RoleAssignment{
		kernel.Buyer:   buyer,
		kernel.Seller:  seller,
		kernel.Courier: kernel.ZeroParty(),
	}

	assert.True(t, roles.Holds(buyer, kernel.Buyer, kernel.Seller))
	assert.True(t, roles.Holds(seller, kernel.Seller))
	assert.False(t, roles.Holds(seller, kernel.Buyer))
	assert.False(t, roles.Holds(kernel.ZeroParty(), kernel.Courier), "null identity never holds a role")
	assert.False(t, roles.Holds(buyer, kernel.Arbitrator), "unassigned role")
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Buyer", kernel.Buyer.String())
	assert.Equal(t, "Arbitrator", kernel.Arbitrator.String())
	assert.Equal(t, "None", kernel.Role(42).String())
}

func TestNewOrderID(t *testing.T) {
	id, err := kernel.NewOrderID(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id.Int64())
	assert.Equal(t, "7", id.String())

	_, err = kernel.NewOrderID(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

type sampleEvent struct{ key string }

func (e sampleEvent) EventName() string { return "sample" }
func (e sampleEvent) EventKey() string  { return e.key }

func TestEventRecorder(t *testing.T) {
	var r kernel.EventRecorder

	r.Record(sampleEvent{key: "1"})
	r.Record(sampleEvent{key: "2"})
	require.Len(t, r.DomainEvents(), 2)
	assert.Equal(t, "2", r.DomainEvents()[1].EventKey())

	r.ClearDomainEvents()
	assert.Empty(t, r.DomainEvents())
}
