package kernel

import (
	"encoding/hex"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

const (
	addressBytes  = 20
	addressPrefix = "0x"
)

// ErrPartyIsNotConstructed is returned when a Party was declared but never parsed.
var ErrPartyIsNotConstructed = errs.NewValueIsRequiredError("party must be created via NewParty")

// Party identifies an account taking part in the marketplace: a buyer, a
// seller, a courier, the arbitrator, the platform owner, or a deployed
// tracker. It is a 20-byte address written as 0x-prefixed hex and kept in
// lower case so that comparisons are case-insensitive.
//
// The all-zero address is a valid Party that means "nobody"; see IsZero.
type Party struct {
	address string
}

// NewParty parses a 0x-prefixed, 40 hex digit address.
func NewParty(s string) (Party, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Party{}, errs.NewValueIsRequiredError("party")
	}

	if !strings.HasPrefix(trimmed, addressPrefix) && !strings.HasPrefix(trimmed, "0X") {
		return Party{}, errs.NewValueIsInvalidErrorWithCause("party", fmt.Errorf("%q has no 0x prefix", trimmed))
	}

	digits := trimmed[len(addressPrefix):]
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return Party{}, errs.NewValueIsInvalidErrorWithCause("party", err)
	}
	if len(raw) != addressBytes {
		return Party{}, errs.NewValueIsInvalidErrorWithCause(
			"party",
			fmt.Errorf("address must be %d bytes, got %d", addressBytes, len(raw)),
		)
	}

	return Party{address: addressPrefix + hex.EncodeToString(raw)}, nil
}

// MustNewParty is NewParty for constants and tests; it panics on bad input.
func MustNewParty(s string) Party {
	p, err := NewParty(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ZeroParty returns the null identity.
func ZeroParty() Party {
	return Party{address: addressPrefix + strings.Repeat("0", addressBytes*2)}
}

// IsZero reports whether p is the null identity. An unparsed Party counts as zero.
func (p Party) IsZero() bool {
	return p.address == "" || p == ZeroParty()
}

func (p Party) IsEqual(other Party) bool {
	return p.address == other.address
}

func (p Party) String() string {
	if p.address == "" {
		return ZeroParty().address
	}
	return p.address
}

// Validate rejects a Party that was never parsed.
func (p Party) Validate() error {
	if p.address == "" {
		return ErrPartyIsNotConstructed
	}
	return nil
}
