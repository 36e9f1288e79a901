package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative whole number of the smallest monetary unit.
// The zero value is a valid amount of zero.
type Amount struct {
	value decimal.Decimal
}

// NewAmount accepts integral, non-negative decimals only.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.IsNegative() {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", value))
	}
	if !value.Equal(value.Truncate(0)) {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is not a whole number", value))
	}
	return Amount{value: value}, nil
}

// AmountFromString parses a base-10 integer such as "1000000000000000000".
func AmountFromString(s string) (Amount, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewAmount(value)
}

// AmountFromUint64 cannot fail.
func AmountFromUint64(v uint64) Amount {
	return Amount{value: decimal.NewFromUint64(v)}
}

// MustAmount is AmountFromString for constants and tests.
func MustAmount(s string) Amount {
	a, err := AmountFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

func (a Amount) IsEqual(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) Cmp(other Amount) int {
	return a.value.Cmp(other.value)
}

func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// Sub fails instead of going below zero.
func (a Amount) Sub(other Amount) (Amount, error) {
	if a.value.LessThan(other.value) {
		return Amount{}, errs.NewValueIsOutOfRangeError("amount", a.value.Sub(other.value).String(), "0", a.value.String())
	}
	return Amount{value: a.value.Sub(other.value)}, nil
}

func (a Amount) String() string {
	return a.value.String()
}
