package kernel

import (
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// BasisPointsDenominator is the number of basis points in 100%.
const BasisPointsDenominator = 10000

var denominator = decimal.NewFromInt(BasisPointsDenominator)

// BasisPoints is a rate expressed in hundredths of a percent.
type BasisPoints int

// NewBasisPoints accepts 0..10000.
func NewBasisPoints(v int) (BasisPoints, error) {
	if v < 0 || v > BasisPointsDenominator {
		return 0, errs.NewValueIsOutOfRangeError("basis points", v, 0, BasisPointsDenominator)
	}
	return BasisPoints(v), nil
}

// Of returns floor(amount * bp / 10000).
func (bp BasisPoints) Of(amount Amount) Amount {
	share := amount.value.Mul(decimal.NewFromInt(int64(bp))).Div(denominator).Floor()
	return Amount{value: share}
}

func (bp BasisPoints) Int() int {
	return int(bp)
}
