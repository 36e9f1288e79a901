package kernel

import (
	"strconv"

	"marketplace/internal/pkg/errs"
)

// OrderID is the integer key shared by the ledger and the delivery tracker.
// Ledger ids are assigned sequentially starting at 1.
type OrderID int64

// NewOrderID rejects ids below 1.
func NewOrderID(v int64) (OrderID, error) {
	if v < 1 {
		return 0, errs.NewValueIsInvalidError("order id must be positive")
	}
	return OrderID(v), nil
}

func (id OrderID) Int64() int64 {
	return int64(id)
}

func (id OrderID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
