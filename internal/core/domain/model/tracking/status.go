package tracking

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the fulfilment state of a Record.
//
//	None ──> Created ──> Shipped ──> Delivered
//
// None is what readers report for an order id that has no record.
type Status int

const (
	None Status = iota
	Created
	Shipped
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		None:      "None",
		Created:   "Created",
		Shipped:   "Shipped",
		Delivered: "Delivered",
	}
}

// Validate accepts the statuses a stored record may have.
func (s Status) Validate() error {
	if s != Created && s != Shipped && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "None"
}

// Ship moves Created to Shipped.
func (s Status) Ship() (Status, error) {
	if s != Created {
		return s, errs.NewInvalidStateError("Order not in Created state")
	}
	return Shipped, nil
}

// Deliver moves Shipped to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return s, errs.NewInvalidStateError("Order not in Shipped state")
	}
	return Delivered, nil
}
