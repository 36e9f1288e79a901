package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrDispatchOutboxCommandIsNotConstructed = errors.New(
		"DispatchOutboxCommand must be created via NewDispatchOutboxCommand constructor",
	)
	ErrPurgeOutboxCommandIsNotConstructed = errors.New(
		"PurgeOutboxCommand must be created via NewPurgeOutboxCommand constructor",
	)
)

const maxDispatchBatch = 1000

// DispatchOutboxCommand publishes up to batchSize pending outbox messages.
type DispatchOutboxCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewDispatchOutboxCommand(batchSize int) (DispatchOutboxCommand, error) {
	if batchSize < 1 || batchSize > maxDispatchBatch {
		return DispatchOutboxCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxDispatchBatch)
	}
	return DispatchOutboxCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchOutboxCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOutboxCommandIsNotConstructed)
}

func (c DispatchOutboxCommand) BatchSize() int { return c.batchSize }

// PurgeOutboxCommand removes messages dispatched before a cutoff.
type PurgeOutboxCommand struct {
	before time.Time

	guard guard.ConstructorGuard
}

func NewPurgeOutboxCommand(before time.Time) (PurgeOutboxCommand, error) {
	if before.IsZero() {
		return PurgeOutboxCommand{}, errs.NewValueIsRequiredError("before")
	}
	return PurgeOutboxCommand{
		before: before,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOutboxCommandIsNotConstructed)
}

func (c PurgeOutboxCommand) Before() time.Time { return c.before }
