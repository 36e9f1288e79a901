package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event persisted in the same transaction as the
// aggregate change that raised it.
type OutboxMessage struct {
	ID         kernel.UUID
	Name       string
	Key        string
	Payload    []byte
	OccurredAt time.Time
}

// OutboxRepository reads and acknowledges outbox messages for dispatch.
type OutboxRepository interface {
	// Pending returns up to limit undispatched messages, oldest first.
	Pending(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkDispatched(ctx context.Context, ids []kernel.UUID) error

	// PurgeDispatched deletes messages dispatched before the cutoff and
	// reports how many were removed.
	PurgeDispatched(ctx context.Context, before time.Time) (int64, error)
}

// MessagePublisher delivers outbox messages to the broker. A nil error means
// every message was accepted.
type MessagePublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
