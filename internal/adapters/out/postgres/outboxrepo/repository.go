package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ports.OutboxRepository = (*GormOutboxRepository)(nil)

type GormOutboxRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db, now: time.Now}
}

// Append serializes events into outbox rows. It runs on whatever handle the
// repository was built with, normally the transaction being committed.
func (r *GormOutboxRepository) Append(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	occurredAt := r.now().UTC()
	rows := make([]MessageDTO, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		rows = append(rows, MessageDTO{
			ID:         uuid.New(),
			Name:       event.EventName(),
			Key:        event.EventKey(),
			Payload:    string(payload),
			OccurredAt: occurredAt,
		})
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *GormOutboxRepository) Pending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []MessageDTO
	err := r.db.WithContext(ctx).
		Where("dispatched_at IS NULL").
		Order("position").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		messages = append(messages, ports.OutboxMessage{
			ID:         id,
			Name:       row.Name,
			Key:        row.Key,
			Payload:    []byte(row.Payload),
			OccurredAt: row.OccurredAt,
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkDispatched(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ? AND dispatched_at IS NULL", raw).
		Update("dispatched_at", r.now().UTC()).Error
}

func (r *GormOutboxRepository) PurgeDispatched(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("dispatched_at IS NOT NULL AND dispatched_at < ?", before.UTC()).
		Delete(&MessageDTO{})
	return result.RowsAffected, result.Error
}
