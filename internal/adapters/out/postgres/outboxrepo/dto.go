// Package outboxrepo stores domain events next to the aggregate changes that
// raised them until the dispatch job hands them to the broker.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"
)

type MessageDTO struct {
	// Position keeps insertion order stable when OccurredAt ties.
	Position     int64      `gorm:"primaryKey;autoIncrement"`
	ID           uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	Name         string     `gorm:"type:varchar(64);not null"`
	Key          string     `gorm:"column:message_key;type:varchar(64);not null"`
	Payload      string     `gorm:"type:text;not null"`
	OccurredAt   time.Time  `gorm:"not null"`
	DispatchedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}
