// Package kafka publishes outbox messages. Payout instructions go to their own
// topic so the payment rail consumes nothing else; every other domain event
// goes to the events topic. Messages are keyed by aggregate, which keeps the
// events of one order on one partition and in order.
package kafka

import (
	"context"
	"strconv"
	"time"

	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const (
	headerMessageID  = "message-id"
	headerEventName  = "event-name"
	headerOccurredAt = "occurred-at"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Topics struct {
	Events  string
	Payouts string
}

var _ ports.MessagePublisher = (*Publisher)(nil)

type Publisher struct {
	writer messageWriter
	topics Topics
}

// NewPublisher creates a synchronous writer that waits for all in-sync
// replicas. The writer has no default topic; each message names its own.
func NewPublisher(brokers []string, topics Topics) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}, topics)
}

func newPublisher(writer messageWriter, topics Topics) *Publisher {
	return &Publisher{writer: writer, topics: topics}
}

func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	out := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, kafka.Message{
			Topic: p.topicFor(m.Name),
			Key:   []byte(m.Key),
			Value: m.Payload,
			Headers: []kafka.Header{
				{Key: headerMessageID, Value: []byte(m.ID.String())},
				{Key: headerEventName, Value: []byte(m.Name)},
				{Key: headerOccurredAt, Value: []byte(strconv.FormatInt(m.OccurredAt.UnixMilli(), 10))},
			},
		})
	}

	return p.writer.WriteMessages(ctx, out...)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) topicFor(name string) string {
	if name == ledger.PayoutRequestedEventName {
		return p.topics.Payouts
	}
	return p.topics.Events
}
