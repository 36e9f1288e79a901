package kernel

// DomainEvent is a fact recorded by an aggregate during a command. Events are
// written to the outbox in the same transaction as the aggregate itself.
type DomainEvent interface {
	EventName() string
	// EventKey groups events of one aggregate for ordered delivery.
	EventKey() string
}

// EventRecorder collects events raised by an aggregate. Embed it by value.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns the events recorded since the last clear.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	return r.events
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}

// Aggregate is an entity that records domain events for the outbox.
type Aggregate interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
