// Package events defines the domain event contracts and an in-process
// dispatcher. Events are delivered asynchronously; handler failures are
// logged by the dispatcher and never propagate to the publisher.
package events

import (
	"time"
)

// DomainEvent is implemented by every domain event.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetOccurredAt() time.Time
}

// BaseEvent provides the common fields for domain events.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e BaseEvent) GetAggregateID() string    { return e.AggregateID }
func (e BaseEvent) GetEventType() string      { return e.EventType }
func (e BaseEvent) GetOccurredAt() time.Time  { return e.OccurredAt }

// EventHandler processes domain events.
type EventHandler interface {
	Handle(event DomainEvent) error
}

// EventPublisher publishes domain events.
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// EventDispatcher routes published events to subscribed handlers.
type EventDispatcher interface {
	EventPublisher
	Subscribe(eventType string, handler EventHandler) error
	Start() error
	Stop() error
}
