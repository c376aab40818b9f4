package member

import (
	"time"

	"gymdesk/internal/domain/shared/events"
)

// EventTypeMemberCreated is published after a member is persisted.
const EventTypeMemberCreated = "member.created"

// CreatedEvent announces a new member for downstream display. Delivery is
// best-effort; a lost event never fails the creation.
type CreatedEvent struct {
	events.BaseEvent
	MemberCode string `json:"member_code"`
	MemberName string `json:"member_name"`
	PlanName   string `json:"plan_name"`
}

// NewCreatedEvent builds the creation event for a persisted member.
func NewCreatedEvent(m *Member) *CreatedEvent {
	return &CreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: m.Code(),
			EventType:   EventTypeMemberCreated,
			OccurredAt:  time.Now(),
		},
		MemberCode: m.Code(),
		MemberName: m.Name(),
		PlanName:   m.PlanName(),
	}
}
