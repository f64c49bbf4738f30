package claim

import (
	"fmt"
	"time"

	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/shared/biztime"
	"claimdesk/internal/shared/id"
)

// Actor identifies who performed an operation, as extracted from the
// authenticated request context.
type Actor struct {
	ID   uint
	Name string
	Area string
	Role string
}

// FieldChange records a single field transition inside an audit event.
// Old and New are nil when the side has no value.
type FieldChange struct {
	Field string
	Old   *string
	New   *string
}

// AuditEvent is one append-only entry in a claim's audit trail. Events are
// never modified or removed after being recorded.
type AuditEvent struct {
	id          string
	eventType   vo.EventType
	actorID     *uint
	actorName   string
	actorArea   string
	changes     []FieldChange
	description string
	createdAt   time.Time
}

func NewAuditEvent(
	eventType vo.EventType,
	actor Actor,
	changes []FieldChange,
	description string,
) (*AuditEvent, error) {
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}

	eventID, err := id.NewAuditEventID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate event ID: %w", err)
	}

	var actorID *uint
	if actor.ID != 0 {
		aid := actor.ID
		actorID = &aid
	}

	return &AuditEvent{
		id:          eventID,
		eventType:   eventType,
		actorID:     actorID,
		actorName:   actor.Name,
		actorArea:   actor.Area,
		changes:     changes,
		description: description,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructAuditEvent(
	eventID string,
	eventType vo.EventType,
	actorID *uint,
	actorName string,
	actorArea string,
	changes []FieldChange,
	description string,
	createdAt time.Time,
) (*AuditEvent, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event ID cannot be empty")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}

	return &AuditEvent{
		id:          eventID,
		eventType:   eventType,
		actorID:     actorID,
		actorName:   actorName,
		actorArea:   actorArea,
		changes:     changes,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (e *AuditEvent) ID() string {
	return e.id
}

func (e *AuditEvent) EventType() vo.EventType {
	return e.eventType
}

func (e *AuditEvent) ActorID() *uint {
	return e.actorID
}

func (e *AuditEvent) ActorName() string {
	return e.actorName
}

func (e *AuditEvent) ActorArea() string {
	return e.actorArea
}

// Changes returns a copy so callers cannot mutate the recorded history.
func (e *AuditEvent) Changes() []FieldChange {
	out := make([]FieldChange, len(e.changes))
	copy(out, e.changes)
	return out
}

func (e *AuditEvent) Description() string {
	return e.description
}

func (e *AuditEvent) CreatedAt() time.Time {
	return e.createdAt
}
