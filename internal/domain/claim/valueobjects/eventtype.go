package valueobjects

import "fmt"

// EventType classifies entries in a claim's audit trail.
type EventType string

const (
	EventCreated          EventType = "created"
	EventStatusChanged    EventType = "status_changed"
	EventSubStatusChanged EventType = "sub_status_changed"
	EventAssigned         EventType = "assigned"
	EventUpdated          EventType = "updated"
	EventCommentAdded     EventType = "comment_added"
	EventAttachmentAdded  EventType = "attachment_added"
	EventDeleted          EventType = "deleted"
)

func NewEventType(value string) (EventType, error) {
	e := EventType(value)
	if !e.IsValid() {
		return "", fmt.Errorf("invalid event type: %s", value)
	}
	return e, nil
}

func (e EventType) IsValid() bool {
	switch e {
	case EventCreated, EventStatusChanged, EventSubStatusChanged, EventAssigned,
		EventUpdated, EventCommentAdded, EventAttachmentAdded, EventDeleted:
		return true
	}
	return false
}

func (e EventType) String() string {
	return string(e)
}
