package services

import (
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/shared/logger"
)

// AuditRecorder builds audit events and appends them to a claim's trail.
// Recording never mutates or removes earlier entries.
type AuditRecorder struct {
	logger logger.Interface
}

func NewAuditRecorder(logger logger.Interface) *AuditRecorder {
	return &AuditRecorder{logger: logger}
}

func (r *AuditRecorder) Record(
	c *claim.Claim,
	eventType vo.EventType,
	actor claim.Actor,
	changes []claim.FieldChange,
	description string,
) error {
	event, err := claim.NewAuditEvent(eventType, actor, changes, description)
	if err != nil {
		return err
	}
	if err := c.RecordEvent(event); err != nil {
		return err
	}
	r.logger.Debugw("audit event recorded",
		"claim_id", c.ID(),
		"event_type", eventType.String(),
		"actor_id", actor.ID,
	)
	return nil
}

// Change builds a FieldChange from optional sides.
func Change(field string, oldValue, newValue *string) claim.FieldChange {
	return claim.FieldChange{Field: field, Old: oldValue, New: newValue}
}

// StrPtr is a small helper for building change entries.
func StrPtr(s string) *string {
	return &s
}
