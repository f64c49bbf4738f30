package status

import (
	"fmt"
	"strings"
	"time"

	"claimdesk/internal/shared/biztime"
)

// Transition is a configured edge in the workflow graph. When a source
// status has any outgoing transitions configured, only those edges are
// allowed out of it; a source with no configured edges is unrestricted.
type Transition struct {
	id                   uint
	fromStatusID         uint
	toStatusID           uint
	requiredRoles        []string
	requiresConfirmation bool
	message              *string
	createdAt            time.Time
	updatedAt            time.Time
}

func NewTransition(
	fromStatusID uint,
	toStatusID uint,
	requiredRoles []string,
	requiresConfirmation bool,
	message *string,
) (*Transition, error) {
	if fromStatusID == 0 {
		return nil, fmt.Errorf("source status ID is required")
	}
	if toStatusID == 0 {
		return nil, fmt.Errorf("target status ID is required")
	}
	if fromStatusID == toStatusID {
		return nil, fmt.Errorf("source and target status must differ")
	}
	if requiredRoles == nil {
		requiredRoles = []string{}
	}

	now := biztime.NowUTC()
	return &Transition{
		fromStatusID:         fromStatusID,
		toStatusID:           toStatusID,
		requiredRoles:        requiredRoles,
		requiresConfirmation: requiresConfirmation,
		message:              message,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructTransition(
	id uint,
	fromStatusID uint,
	toStatusID uint,
	requiredRoles []string,
	requiresConfirmation bool,
	message *string,
	createdAt, updatedAt time.Time,
) (*Transition, error) {
	if id == 0 {
		return nil, fmt.Errorf("transition ID cannot be zero")
	}
	if fromStatusID == 0 || toStatusID == 0 {
		return nil, fmt.Errorf("source and target status IDs are required")
	}
	if requiredRoles == nil {
		requiredRoles = []string{}
	}

	return &Transition{
		id:                   id,
		fromStatusID:         fromStatusID,
		toStatusID:           toStatusID,
		requiredRoles:        requiredRoles,
		requiresConfirmation: requiresConfirmation,
		message:              message,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func (t *Transition) ID() uint {
	return t.id
}

func (t *Transition) FromStatusID() uint {
	return t.fromStatusID
}

func (t *Transition) ToStatusID() uint {
	return t.toStatusID
}

func (t *Transition) RequiredRoles() []string {
	out := make([]string, len(t.requiredRoles))
	copy(out, t.requiredRoles)
	return out
}

func (t *Transition) RequiresConfirmation() bool {
	return t.requiresConfirmation
}

func (t *Transition) Message() *string {
	return t.message
}

func (t *Transition) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transition) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Transition) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("transition ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("transition ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Transition) SetRequiredRoles(roles []string) {
	if roles == nil {
		roles = []string{}
	}
	t.requiredRoles = roles
	t.updatedAt = biztime.NowUTC()
}

func (t *Transition) SetRequiresConfirmation(required bool) {
	t.requiresConfirmation = required
	t.updatedAt = biztime.NowUTC()
}

func (t *Transition) SetMessage(message *string) {
	t.message = message
	t.updatedAt = biztime.NowUTC()
}

// AllowsRole reports whether the actor role may take this transition.
// An empty required-roles list means any role is allowed.
func (t *Transition) AllowsRole(role string) bool {
	if len(t.requiredRoles) == 0 {
		return true
	}
	for _, required := range t.requiredRoles {
		if strings.EqualFold(required, role) {
			return true
		}
	}
	return false
}
