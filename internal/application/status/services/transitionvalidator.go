package services

import (
	"context"
	"fmt"

	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
)

// TransitionValidator enforces the configured workflow graph. A source
// status with no outgoing edges is unrestricted; once any edge is
// configured from it, only configured edges may be taken, and only by the
// roles the edge names.
type TransitionValidator struct {
	transitionRepo status.TransitionRepository
}

func NewTransitionValidator(transitionRepo status.TransitionRepository) *TransitionValidator {
	return &TransitionValidator{transitionRepo: transitionRepo}
}

// Validate checks the move from one status to another for the given actor
// role. It returns the matched transition (nil when the source status is
// unrestricted) or a permission error.
func (v *TransitionValidator) Validate(ctx context.Context, fromStatusID, toStatusID uint, role string) (*status.Transition, error) {
	if fromStatusID == toStatusID {
		return nil, nil
	}

	outgoing, err := v.transitionRepo.ListFrom(ctx, fromStatusID)
	if err != nil {
		return nil, err
	}
	if len(outgoing) == 0 {
		return nil, nil
	}

	for _, t := range outgoing {
		if t.ToStatusID() != toStatusID {
			continue
		}
		if !t.AllowsRole(role) {
			return nil, errors.NewPermissionError(
				fmt.Sprintf("role %q may not move a claim from status %d to status %d", role, fromStatusID, toStatusID))
		}
		return t, nil
	}

	return nil, errors.NewPermissionError(
		fmt.Sprintf("transition from status %d to status %d is not permitted", fromStatusID, toStatusID))
}
