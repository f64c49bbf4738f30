package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type UpdateTransitionCommand struct {
	TransitionID         uint
	RequiredRoles        []string
	RequiresConfirmation *bool
	Message              *string
	ClearMessage         bool
}

type UpdateTransitionUseCase struct {
	transitionRepo status.TransitionRepository
	cache          CatalogCache
	logger         logger.Interface
}

func NewUpdateTransitionUseCase(
	transitionRepo status.TransitionRepository,
	cache CatalogCache,
	logger logger.Interface,
) *UpdateTransitionUseCase {
	return &UpdateTransitionUseCase{
		transitionRepo: transitionRepo,
		cache:          cache,
		logger:         logger,
	}
}

func (uc *UpdateTransitionUseCase) Execute(ctx context.Context, cmd UpdateTransitionCommand) (*dto.TransitionDTO, error) {
	if cmd.TransitionID == 0 {
		return nil, errors.NewValidationError("transition ID is required")
	}

	t, err := uc.transitionRepo.GetByID(ctx, cmd.TransitionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("transition %d not found", cmd.TransitionID))
		}
		uc.logger.Errorw("failed to get transition", "transition_id", cmd.TransitionID, "error", err)
		return nil, errors.NewInternalError("failed to get transition")
	}

	if cmd.RequiredRoles != nil {
		t.SetRequiredRoles(cmd.RequiredRoles)
	}
	if cmd.RequiresConfirmation != nil {
		t.SetRequiresConfirmation(*cmd.RequiresConfirmation)
	}
	if cmd.ClearMessage {
		t.SetMessage(nil)
	} else if cmd.Message != nil {
		t.SetMessage(cmd.Message)
	}

	if err := uc.transitionRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update transition", "transition_id", cmd.TransitionID, "error", err)
		return nil, errors.NewInternalError("failed to update transition")
	}

	uc.cache.Invalidate(ctx)

	result := dto.ToTransitionDTO(t)
	return &result, nil
}
