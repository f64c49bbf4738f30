package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type DeleteTransitionCommand struct {
	TransitionID uint
}

type DeleteTransitionUseCase struct {
	transitionRepo status.TransitionRepository
	cache          CatalogCache
	logger         logger.Interface
}

func NewDeleteTransitionUseCase(
	transitionRepo status.TransitionRepository,
	cache CatalogCache,
	logger logger.Interface,
) *DeleteTransitionUseCase {
	return &DeleteTransitionUseCase{
		transitionRepo: transitionRepo,
		cache:          cache,
		logger:         logger,
	}
}

func (uc *DeleteTransitionUseCase) Execute(ctx context.Context, cmd DeleteTransitionCommand) error {
	if cmd.TransitionID == 0 {
		return errors.NewValidationError("transition ID is required")
	}

	if _, err := uc.transitionRepo.GetByID(ctx, cmd.TransitionID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("transition %d not found", cmd.TransitionID))
		}
		uc.logger.Errorw("failed to get transition", "transition_id", cmd.TransitionID, "error", err)
		return errors.NewInternalError("failed to get transition")
	}

	if err := uc.transitionRepo.Delete(ctx, cmd.TransitionID); err != nil {
		uc.logger.Errorw("failed to delete transition", "transition_id", cmd.TransitionID, "error", err)
		return errors.NewInternalError("failed to delete transition")
	}

	uc.cache.Invalidate(ctx)

	uc.logger.Infow("transition deleted", "transition_id", cmd.TransitionID)
	return nil
}
