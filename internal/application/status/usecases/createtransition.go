package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type CreateTransitionCommand struct {
	FromStatusID         uint
	ToStatusID           uint
	RequiredRoles        []string
	RequiresConfirmation bool
	Message              *string
}

type CreateTransitionUseCase struct {
	statusRepo     status.StatusRepository
	transitionRepo status.TransitionRepository
	cache          CatalogCache
	logger         logger.Interface
}

func NewCreateTransitionUseCase(
	statusRepo status.StatusRepository,
	transitionRepo status.TransitionRepository,
	cache CatalogCache,
	logger logger.Interface,
) *CreateTransitionUseCase {
	return &CreateTransitionUseCase{
		statusRepo:     statusRepo,
		transitionRepo: transitionRepo,
		cache:          cache,
		logger:         logger,
	}
}

func (uc *CreateTransitionUseCase) Execute(ctx context.Context, cmd CreateTransitionCommand) (*dto.TransitionDTO, error) {
	for _, statusID := range []uint{cmd.FromStatusID, cmd.ToStatusID} {
		if statusID == 0 {
			return nil, errors.NewValidationError("source and target status IDs are required")
		}
		if _, err := uc.statusRepo.GetByID(ctx, statusID); err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewNotFoundError(fmt.Sprintf("status %d not found", statusID))
			}
			uc.logger.Errorw("failed to get status", "status_id", statusID, "error", err)
			return nil, errors.NewInternalError("failed to get status")
		}
	}

	existing, err := uc.transitionRepo.GetByEdge(ctx, cmd.FromStatusID, cmd.ToStatusID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, errors.NewInternalError("failed to check transition")
	}
	if existing != nil {
		return nil, errors.NewDuplicateError(
			fmt.Sprintf("transition from status %d to status %d already exists", cmd.FromStatusID, cmd.ToStatusID))
	}

	t, err := status.NewTransition(cmd.FromStatusID, cmd.ToStatusID, cmd.RequiredRoles, cmd.RequiresConfirmation, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.transitionRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save transition", "error", err)
		return nil, errors.NewInternalError("failed to save transition")
	}

	uc.cache.Invalidate(ctx)

	uc.logger.Infow("transition created",
		"transition_id", t.ID(),
		"from_status_id", cmd.FromStatusID,
		"to_status_id", cmd.ToStatusID,
	)
	result := dto.ToTransitionDTO(t)
	return &result, nil
}
