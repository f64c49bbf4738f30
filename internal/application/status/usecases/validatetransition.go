package usecases

import (
	"context"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/application/status/services"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type ValidateTransitionQuery struct {
	FromStatusID uint
	ToStatusID   uint
	Role         string
}

type ValidateTransitionResult struct {
	Allowed              bool               `json:"allowed"`
	RequiresConfirmation bool               `json:"requires_confirmation"`
	Message              *string            `json:"message"`
	Transition           *dto.TransitionDTO `json:"transition"`
	Reason               string             `json:"reason,omitempty"`
}

// ValidateTransitionUseCase answers "may this role move a claim along this
// edge" without performing the move. Used by clients to grey out targets
// and surface confirmation prompts before committing.
type ValidateTransitionUseCase struct {
	validator *services.TransitionValidator
	logger    logger.Interface
}

func NewValidateTransitionUseCase(
	validator *services.TransitionValidator,
	logger logger.Interface,
) *ValidateTransitionUseCase {
	return &ValidateTransitionUseCase{
		validator: validator,
		logger:    logger,
	}
}

func (uc *ValidateTransitionUseCase) Execute(ctx context.Context, query ValidateTransitionQuery) (*ValidateTransitionResult, error) {
	if query.FromStatusID == 0 || query.ToStatusID == 0 {
		return nil, errors.NewValidationError("source and target status IDs are required")
	}

	t, err := uc.validator.Validate(ctx, query.FromStatusID, query.ToStatusID, query.Role)
	if err != nil {
		if errors.IsPermissionError(err) {
			return &ValidateTransitionResult{Allowed: false, Reason: err.Error()}, nil
		}
		uc.logger.Errorw("failed to validate transition", "error", err)
		return nil, errors.NewInternalError("failed to validate transition")
	}

	result := &ValidateTransitionResult{Allowed: true}
	if t != nil {
		result.RequiresConfirmation = t.RequiresConfirmation()
		result.Message = t.Message()
		transitionDTO := dto.ToTransitionDTO(t)
		result.Transition = &transitionDTO
	}
	return result, nil
}
