package usecases

import (
	"context"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type ListTransitionsQuery struct {
	// FromStatusID narrows the listing to one source status when non-zero.
	FromStatusID uint
}

type ListTransitionsUseCase struct {
	transitionRepo status.TransitionRepository
	logger         logger.Interface
}

func NewListTransitionsUseCase(
	transitionRepo status.TransitionRepository,
	logger logger.Interface,
) *ListTransitionsUseCase {
	return &ListTransitionsUseCase{
		transitionRepo: transitionRepo,
		logger:         logger,
	}
}

func (uc *ListTransitionsUseCase) Execute(ctx context.Context, query ListTransitionsQuery) ([]dto.TransitionDTO, error) {
	var (
		transitions []*status.Transition
		err         error
	)
	if query.FromStatusID != 0 {
		transitions, err = uc.transitionRepo.ListFrom(ctx, query.FromStatusID)
	} else {
		transitions, err = uc.transitionRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list transitions", "error", err)
		return nil, errors.NewInternalError("failed to list transitions")
	}

	result := make([]dto.TransitionDTO, 0, len(transitions))
	for _, t := range transitions {
		result = append(result, dto.ToTransitionDTO(t))
	}
	return result, nil
}
