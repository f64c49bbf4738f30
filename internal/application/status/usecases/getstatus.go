package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type GetStatusQuery struct {
	StatusID uint
}

type GetStatusUseCase struct {
	statusRepo    status.StatusRepository
	subStatusRepo status.SubStatusRepository
	logger        logger.Interface
}

func NewGetStatusUseCase(
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
	logger logger.Interface,
) *GetStatusUseCase {
	return &GetStatusUseCase{
		statusRepo:    statusRepo,
		subStatusRepo: subStatusRepo,
		logger:        logger,
	}
}

func (uc *GetStatusUseCase) Execute(ctx context.Context, query GetStatusQuery) (*dto.StatusDTO, error) {
	if query.StatusID == 0 {
		return nil, errors.NewValidationError("status ID is required")
	}

	s, err := uc.statusRepo.GetByID(ctx, query.StatusID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("status %d not found", query.StatusID))
		}
		uc.logger.Errorw("failed to get status", "status_id", query.StatusID, "error", err)
		return nil, errors.NewInternalError("failed to get status")
	}

	subStatuses, err := uc.subStatusRepo.ListByStatus(ctx, s.ID())
	if err != nil {
		uc.logger.Errorw("failed to list sub-statuses", "status_id", s.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list sub-statuses")
	}

	result := dto.ToStatusDTO(s, subStatuses)
	return &result, nil
}
