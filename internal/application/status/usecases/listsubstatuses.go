package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type ListSubStatusesQuery struct {
	StatusID uint
}

type ListSubStatusesUseCase struct {
	statusRepo    status.StatusRepository
	subStatusRepo status.SubStatusRepository
	logger        logger.Interface
}

func NewListSubStatusesUseCase(
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
	logger logger.Interface,
) *ListSubStatusesUseCase {
	return &ListSubStatusesUseCase{
		statusRepo:    statusRepo,
		subStatusRepo: subStatusRepo,
		logger:        logger,
	}
}

func (uc *ListSubStatusesUseCase) Execute(ctx context.Context, query ListSubStatusesQuery) ([]dto.SubStatusDTO, error) {
	if query.StatusID == 0 {
		return nil, errors.NewValidationError("status ID is required")
	}

	if _, err := uc.statusRepo.GetByID(ctx, query.StatusID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("status %d not found", query.StatusID))
		}
		uc.logger.Errorw("failed to get status", "status_id", query.StatusID, "error", err)
		return nil, errors.NewInternalError("failed to get status")
	}

	subStatuses, err := uc.subStatusRepo.ListByStatus(ctx, query.StatusID)
	if err != nil {
		uc.logger.Errorw("failed to list sub-statuses", "status_id", query.StatusID, "error", err)
		return nil, errors.NewInternalError("failed to list sub-statuses")
	}

	result := make([]dto.SubStatusDTO, 0, len(subStatuses))
	for _, ss := range subStatuses {
		result = append(result, dto.ToSubStatusDTO(ss))
	}
	return result, nil
}
