package usecases

import (
	"context"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

// ListStatusesUseCase returns the full workflow catalog ordered by display
// order, with sub-statuses nested under their parents. The assembled list
// is served from cache when available.
type ListStatusesUseCase struct {
	statusRepo    status.StatusRepository
	subStatusRepo status.SubStatusRepository
	cache         CatalogCache
	logger        logger.Interface
}

func NewListStatusesUseCase(
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
	cache CatalogCache,
	logger logger.Interface,
) *ListStatusesUseCase {
	return &ListStatusesUseCase{
		statusRepo:    statusRepo,
		subStatusRepo: subStatusRepo,
		cache:         cache,
		logger:        logger,
	}
}

func (uc *ListStatusesUseCase) Execute(ctx context.Context) ([]dto.StatusDTO, error) {
	if cached, ok := uc.cache.GetStatusList(ctx); ok {
		return cached, nil
	}

	statuses, err := uc.statusRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list statuses", "error", err)
		return nil, errors.NewInternalError("failed to list statuses")
	}

	subStatuses, err := uc.subStatusRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list sub-statuses", "error", err)
		return nil, errors.NewInternalError("failed to list sub-statuses")
	}

	byParent := make(map[uint][]*status.SubStatus, len(statuses))
	for _, ss := range subStatuses {
		byParent[ss.StatusID()] = append(byParent[ss.StatusID()], ss)
	}

	result := make([]dto.StatusDTO, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, dto.ToStatusDTO(s, byParent[s.ID()]))
	}

	uc.cache.SetStatusList(ctx, result)
	return result, nil
}
