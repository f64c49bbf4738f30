package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type CreateStatusCommand struct {
	Name         string
	Color        string
	DisplayOrder int
	Description  *string
	Area         *string
	Permissions  map[string]interface{}
}

type CreateStatusUseCase struct {
	statusRepo status.StatusRepository
	cache      CatalogCache
	logger     logger.Interface
}

func NewCreateStatusUseCase(
	statusRepo status.StatusRepository,
	cache CatalogCache,
	logger logger.Interface,
) *CreateStatusUseCase {
	return &CreateStatusUseCase{
		statusRepo: statusRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *CreateStatusUseCase) Execute(ctx context.Context, cmd CreateStatusCommand) (*dto.StatusDTO, error) {
	uc.logger.Infow("creating status", "name", cmd.Name)

	existing, err := uc.statusRepo.GetByName(ctx, cmd.Name)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check status name", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to check status name")
	}
	if existing != nil {
		return nil, errors.NewDuplicateError(fmt.Sprintf("status %q already exists", cmd.Name))
	}

	s, err := status.NewStatus(cmd.Name, cmd.Color, cmd.DisplayOrder, cmd.Description, cmd.Area, cmd.Permissions)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.statusRepo.Save(ctx, s); err != nil {
		uc.logger.Errorw("failed to save status", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to save status")
	}

	uc.cache.Invalidate(ctx)

	uc.logger.Infow("status created", "status_id", s.ID(), "name", s.Name())
	result := dto.ToStatusDTO(s, nil)
	return &result, nil
}
