package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type CreateSubStatusCommand struct {
	StatusID     uint
	Name         string
	DisplayOrder int
	Description  *string
}

type CreateSubStatusUseCase struct {
	statusRepo    status.StatusRepository
	subStatusRepo status.SubStatusRepository
	cache         CatalogCache
	logger        logger.Interface
}

func NewCreateSubStatusUseCase(
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
	cache CatalogCache,
	logger logger.Interface,
) *CreateSubStatusUseCase {
	return &CreateSubStatusUseCase{
		statusRepo:    statusRepo,
		subStatusRepo: subStatusRepo,
		cache:         cache,
		logger:        logger,
	}
}

func (uc *CreateSubStatusUseCase) Execute(ctx context.Context, cmd CreateSubStatusCommand) (*dto.SubStatusDTO, error) {
	if cmd.StatusID == 0 {
		return nil, errors.NewValidationError("parent status ID is required")
	}

	if _, err := uc.statusRepo.GetByID(ctx, cmd.StatusID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("status %d not found", cmd.StatusID))
		}
		uc.logger.Errorw("failed to get parent status", "status_id", cmd.StatusID, "error", err)
		return nil, errors.NewInternalError("failed to get parent status")
	}

	existing, err := uc.subStatusRepo.GetByName(ctx, cmd.StatusID, cmd.Name)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, errors.NewInternalError("failed to check sub-status name")
	}
	if existing != nil {
		return nil, errors.NewDuplicateError(
			fmt.Sprintf("sub-status %q already exists for status %d", cmd.Name, cmd.StatusID))
	}

	ss, err := status.NewSubStatus(cmd.StatusID, cmd.Name, cmd.DisplayOrder, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subStatusRepo.Save(ctx, ss); err != nil {
		uc.logger.Errorw("failed to save sub-status", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to save sub-status")
	}

	uc.cache.Invalidate(ctx)

	uc.logger.Infow("sub-status created", "sub_status_id", ss.ID(), "status_id", cmd.StatusID)
	result := dto.ToSubStatusDTO(ss)
	return &result, nil
}
