package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type UpdateSubStatusCommand struct {
	SubStatusID  uint
	Name         *string
	DisplayOrder *int
	Description  *string
}

type UpdateSubStatusUseCase struct {
	subStatusRepo status.SubStatusRepository
	cache         CatalogCache
	logger        logger.Interface
}

func NewUpdateSubStatusUseCase(
	subStatusRepo status.SubStatusRepository,
	cache CatalogCache,
	logger logger.Interface,
) *UpdateSubStatusUseCase {
	return &UpdateSubStatusUseCase{
		subStatusRepo: subStatusRepo,
		cache:         cache,
		logger:        logger,
	}
}

func (uc *UpdateSubStatusUseCase) Execute(ctx context.Context, cmd UpdateSubStatusCommand) (*dto.SubStatusDTO, error) {
	if cmd.SubStatusID == 0 {
		return nil, errors.NewValidationError("sub-status ID is required")
	}

	ss, err := uc.subStatusRepo.GetByID(ctx, cmd.SubStatusID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("sub-status %d not found", cmd.SubStatusID))
		}
		uc.logger.Errorw("failed to get sub-status", "sub_status_id", cmd.SubStatusID, "error", err)
		return nil, errors.NewInternalError("failed to get sub-status")
	}

	if cmd.Name != nil && *cmd.Name != ss.Name() {
		existing, err := uc.subStatusRepo.GetByName(ctx, ss.StatusID(), *cmd.Name)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, errors.NewInternalError("failed to check sub-status name")
		}
		if existing != nil && existing.ID() != ss.ID() {
			return nil, errors.NewDuplicateError(
				fmt.Sprintf("sub-status %q already exists for status %d", *cmd.Name, ss.StatusID()))
		}
		if err := ss.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.DisplayOrder != nil {
		if err := ss.SetDisplayOrder(*cmd.DisplayOrder); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		ss.SetDescription(cmd.Description)
	}

	if err := uc.subStatusRepo.Update(ctx, ss); err != nil {
		uc.logger.Errorw("failed to update sub-status", "sub_status_id", cmd.SubStatusID, "error", err)
		return nil, errors.NewInternalError("failed to update sub-status")
	}

	uc.cache.Invalidate(ctx)

	result := dto.ToSubStatusDTO(ss)
	return &result, nil
}
