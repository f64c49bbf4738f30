package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type UpdateStatusCommand struct {
	StatusID     uint
	Name         *string
	Color        *string
	DisplayOrder *int
	Description  *string
	Area         *string
	Permissions  map[string]interface{}
}

type UpdateStatusUseCase struct {
	statusRepo    status.StatusRepository
	subStatusRepo status.SubStatusRepository
	cache         CatalogCache
	logger        logger.Interface
}

func NewUpdateStatusUseCase(
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
	cache CatalogCache,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		statusRepo:    statusRepo,
		subStatusRepo: subStatusRepo,
		cache:         cache,
		logger:        logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.StatusDTO, error) {
	if cmd.StatusID == 0 {
		return nil, errors.NewValidationError("status ID is required")
	}

	s, err := uc.statusRepo.GetByID(ctx, cmd.StatusID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("status %d not found", cmd.StatusID))
		}
		uc.logger.Errorw("failed to get status", "status_id", cmd.StatusID, "error", err)
		return nil, errors.NewInternalError("failed to get status")
	}

	if cmd.Name != nil && *cmd.Name != s.Name() {
		existing, err := uc.statusRepo.GetByName(ctx, *cmd.Name)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, errors.NewInternalError("failed to check status name")
		}
		if existing != nil && existing.ID() != s.ID() {
			return nil, errors.NewDuplicateError(fmt.Sprintf("status %q already exists", *cmd.Name))
		}
		if err := s.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Color != nil {
		if err := s.SetColor(*cmd.Color); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.DisplayOrder != nil {
		if err := s.SetDisplayOrder(*cmd.DisplayOrder); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		s.SetDescription(cmd.Description)
	}
	if cmd.Area != nil {
		s.SetArea(cmd.Area)
	}
	if cmd.Permissions != nil {
		s.SetPermissions(cmd.Permissions)
	}

	if err := uc.statusRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update status", "status_id", cmd.StatusID, "error", err)
		return nil, errors.NewInternalError("failed to update status")
	}

	uc.cache.Invalidate(ctx)

	subStatuses, err := uc.subStatusRepo.ListByStatus(ctx, s.ID())
	if err != nil {
		uc.logger.Warnw("failed to list sub-statuses", "status_id", s.ID(), "error", err)
		subStatuses = nil
	}

	uc.logger.Infow("status updated", "status_id", s.ID(), "name", s.Name())
	result := dto.ToStatusDTO(s, subStatuses)
	return &result, nil
}
