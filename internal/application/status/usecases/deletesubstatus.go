package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/domain/claim"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type DeleteSubStatusCommand struct {
	SubStatusID uint
}

type DeleteSubStatusUseCase struct {
	subStatusRepo status.SubStatusRepository
	claimRepo     claim.ClaimRepository
	cache         CatalogCache
	logger        logger.Interface
}

func NewDeleteSubStatusUseCase(
	subStatusRepo status.SubStatusRepository,
	claimRepo claim.ClaimRepository,
	cache CatalogCache,
	logger logger.Interface,
) *DeleteSubStatusUseCase {
	return &DeleteSubStatusUseCase{
		subStatusRepo: subStatusRepo,
		claimRepo:     claimRepo,
		cache:         cache,
		logger:        logger,
	}
}

func (uc *DeleteSubStatusUseCase) Execute(ctx context.Context, cmd DeleteSubStatusCommand) error {
	if cmd.SubStatusID == 0 {
		return errors.NewValidationError("sub-status ID is required")
	}

	if _, err := uc.subStatusRepo.GetByID(ctx, cmd.SubStatusID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("sub-status %d not found", cmd.SubStatusID))
		}
		uc.logger.Errorw("failed to get sub-status", "sub_status_id", cmd.SubStatusID, "error", err)
		return errors.NewInternalError("failed to get sub-status")
	}

	referencing, err := uc.claimRepo.CountBySubStatusID(ctx, cmd.SubStatusID)
	if err != nil {
		uc.logger.Errorw("failed to count referencing claims", "sub_status_id", cmd.SubStatusID, "error", err)
		return errors.NewInternalError("failed to count referencing claims")
	}
	if referencing > 0 {
		return errors.NewConflictError(
			fmt.Sprintf("sub-status %d is referenced by %d claims", cmd.SubStatusID, referencing))
	}

	if err := uc.subStatusRepo.Delete(ctx, cmd.SubStatusID); err != nil {
		uc.logger.Errorw("failed to delete sub-status", "sub_status_id", cmd.SubStatusID, "error", err)
		return errors.NewInternalError("failed to delete sub-status")
	}

	uc.cache.Invalidate(ctx)

	uc.logger.Infow("sub-status deleted", "sub_status_id", cmd.SubStatusID)
	return nil
}
