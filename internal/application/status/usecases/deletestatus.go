package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/domain/claim"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type DeleteStatusCommand struct {
	StatusID uint
}

// DeleteStatusUseCase removes a status together with its sub-statuses and
// any transitions touching it. Deletion is refused while claims still
// reference the status.
type DeleteStatusUseCase struct {
	statusRepo     status.StatusRepository
	subStatusRepo  status.SubStatusRepository
	transitionRepo status.TransitionRepository
	claimRepo      claim.ClaimRepository
	txManager      Transactor
	cache          CatalogCache
	logger         logger.Interface
}

func NewDeleteStatusUseCase(
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
	transitionRepo status.TransitionRepository,
	claimRepo claim.ClaimRepository,
	txManager Transactor,
	cache CatalogCache,
	logger logger.Interface,
) *DeleteStatusUseCase {
	return &DeleteStatusUseCase{
		statusRepo:     statusRepo,
		subStatusRepo:  subStatusRepo,
		transitionRepo: transitionRepo,
		claimRepo:      claimRepo,
		txManager:      txManager,
		cache:          cache,
		logger:         logger,
	}
}

func (uc *DeleteStatusUseCase) Execute(ctx context.Context, cmd DeleteStatusCommand) error {
	if cmd.StatusID == 0 {
		return errors.NewValidationError("status ID is required")
	}

	if _, err := uc.statusRepo.GetByID(ctx, cmd.StatusID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("status %d not found", cmd.StatusID))
		}
		uc.logger.Errorw("failed to get status", "status_id", cmd.StatusID, "error", err)
		return errors.NewInternalError("failed to get status")
	}

	referencing, err := uc.claimRepo.CountByStatusID(ctx, cmd.StatusID)
	if err != nil {
		uc.logger.Errorw("failed to count referencing claims", "status_id", cmd.StatusID, "error", err)
		return errors.NewInternalError("failed to count referencing claims")
	}
	if referencing > 0 {
		return errors.NewConflictError(
			fmt.Sprintf("status %d is referenced by %d claims", cmd.StatusID, referencing))
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.transitionRepo.DeleteByStatus(txCtx, cmd.StatusID); err != nil {
			return err
		}
		if err := uc.subStatusRepo.DeleteByStatus(txCtx, cmd.StatusID); err != nil {
			return err
		}
		return uc.statusRepo.Delete(txCtx, cmd.StatusID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete status", "status_id", cmd.StatusID, "error", err)
		return errors.NewInternalError("failed to delete status")
	}

	uc.cache.Invalidate(ctx)

	uc.logger.Infow("status deleted", "status_id", cmd.StatusID)
	return nil
}
