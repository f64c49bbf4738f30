package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/application/claim/services"
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/domain/directory"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type DeleteClaimCommand struct {
	ClaimID uint
	Actor   claim.Actor
}

// DeleteClaimUseCase removes a claim. Admin only. A final deleted event is
// persisted before the row goes away so log consumers observe it; both
// writes happen in one transaction.
type DeleteClaimUseCase struct {
	claimRepo claim.ClaimRepository
	recorder  *services.AuditRecorder
	txManager Transactor
	logger    logger.Interface
}

func NewDeleteClaimUseCase(
	claimRepo claim.ClaimRepository,
	recorder *services.AuditRecorder,
	txManager Transactor,
	logger logger.Interface,
) *DeleteClaimUseCase {
	return &DeleteClaimUseCase{
		claimRepo: claimRepo,
		recorder:  recorder,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeleteClaimUseCase) Execute(ctx context.Context, cmd DeleteClaimCommand) error {
	if cmd.ClaimID == 0 {
		return errors.NewValidationError("claim ID is required")
	}
	if cmd.Actor.Role != directory.RoleAdmin {
		return errors.NewPermissionError("only admins can delete claims")
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return errors.NewInternalError("failed to get claim")
	}

	if err := uc.recorder.Record(c, vo.EventDeleted, cmd.Actor, nil, "Claim deleted"); err != nil {
		return errors.NewInternalError(err.Error())
	}

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.claimRepo.Update(txCtx, c); err != nil {
			return err
		}
		return uc.claimRepo.Delete(txCtx, cmd.ClaimID)
	})
	if txErr != nil {
		if errors.IsConflictError(txErr) {
			return txErr
		}
		uc.logger.Errorw("failed to delete claim", "claim_id", cmd.ClaimID, "error", txErr)
		return errors.NewInternalError("failed to delete claim")
	}

	uc.logger.Infow("claim deleted", "claim_id", cmd.ClaimID, "actor_id", cmd.Actor.ID)
	return nil
}
