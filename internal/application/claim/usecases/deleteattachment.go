package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/domain/claim"
	"claimdesk/internal/domain/directory"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type DeleteAttachmentCommand struct {
	ClaimID      uint
	AttachmentID string
	Actor        claim.Actor
}

type DeleteAttachmentUseCase struct {
	claimRepo claim.ClaimRepository
	logger    logger.Interface
}

func NewDeleteAttachmentUseCase(
	claimRepo claim.ClaimRepository,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	if cmd.ClaimID == 0 {
		return errors.NewValidationError("claim ID is required")
	}
	if cmd.AttachmentID == "" {
		return errors.NewValidationError("attachment ID is required")
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return errors.NewInternalError("failed to get claim")
	}

	attachment, err := c.FindAttachment(cmd.AttachmentID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("attachment %s not found", cmd.AttachmentID))
	}
	if attachment.UploaderID() != cmd.Actor.ID && cmd.Actor.Role != directory.RoleAdmin {
		return errors.NewPermissionError("only the uploader or an admin can delete an attachment")
	}

	if err := c.RemoveAttachment(cmd.AttachmentID); err != nil {
		return errors.NewNotFoundError(err.Error())
	}

	if err := uc.claimRepo.Update(ctx, c); err != nil {
		if errors.IsConflictError(err) {
			return err
		}
		uc.logger.Errorw("failed to update claim", "claim_id", cmd.ClaimID, "error", err)
		return errors.NewInternalError("failed to update claim")
	}

	uc.logger.Infow("attachment deleted", "claim_id", c.ID(), "attachment_id", cmd.AttachmentID)
	return nil
}
