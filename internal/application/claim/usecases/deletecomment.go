package usecases

import (
	"context"
	"fmt"

	"claimdesk/internal/domain/claim"
	"claimdesk/internal/domain/directory"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type DeleteCommentCommand struct {
	ClaimID   uint
	CommentID string
	Actor     claim.Actor
}

// DeleteCommentUseCase removes a comment. The author or an admin may
// delete; the audit trail is untouched.
type DeleteCommentUseCase struct {
	claimRepo claim.ClaimRepository
	logger    logger.Interface
}

func NewDeleteCommentUseCase(
	claimRepo claim.ClaimRepository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	if cmd.ClaimID == 0 {
		return errors.NewValidationError("claim ID is required")
	}
	if cmd.CommentID == "" {
		return errors.NewValidationError("comment ID is required")
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return errors.NewInternalError("failed to get claim")
	}

	comment, err := c.FindComment(cmd.CommentID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("comment %s not found", cmd.CommentID))
	}
	if comment.AuthorID() != cmd.Actor.ID && cmd.Actor.Role != directory.RoleAdmin {
		return errors.NewPermissionError("only the comment author or an admin can delete it")
	}

	if err := c.RemoveComment(cmd.CommentID); err != nil {
		return errors.NewNotFoundError(err.Error())
	}

	if err := uc.claimRepo.Update(ctx, c); err != nil {
		if errors.IsConflictError(err) {
			return err
		}
		uc.logger.Errorw("failed to update claim", "claim_id", cmd.ClaimID, "error", err)
		return errors.NewInternalError("failed to update claim")
	}

	uc.logger.Infow("comment deleted", "claim_id", c.ID(), "comment_id", cmd.CommentID)
	return nil
}
