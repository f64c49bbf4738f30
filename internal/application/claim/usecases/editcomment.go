package usecases

import (
	"context"
	"fmt"

	claimdto "claimdesk/internal/application/claim/dto"
	"claimdesk/internal/domain/claim"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type EditCommentCommand struct {
	ClaimID   uint
	CommentID string
	Content   string
	Actor     claim.Actor
}

// EditCommentUseCase lets a comment's author revise its content. Only the
// author may edit; admins must delete instead.
type EditCommentUseCase struct {
	claimRepo claim.ClaimRepository
	sanitizer ContentSanitizer
	logger    logger.Interface
}

func NewEditCommentUseCase(
	claimRepo claim.ClaimRepository,
	sanitizer ContentSanitizer,
	logger logger.Interface,
) *EditCommentUseCase {
	return &EditCommentUseCase{
		claimRepo: claimRepo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *EditCommentUseCase) Execute(ctx context.Context, cmd EditCommentCommand) (*claimdto.CommentDTO, error) {
	if cmd.ClaimID == 0 {
		return nil, errors.NewValidationError("claim ID is required")
	}
	if cmd.CommentID == "" {
		return nil, errors.NewValidationError("comment ID is required")
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, errors.NewInternalError("failed to get claim")
	}

	comment, err := c.FindComment(cmd.CommentID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("comment %s not found", cmd.CommentID))
	}
	if comment.AuthorID() != cmd.Actor.ID {
		return nil, errors.NewPermissionError("only the comment author can edit it")
	}

	content := uc.sanitizer.StripUnsafe(cmd.Content)
	if err := c.EditComment(cmd.CommentID, content); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.claimRepo.Update(ctx, c); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, errors.NewInternalError("failed to update claim")
	}

	uc.logger.Infow("comment edited", "claim_id", c.ID(), "comment_id", cmd.CommentID)
	result := claimdto.ToCommentDTO(comment, "")
	return &result, nil
}
