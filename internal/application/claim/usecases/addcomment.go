package usecases

import (
	"context"
	"fmt"
	"time"

	"claimdesk/internal/application/claim/services"
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/domain/directory"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	ClaimID    uint
	Content    string
	IsInternal bool
	Actor      claim.Actor
}

type AddCommentResult struct {
	CommentID string    `json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AddCommentUseCase struct {
	claimRepo claim.ClaimRepository
	sanitizer ContentSanitizer
	recorder  *services.AuditRecorder
	logger    logger.Interface
	// auditComments controls whether comment additions land in the trail.
	auditComments bool
}

func NewAddCommentUseCase(
	claimRepo claim.ClaimRepository,
	sanitizer ContentSanitizer,
	recorder *services.AuditRecorder,
	logger logger.Interface,
	auditComments bool,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		claimRepo:     claimRepo,
		sanitizer:     sanitizer,
		recorder:      recorder,
		logger:        logger,
		auditComments: auditComments,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if cmd.ClaimID == 0 {
		return nil, errors.NewValidationError("claim ID is required")
	}
	if cmd.Actor.ID == 0 {
		return nil, errors.NewValidationError("actor is required")
	}

	// Internal comments are staff-only.
	if cmd.IsInternal && cmd.Actor.Role != directory.RoleAdmin && cmd.Actor.Role != directory.RoleAgent {
		return nil, errors.NewPermissionError("only staff can create internal comments")
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, errors.NewInternalError("failed to get claim")
	}

	content := uc.sanitizer.StripUnsafe(cmd.Content)
	comment, err := claim.NewComment(cmd.Actor.ID, cmd.Actor.Name, content, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := c.AddComment(comment); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if uc.auditComments {
		if err := uc.recorder.Record(c, vo.EventCommentAdded, cmd.Actor, nil, "Comment added"); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	}

	if err := uc.claimRepo.Update(ctx, c); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, errors.NewInternalError("failed to update claim")
	}

	uc.logger.Infow("comment added", "claim_id", c.ID(), "comment_id", comment.ID())
	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
