package usecases

import (
	"context"
	"fmt"
	"time"

	"claimdesk/internal/application/claim/services"
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type AddAttachmentCommand struct {
	ClaimID   uint
	FileName  string
	URL       string
	MimeType  *string
	SizeBytes *int64
	Actor     claim.Actor
}

type AddAttachmentResult struct {
	AttachmentID string    `json:"attachment_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type AddAttachmentUseCase struct {
	claimRepo     claim.ClaimRepository
	recorder      *services.AuditRecorder
	logger        logger.Interface
	auditComments bool
}

func NewAddAttachmentUseCase(
	claimRepo claim.ClaimRepository,
	recorder *services.AuditRecorder,
	logger logger.Interface,
	auditComments bool,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		claimRepo:     claimRepo,
		recorder:      recorder,
		logger:        logger,
		auditComments: auditComments,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error) {
	if cmd.ClaimID == 0 {
		return nil, errors.NewValidationError("claim ID is required")
	}
	if cmd.Actor.ID == 0 {
		return nil, errors.NewValidationError("actor is required")
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, errors.NewInternalError("failed to get claim")
	}

	attachment, err := claim.NewAttachment(cmd.Actor.ID, cmd.Actor.Name, cmd.FileName, cmd.URL, cmd.MimeType, cmd.SizeBytes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := c.AddAttachment(attachment); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if uc.auditComments {
		description := fmt.Sprintf("Attachment %s added", cmd.FileName)
		if err := uc.recorder.Record(c, vo.EventAttachmentAdded, cmd.Actor, nil, description); err != nil {
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

	uc.logger.Infow("attachment added", "claim_id", c.ID(), "attachment_id", attachment.ID())
	return &AddAttachmentResult{
		AttachmentID: attachment.ID(),
		CreatedAt:    attachment.CreatedAt(),
	}, nil
}
