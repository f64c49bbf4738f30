package usecases

import (
	"context"
	"fmt"

	claimdto "claimdesk/internal/application/claim/dto"
	"claimdesk/internal/application/claim/services"
	"claimdesk/internal/domain/claim"
	"claimdesk/internal/domain/directory"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type GetClaimQuery struct {
	ClaimID uint
	Actor   claim.Actor
}

// GetClaimUseCase loads the full aggregate for detail views. A stale
// assignee snapshot is refreshed best-effort; comment content is rendered
// to sanitized HTML for display.
type GetClaimUseCase struct {
	claimRepo     claim.ClaimRepository
	statusRepo    status.StatusRepository
	subStatusRepo status.SubStatusRepository
	snapshotSync  *services.AssigneeSnapshotSync
	sanitizer     ContentSanitizer
	logger        logger.Interface
}

func NewGetClaimUseCase(
	claimRepo claim.ClaimRepository,
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
	snapshotSync *services.AssigneeSnapshotSync,
	sanitizer ContentSanitizer,
	logger logger.Interface,
) *GetClaimUseCase {
	return &GetClaimUseCase{
		claimRepo:     claimRepo,
		statusRepo:    statusRepo,
		subStatusRepo: subStatusRepo,
		snapshotSync:  snapshotSync,
		sanitizer:     sanitizer,
		logger:        logger,
	}
}

func (uc *GetClaimUseCase) Execute(ctx context.Context, query GetClaimQuery) (*claimdto.ClaimDetailDTO, error) {
	if query.ClaimID == 0 {
		return nil, errors.NewValidationError("claim ID is required")
	}

	c, err := uc.claimRepo.GetByID(ctx, query.ClaimID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("claim %d not found", query.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", query.ClaimID, "error", err)
		return nil, errors.NewInternalError("failed to get claim")
	}

	uc.snapshotSync.Refresh(ctx, c)

	statuses, err := uc.statusRepo.GetByIDs(ctx, []uint{c.StatusID()})
	if err != nil {
		uc.logger.Warnw("failed to load status", "claim_id", c.ID(), "error", err)
		statuses = nil
	}
	var subStatuses map[uint]*status.SubStatus
	if subID := c.SubStatusID(); subID != nil {
		if m, err := uc.subStatusRepo.GetByIDs(ctx, []uint{*subID}); err == nil {
			subStatuses = m
		}
	}

	staff := query.Actor.Role == directory.RoleAdmin || query.Actor.Role == directory.RoleAgent

	result := &claimdto.ClaimDetailDTO{
		ClaimDTO:    *claimdto.ToClaimDTO(c, statuses, subStatuses),
		Comments:    []claimdto.CommentDTO{},
		Attachments: []claimdto.AttachmentDTO{},
	}
	for _, cm := range c.Comments() {
		if cm.IsInternal() && !staff {
			continue
		}
		html, err := uc.sanitizer.ToHTMLSanitized(cm.Content())
		if err != nil {
			uc.logger.Warnw("failed to render comment", "comment_id", cm.ID(), "error", err)
			html = ""
		}
		result.Comments = append(result.Comments, claimdto.ToCommentDTO(cm, html))
	}
	for _, a := range c.Attachments() {
		result.Attachments = append(result.Attachments, claimdto.ToAttachmentDTO(a))
	}

	return result, nil
}
