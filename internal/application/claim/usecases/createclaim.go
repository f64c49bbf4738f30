package usecases

import (
	"context"
	"time"

	"claimdesk/internal/application/claim/services"
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type CreateClaimCommand struct {
	Subject     string
	ClientName  string
	ContactInfo string
	ClientEmail *string
	ClientPhone *string
	Description string
	// StatusRef is a status ID or name; empty selects the default status.
	StatusRef string
	// SubStatusRef is resolved within the initial status when non-empty.
	SubStatusRef string
	Priority     string
	Category     *string
	AssigneeID   *uint
	Actor        claim.Actor
}

type CreateClaimResult struct {
	ClaimID    uint      `json:"claim_id"`
	StatusID   uint      `json:"status_id"`
	StatusName string    `json:"status_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateClaimUseCase struct {
	claimRepo    claim.ClaimRepository
	refResolver  *services.StatusRefResolver
	snapshotSync *services.AssigneeSnapshotSync
	recorder     *services.AuditRecorder
	logger       logger.Interface
}

func NewCreateClaimUseCase(
	claimRepo claim.ClaimRepository,
	refResolver *services.StatusRefResolver,
	snapshotSync *services.AssigneeSnapshotSync,
	recorder *services.AuditRecorder,
	logger logger.Interface,
) *CreateClaimUseCase {
	return &CreateClaimUseCase{
		claimRepo:    claimRepo,
		refResolver:  refResolver,
		snapshotSync: snapshotSync,
		recorder:     recorder,
		logger:       logger,
	}
}

func (uc *CreateClaimUseCase) Execute(ctx context.Context, cmd CreateClaimCommand) (*CreateClaimResult, error) {
	uc.logger.Infow("creating claim", "subject", cmd.Subject, "actor_id", cmd.Actor.ID)

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		priority = p
	}

	initialStatus, err := uc.refResolver.ResolveStatusOrDefault(ctx, cmd.StatusRef)
	if err != nil {
		return nil, err
	}

	c, err := claim.NewClaim(cmd.Subject, cmd.ClientName, cmd.ContactInfo, cmd.Description, initialStatus.ID(), priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Claims created directly into a terminal status are resolved at birth.
	if initialStatus.IsTerminal() {
		if err := c.ApplyStatusChange(initialStatus.ID(), true); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	}

	if cmd.SubStatusRef != "" {
		ss, err := uc.refResolver.ResolveSubStatus(ctx, initialStatus.ID(), cmd.SubStatusRef)
		if err != nil {
			return nil, err
		}
		subID := ss.ID()
		c.ApplySubStatusChange(&subID)
	}

	if cmd.ClientEmail != nil {
		c.SetClientEmail(cmd.ClientEmail)
	}
	if cmd.ClientPhone != nil {
		c.SetClientPhone(cmd.ClientPhone)
	}
	if cmd.Category != nil {
		c.SetCategory(cmd.Category)
	}

	if cmd.AssigneeID != nil {
		if _, err := uc.snapshotSync.Apply(ctx, c, cmd.AssigneeID); err != nil {
			return nil, err
		}
	}

	if err := uc.recorder.Record(c, vo.EventCreated, cmd.Actor, nil, "Claim created"); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.claimRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save claim", "error", err)
		return nil, errors.NewInternalError("failed to save claim")
	}

	uc.logger.Infow("claim created", "claim_id", c.ID(), "status_id", c.StatusID())
	return &CreateClaimResult{
		ClaimID:    c.ID(),
		StatusID:   c.StatusID(),
		StatusName: initialStatus.Name(),
		CreatedAt:  c.CreatedAt(),
	}, nil
}
