package usecases

import (
	"context"
	"fmt"

	claimdto "claimdesk/internal/application/claim/dto"
	"claimdesk/internal/application/claim/services"
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type AssignClaimCommand struct {
	ClaimID uint
	// AgentID nil unassigns the claim.
	AgentID *uint
	Actor   claim.Actor
}

type AssignClaimUseCase struct {
	claimRepo     claim.ClaimRepository
	statusRepo    status.StatusRepository
	subStatusRepo status.SubStatusRepository
	snapshotSync  *services.AssigneeSnapshotSync
	recorder      *services.AuditRecorder
	logger        logger.Interface
}

func NewAssignClaimUseCase(
	claimRepo claim.ClaimRepository,
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
	snapshotSync *services.AssigneeSnapshotSync,
	recorder *services.AuditRecorder,
	logger logger.Interface,
) *AssignClaimUseCase {
	return &AssignClaimUseCase{
		claimRepo:     claimRepo,
		statusRepo:    statusRepo,
		subStatusRepo: subStatusRepo,
		snapshotSync:  snapshotSync,
		recorder:      recorder,
		logger:        logger,
	}
}

func (uc *AssignClaimUseCase) Execute(ctx context.Context, cmd AssignClaimCommand) (*claimdto.ClaimDTO, error) {
	if cmd.ClaimID == 0 {
		return nil, errors.NewValidationError("claim ID is required")
	}
	if cmd.AgentID != nil && *cmd.AgentID == 0 {
		return nil, errors.NewValidationError("agent ID cannot be zero")
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, errors.NewInternalError("failed to get claim")
	}

	oldAssigneeID := c.AssigneeID()

	agent, err := uc.snapshotSync.Apply(ctx, c, cmd.AgentID)
	if err != nil {
		return nil, err
	}

	description := "Claim unassigned"
	if agent != nil {
		description = fmt.Sprintf("Claim assigned to %s", agent.Name())
	}
	changes := []claim.FieldChange{
		services.Change("assignee_id", uintPtrStr(oldAssigneeID), uintPtrStr(cmd.AgentID)),
	}
	if err := uc.recorder.Record(c, vo.EventAssigned, cmd.Actor, changes, description); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.claimRepo.Update(ctx, c); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, errors.NewInternalError("failed to update claim")
	}

	uc.logger.Infow("claim assignment changed",
		"claim_id", c.ID(),
		"assignee_id", cmd.AgentID,
		"actor_id", cmd.Actor.ID,
	)

	statuses, err := uc.statusRepo.GetByIDs(ctx, []uint{c.StatusID()})
	if err != nil {
		statuses = nil
	}
	var subStatuses map[uint]*status.SubStatus
	if subID := c.SubStatusID(); subID != nil {
		if m, err := uc.subStatusRepo.GetByIDs(ctx, []uint{*subID}); err == nil {
			subStatuses = m
		}
	}
	return claimdto.ToClaimDTO(c, statuses, subStatuses), nil
}
