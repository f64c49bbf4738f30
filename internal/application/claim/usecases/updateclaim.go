package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	claimdto "claimdesk/internal/application/claim/dto"
	claimservices "claimdesk/internal/application/claim/services"
	statusservices "claimdesk/internal/application/status/services"
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

// UpdateClaimCommand carries a partial update. Pointer fields are left
// untouched when nil. For the clearable reference fields (SubStatusRef,
// AssigneeRef, Category, ClientEmail, ClientPhone, ResolutionSummary) an
// empty string clears the value.
type UpdateClaimCommand struct {
	ClaimID           uint
	Subject           *string
	ClientName        *string
	ContactInfo       *string
	ClientEmail       *string
	ClientPhone       *string
	Description       *string
	StatusRef         *string
	SubStatusRef      *string
	Priority          *string
	Category          *string
	AssigneeRef       *string
	ResolutionSummary *string
	Actor             claim.Actor
}

// UpdateClaimUseCase applies a partial update to a claim. Workflow fields
// (status, sub-status, priority) that change are recorded together in one
// audit event; a status change is validated against the transition graph
// first and drops a sub-status that no longer belongs to the new status.
type UpdateClaimUseCase struct {
	claimRepo    claim.ClaimRepository
	statusRepo   status.StatusRepository
	subStatusRepo status.SubStatusRepository
	refResolver  *claimservices.StatusRefResolver
	validator    *statusservices.TransitionValidator
	snapshotSync *claimservices.AssigneeSnapshotSync
	recorder     *claimservices.AuditRecorder
	logger       logger.Interface
}

func NewUpdateClaimUseCase(
	claimRepo claim.ClaimRepository,
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
	refResolver *claimservices.StatusRefResolver,
	validator *statusservices.TransitionValidator,
	snapshotSync *claimservices.AssigneeSnapshotSync,
	recorder *claimservices.AuditRecorder,
	logger logger.Interface,
) *UpdateClaimUseCase {
	return &UpdateClaimUseCase{
		claimRepo:    claimRepo,
		statusRepo:   statusRepo,
		subStatusRepo: subStatusRepo,
		refResolver:  refResolver,
		validator:    validator,
		snapshotSync: snapshotSync,
		recorder:     recorder,
		logger:       logger,
	}
}

func (uc *UpdateClaimUseCase) Execute(ctx context.Context, cmd UpdateClaimCommand) (*claimdto.ClaimDTO, error) {
	if cmd.ClaimID == 0 {
		return nil, errors.NewValidationError("claim ID is required")
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, errors.NewInternalError("failed to get claim")
	}

	if err := uc.applyDetailFields(c, cmd); err != nil {
		return nil, err
	}

	changes, err := uc.applyWorkflowFields(ctx, c, cmd)
	if err != nil {
		return nil, err
	}

	if cmd.AssigneeRef != nil {
		if err := uc.applyAssignee(ctx, c, *cmd.AssigneeRef); err != nil {
			return nil, err
		}
	}

	if len(changes) > 0 {
		eventType := vo.EventUpdated
		if len(changes) == 1 {
			switch changes[0].Field {
			case "status_id":
				eventType = vo.EventStatusChanged
			case "sub_status_id":
				eventType = vo.EventSubStatusChanged
			}
		}
		if err := uc.recorder.Record(c, eventType, cmd.Actor, changes, "Claim updated"); err != nil {
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

	uc.logger.Infow("claim updated", "claim_id", c.ID(), "changes", len(changes))
	return uc.assembleDTO(ctx, c), nil
}

func (uc *UpdateClaimUseCase) applyDetailFields(c *claim.Claim, cmd UpdateClaimCommand) error {
	if cmd.Subject != nil {
		if err := c.UpdateSubject(*cmd.Subject); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := c.UpdateDescription(*cmd.Description); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.ClientName != nil || cmd.ContactInfo != nil {
		name := c.ClientName()
		contact := c.ContactInfo()
		if cmd.ClientName != nil {
			name = *cmd.ClientName
		}
		if cmd.ContactInfo != nil {
			contact = *cmd.ContactInfo
		}
		if err := c.UpdateClientInfo(name, contact); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.ClientEmail != nil {
		c.SetClientEmail(optionalString(*cmd.ClientEmail))
	}
	if cmd.ClientPhone != nil {
		c.SetClientPhone(optionalString(*cmd.ClientPhone))
	}
	if cmd.Category != nil {
		c.SetCategory(optionalString(*cmd.Category))
	}
	if cmd.ResolutionSummary != nil {
		c.SetResolutionSummary(optionalString(*cmd.ResolutionSummary))
	}
	return nil
}

func (uc *UpdateClaimUseCase) applyWorkflowFields(ctx context.Context, c *claim.Claim, cmd UpdateClaimCommand) ([]claim.FieldChange, error) {
	var changes []claim.FieldChange

	newStatusID := c.StatusID()
	if cmd.StatusRef != nil && strings.TrimSpace(*cmd.StatusRef) != "" {
		target, err := uc.refResolver.ResolveStatus(ctx, *cmd.StatusRef)
		if err != nil {
			return nil, err
		}
		if target.ID() != c.StatusID() {
			if _, err := uc.validator.Validate(ctx, c.StatusID(), target.ID(), cmd.Actor.Role); err != nil {
				return nil, err
			}

			oldStatusID := c.StatusID()
			oldSubStatusID := c.SubStatusID()
			if err := c.ApplyStatusChange(target.ID(), target.IsTerminal()); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			newStatusID = target.ID()

			changes = append(changes, claimservices.Change("status_id",
				uintStr(oldStatusID), uintStr(target.ID())))
			if oldSubStatusID != nil {
				changes = append(changes, claimservices.Change("sub_status_id",
					uintPtrStr(oldSubStatusID), nil))
			}
		}
	}

	if cmd.SubStatusRef != nil {
		ref := strings.TrimSpace(*cmd.SubStatusRef)
		oldSubStatusID := c.SubStatusID()
		if ref == "" {
			if oldSubStatusID != nil {
				c.ApplySubStatusChange(nil)
				changes = append(changes, claimservices.Change("sub_status_id",
					uintPtrStr(oldSubStatusID), nil))
			}
		} else {
			ss, err := uc.refResolver.ResolveSubStatus(ctx, newStatusID, ref)
			if err != nil {
				return nil, err
			}
			if oldSubStatusID == nil || *oldSubStatusID != ss.ID() {
				subID := ss.ID()
				c.ApplySubStatusChange(&subID)
				changes = append(changes, claimservices.Change("sub_status_id",
					uintPtrStr(oldSubStatusID), uintStr(ss.ID())))
			}
		}
	}

	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if p != c.Priority() {
			old := c.Priority().String()
			if err := c.ChangePriority(p); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			changes = append(changes, claimservices.Change("priority",
				claimservices.StrPtr(old), claimservices.StrPtr(p.String())))
		}
	}

	return changes, nil
}

func (uc *UpdateClaimUseCase) applyAssignee(ctx context.Context, c *claim.Claim, ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		_, err := uc.snapshotSync.Apply(ctx, c, nil)
		return err
	}

	agentID, err := strconv.ParseUint(ref, 10, 32)
	if err != nil {
		return errors.NewValidationError(fmt.Sprintf("invalid assignee reference %q", ref))
	}
	id := uint(agentID)
	_, err = uc.snapshotSync.Apply(ctx, c, &id)
	return err
}

func (uc *UpdateClaimUseCase) assembleDTO(ctx context.Context, c *claim.Claim) *claimdto.ClaimDTO {
	statuses, err := uc.statusRepo.GetByIDs(ctx, []uint{c.StatusID()})
	if err != nil {
		uc.logger.Warnw("failed to load status for response", "claim_id", c.ID(), "error", err)
		statuses = nil
	}
	var subStatuses map[uint]*status.SubStatus
	if subID := c.SubStatusID(); subID != nil {
		subStatuses, err = uc.subStatusRepo.GetByIDs(ctx, []uint{*subID})
		if err != nil {
			uc.logger.Warnw("failed to load sub-status for response", "claim_id", c.ID(), "error", err)
			subStatuses = nil
		}
	}
	return claimdto.ToClaimDTO(c, statuses, subStatuses)
}

func optionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func uintStr(v uint) *string {
	s := strconv.FormatUint(uint64(v), 10)
	return &s
}

func uintPtrStr(v *uint) *string {
	if v == nil {
		return nil
	}
	return uintStr(*v)
}
