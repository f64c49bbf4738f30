package services

import (
	"context"
	"fmt"

	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/domain/directory"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

// AssigneeSnapshotSync keeps the denormalized assignee snapshot on a claim
// consistent with the user directory.
type AssigneeSnapshotSync struct {
	users  directory.UserDirectory
	logger logger.Interface
}

func NewAssigneeSnapshotSync(
	users directory.UserDirectory,
	logger logger.Interface,
) *AssigneeSnapshotSync {
	return &AssigneeSnapshotSync{users: users, logger: logger}
}

// Apply assigns agentID (or clears the assignment when nil), resolving the
// agent from the directory and writing its snapshot in the same step so
// the two fields can never diverge.
func (s *AssigneeSnapshotSync) Apply(ctx context.Context, c *claim.Claim, agentID *uint) (*directory.User, error) {
	if agentID == nil {
		if err := c.Assign(nil, nil); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
		return nil, nil
	}

	agent, err := s.users.GetByID(ctx, *agentID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("agent %d not found", *agentID))
		}
		return nil, err
	}

	snapshot, err := Snapshot(agent)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := c.Assign(agentID, &snapshot); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	return agent, nil
}

// Refresh re-reads the current assignee and updates a stale snapshot.
// Directory failures are logged, not escalated: the claim keeps serving
// the last known snapshot.
func (s *AssigneeSnapshotSync) Refresh(ctx context.Context, c *claim.Claim) {
	agentID := c.AssigneeID()
	if agentID == nil {
		return
	}

	agent, err := s.users.GetByID(ctx, *agentID)
	if err != nil {
		s.logger.Warnw("failed to refresh assignee snapshot",
			"claim_id", c.ID(),
			"assignee_id", *agentID,
			"error", err,
		)
		return
	}

	snapshot, err := Snapshot(agent)
	if err != nil {
		s.logger.Warnw("failed to build assignee snapshot", "claim_id", c.ID(), "error", err)
		return
	}
	if snap := c.AssigneeSnapshot(); snap != nil && snap.Equal(snapshot) {
		return
	}
	if err := c.RefreshAssigneeSnapshot(snapshot); err != nil {
		s.logger.Warnw("failed to apply assignee snapshot", "claim_id", c.ID(), "error", err)
	}
}

// Snapshot builds the denormalized view of a directory user.
func Snapshot(agent *directory.User) (vo.AssigneeSnapshot, error) {
	area := ""
	if agent.Area() != nil {
		area = *agent.Area()
	}
	return vo.NewAssigneeSnapshot(agent.Name(), agent.Email(), area)
}
