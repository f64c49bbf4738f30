package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/application/claim/services"
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/domain/directory"
	"claimdesk/internal/shared/errors"
)

func newAssignClaimFixture(claimRepo *mockClaimRepository, users *mockUserDirectory) *AssignClaimUseCase {
	log := &mockLogger{}
	return NewAssignClaimUseCase(
		claimRepo,
		&mockStatusRepository{},
		&mockSubStatusRepository{},
		services.NewAssigneeSnapshotSync(users, log),
		services.NewAuditRecorder(log),
		log,
	)
}

func TestAssignClaimUseCase_Execute_Assign(t *testing.T) {
	c := claimFixture(t, 5, 1)
	agent := userFixture(t, 42, "Juan Soto", "juan@claimdesk.local", "agent")

	var updated *claim.Claim
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, c *claim.Claim) error {
			updated = c
			return nil
		},
	}
	users := &mockUserDirectory{
		GetByIDFunc: func(ctx context.Context, userID uint) (*directory.User, error) {
			require.Equal(t, uint(42), userID)
			return agent, nil
		},
	}

	uc := newAssignClaimFixture(claimRepo, users)

	agentID := uint(42)
	result, err := uc.Execute(context.Background(), AssignClaimCommand{
		ClaimID: 5,
		AgentID: &agentID,
		Actor:   adminActor(),
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	require.NotNil(t, updated.AssigneeID())
	assert.Equal(t, uint(42), *updated.AssigneeID())
	require.NotNil(t, updated.AssigneeSnapshot())
	assert.Equal(t, "Juan Soto", updated.AssigneeSnapshot().Name)
	assert.Equal(t, "juan@claimdesk.local", updated.AssigneeSnapshot().Email)

	trail := updated.AuditTrail()
	require.Len(t, trail, 1)
	assert.Equal(t, vo.EventAssigned, trail[0].EventType())
	require.Len(t, trail[0].Changes(), 1)
	assert.Equal(t, "assignee_id", trail[0].Changes()[0].Field)
}

func TestAssignClaimUseCase_Execute_Unassign(t *testing.T) {
	c := claimFixture(t, 5, 1)
	snapshot, err := vo.NewAssigneeSnapshot("Juan Soto", "juan@claimdesk.local", "billing")
	require.NoError(t, err)
	oldID := uint(42)
	require.NoError(t, c.Assign(&oldID, &snapshot))

	var updated *claim.Claim
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, c *claim.Claim) error {
			updated = c
			return nil
		},
	}

	uc := newAssignClaimFixture(claimRepo, &mockUserDirectory{})

	_, err = uc.Execute(context.Background(), AssignClaimCommand{
		ClaimID: 5,
		AgentID: nil,
		Actor:   adminActor(),
	})

	require.NoError(t, err)
	assert.Nil(t, updated.AssigneeID())
	assert.Nil(t, updated.AssigneeSnapshot(), "unassigning clears the snapshot too")
}

func TestAssignClaimUseCase_Execute_UnknownAgent(t *testing.T) {
	c := claimFixture(t, 5, 1)
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return c, nil
		},
	}
	users := &mockUserDirectory{
		GetByIDFunc: func(ctx context.Context, userID uint) (*directory.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := newAssignClaimFixture(claimRepo, users)

	agentID := uint(99)
	_, err := uc.Execute(context.Background(), AssignClaimCommand{
		ClaimID: 5,
		AgentID: &agentID,
		Actor:   adminActor(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Nil(t, c.AssigneeID(), "assignment is untouched when the agent lookup fails")
}

func TestAssignClaimUseCase_Execute_ZeroAgentID(t *testing.T) {
	uc := newAssignClaimFixture(&mockClaimRepository{}, &mockUserDirectory{})

	zero := uint(0)
	_, err := uc.Execute(context.Background(), AssignClaimCommand{
		ClaimID: 5,
		AgentID: &zero,
		Actor:   adminActor(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
