package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	claimservices "claimdesk/internal/application/claim/services"
	statusservices "claimdesk/internal/application/status/services"
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
)

type updateClaimMocks struct {
	claimRepo      *mockClaimRepository
	statusRepo     *mockStatusRepository
	subStatusRepo  *mockSubStatusRepository
	transitionRepo *mockTransitionRepository
	users          *mockUserDirectory
}

func newUpdateClaimFixture(m updateClaimMocks) *UpdateClaimUseCase {
	if m.claimRepo == nil {
		m.claimRepo = &mockClaimRepository{}
	}
	if m.statusRepo == nil {
		m.statusRepo = &mockStatusRepository{}
	}
	if m.subStatusRepo == nil {
		m.subStatusRepo = &mockSubStatusRepository{}
	}
	if m.transitionRepo == nil {
		m.transitionRepo = &mockTransitionRepository{}
	}
	if m.users == nil {
		m.users = &mockUserDirectory{}
	}
	log := &mockLogger{}
	return NewUpdateClaimUseCase(
		m.claimRepo,
		m.statusRepo,
		m.subStatusRepo,
		claimservices.NewStatusRefResolver(m.statusRepo, m.subStatusRepo),
		statusservices.NewTransitionValidator(m.transitionRepo),
		claimservices.NewAssigneeSnapshotSync(m.users, log),
		claimservices.NewAuditRecorder(log),
		log,
	)
}

func TestUpdateClaimUseCase_Execute_StatusChange(t *testing.T) {
	c := claimFixture(t, 5, 1)
	target := statusFixture(t, 2, "en revision", 2)

	var updated *claim.Claim
	m := updateClaimMocks{
		claimRepo: &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
				return c, nil
			},
			UpdateFunc: func(ctx context.Context, c *claim.Claim) error {
				updated = c
				return nil
			},
		},
		statusRepo: &mockStatusRepository{
			GetByIDFunc: func(ctx context.Context, statusID uint) (*status.Status, error) {
				if statusID == 2 {
					return target, nil
				}
				return nil, errors.NewNotFoundError("status not found")
			},
			GetByIDsFunc: func(ctx context.Context, statusIDs []uint) (map[uint]*status.Status, error) {
				return map[uint]*status.Status{2: target}, nil
			},
		},
		transitionRepo: &mockTransitionRepository{
			ListFromFunc: func(ctx context.Context, fromStatusID uint) ([]*status.Transition, error) {
				return []*status.Transition{transitionFixture(t, 1, 1, 2, []string{"agent"})}, nil
			},
		},
	}

	uc := newUpdateClaimFixture(m)

	statusRef := "2"
	result, err := uc.Execute(context.Background(), UpdateClaimCommand{
		ClaimID:   5,
		StatusRef: &statusRef,
		Actor:     agentActor(),
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, uint(2), updated.StatusID())
	require.NotNil(t, result.Status)
	assert.Equal(t, uint(2), result.Status.ID)

	trail := updated.AuditTrail()
	require.Len(t, trail, 1)
	assert.Equal(t, vo.EventStatusChanged, trail[0].EventType())
}

func TestUpdateClaimUseCase_Execute_ForbiddenTransition(t *testing.T) {
	c := claimFixture(t, 5, 1)
	target := statusFixture(t, 2, "en revision", 2)

	m := updateClaimMocks{
		claimRepo: &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
				return c, nil
			},
		},
		statusRepo: &mockStatusRepository{
			GetByIDFunc: func(ctx context.Context, statusID uint) (*status.Status, error) {
				return target, nil
			},
		},
		transitionRepo: &mockTransitionRepository{
			ListFromFunc: func(ctx context.Context, fromStatusID uint) ([]*status.Transition, error) {
				return []*status.Transition{transitionFixture(t, 1, 1, 2, []string{"admin"})}, nil
			},
		},
	}

	uc := newUpdateClaimFixture(m)

	statusRef := "2"
	_, err := uc.Execute(context.Background(), UpdateClaimCommand{
		ClaimID:   5,
		StatusRef: &statusRef,
		Actor:     agentActor(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsPermissionError(err))
	assert.Equal(t, uint(1), c.StatusID(), "claim stays in its status when the transition is denied")
}

func TestUpdateClaimUseCase_Execute_ClearableFields(t *testing.T) {
	c := claimFixture(t, 5, 1)
	email := "old@example.com"
	c.SetClientEmail(&email)

	var updated *claim.Claim
	m := updateClaimMocks{
		claimRepo: &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
				return c, nil
			},
			UpdateFunc: func(ctx context.Context, c *claim.Claim) error {
				updated = c
				return nil
			},
		},
	}

	uc := newUpdateClaimFixture(m)

	empty := ""
	category := "facturacion"
	_, err := uc.Execute(context.Background(), UpdateClaimCommand{
		ClaimID:     5,
		ClientEmail: &empty,
		Category:    &category,
		Actor:       agentActor(),
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.ClientEmail(), "empty string clears the field")
	require.NotNil(t, updated.Category())
	assert.Equal(t, "facturacion", *updated.Category())
}

func TestUpdateClaimUseCase_Execute_PriorityNoChangeRecordsNothing(t *testing.T) {
	c := claimFixture(t, 5, 1)

	var updated *claim.Claim
	m := updateClaimMocks{
		claimRepo: &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
				return c, nil
			},
			UpdateFunc: func(ctx context.Context, c *claim.Claim) error {
				updated = c
				return nil
			},
		},
	}

	uc := newUpdateClaimFixture(m)

	priority := "medium"
	_, err := uc.Execute(context.Background(), UpdateClaimCommand{
		ClaimID:  5,
		Priority: &priority,
		Actor:    agentActor(),
	})

	require.NoError(t, err)
	assert.Empty(t, updated.AuditTrail(), "unchanged fields produce no audit event")
}

func TestUpdateClaimUseCase_Execute_NotFound(t *testing.T) {
	m := updateClaimMocks{
		claimRepo: &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
				return nil, errors.NewNotFoundError("claim not found")
			},
		},
	}

	uc := newUpdateClaimFixture(m)

	_, err := uc.Execute(context.Background(), UpdateClaimCommand{ClaimID: 404, Actor: agentActor()})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateClaimUseCase_Execute_VersionConflictPropagates(t *testing.T) {
	c := claimFixture(t, 5, 1)

	m := updateClaimMocks{
		claimRepo: &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
				return c, nil
			},
			UpdateFunc: func(ctx context.Context, c *claim.Claim) error {
				return errors.NewConflictError("claim was modified concurrently")
			},
		},
	}

	uc := newUpdateClaimFixture(m)

	subject := "New subject"
	_, err := uc.Execute(context.Background(), UpdateClaimCommand{
		ClaimID: 5,
		Subject: &subject,
		Actor:   agentActor(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}
