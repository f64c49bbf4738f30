package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/application/claim/services"
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/shared/errors"
)

func newDeleteClaimFixture(claimRepo *mockClaimRepository, tx *mockTransactor) *DeleteClaimUseCase {
	log := &mockLogger{}
	return NewDeleteClaimUseCase(claimRepo, services.NewAuditRecorder(log), tx, log)
}

func TestDeleteClaimUseCase_Execute_Success(t *testing.T) {
	c := claimFixture(t, 5, 1)

	var updatedBeforeDelete bool
	var deleted bool
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, c *claim.Claim) error {
			updatedBeforeDelete = !deleted
			return nil
		},
		DeleteFunc: func(ctx context.Context, claimID uint) error {
			deleted = true
			return nil
		},
	}

	uc := newDeleteClaimFixture(claimRepo, &mockTransactor{})

	err := uc.Execute(context.Background(), DeleteClaimCommand{ClaimID: 5, Actor: adminActor()})
	require.NoError(t, err)

	assert.True(t, deleted)
	assert.True(t, updatedBeforeDelete, "the deleted event is persisted before the row is removed")

	trail := c.AuditTrail()
	require.Len(t, trail, 1)
	assert.Equal(t, vo.EventDeleted, trail[0].EventType())
}

func TestDeleteClaimUseCase_Execute_RequiresAdmin(t *testing.T) {
	uc := newDeleteClaimFixture(&mockClaimRepository{}, &mockTransactor{})

	err := uc.Execute(context.Background(), DeleteClaimCommand{ClaimID: 5, Actor: agentActor()})
	require.Error(t, err)
	assert.True(t, errors.IsPermissionError(err))
}

func TestDeleteClaimUseCase_Execute_TransactionRollback(t *testing.T) {
	c := claimFixture(t, 5, 1)
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return c, nil
		},
		DeleteFunc: func(ctx context.Context, claimID uint) error {
			return errors.NewInternalError("disk on fire")
		},
	}

	uc := newDeleteClaimFixture(claimRepo, &mockTransactor{})

	err := uc.Execute(context.Background(), DeleteClaimCommand{ClaimID: 5, Actor: adminActor()})
	require.Error(t, err)
}

func TestDeleteClaimUseCase_Execute_NotFound(t *testing.T) {
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return nil, errors.NewNotFoundError("claim not found")
		},
	}

	uc := newDeleteClaimFixture(claimRepo, &mockTransactor{})

	err := uc.Execute(context.Background(), DeleteClaimCommand{ClaimID: 404, Actor: adminActor()})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
