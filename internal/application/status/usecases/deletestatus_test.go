package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
)

func TestDeleteStatusUseCase_Execute_Success(t *testing.T) {
	var deletedOrder []string
	cache := &mockCatalogCache{}
	statusRepo := &mockStatusRepository{
		GetByIDFunc: func(ctx context.Context, statusID uint) (*status.Status, error) {
			return existingStatus(t, 3, "derivado"), nil
		},
		DeleteFunc: func(ctx context.Context, statusID uint) error {
			deletedOrder = append(deletedOrder, "status")
			return nil
		},
	}
	subRepo := &mockSubStatusRepository{
		DeleteByStatusFunc: func(ctx context.Context, statusID uint) error {
			deletedOrder = append(deletedOrder, "sub_statuses")
			return nil
		},
	}
	transitionRepo := &mockTransitionRepository{
		DeleteByStatusFunc: func(ctx context.Context, statusID uint) error {
			deletedOrder = append(deletedOrder, "transitions")
			return nil
		},
	}

	uc := NewDeleteStatusUseCase(statusRepo, subRepo, transitionRepo, &mockClaimRepository{}, &mockTransactor{}, cache, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteStatusCommand{StatusID: 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"transitions", "sub_statuses", "status"}, deletedOrder,
		"dependents are removed before the status row")
	assert.Equal(t, 1, cache.invalidations)
}

func TestDeleteStatusUseCase_Execute_RefusedWhileReferenced(t *testing.T) {
	statusRepo := &mockStatusRepository{
		GetByIDFunc: func(ctx context.Context, statusID uint) (*status.Status, error) {
			return existingStatus(t, 3, "derivado"), nil
		},
	}
	claimRepo := &mockClaimRepository{
		CountByStatusIDFunc: func(ctx context.Context, statusID uint) (int64, error) {
			return 12, nil
		},
	}

	uc := NewDeleteStatusUseCase(statusRepo, &mockSubStatusRepository{}, &mockTransitionRepository{}, claimRepo, &mockTransactor{}, &mockCatalogCache{}, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteStatusCommand{StatusID: 3})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestDeleteStatusUseCase_Execute_NotFound(t *testing.T) {
	statusRepo := &mockStatusRepository{
		GetByIDFunc: func(ctx context.Context, statusID uint) (*status.Status, error) {
			return nil, errors.NewNotFoundError("status not found")
		},
	}

	uc := NewDeleteStatusUseCase(statusRepo, &mockSubStatusRepository{}, &mockTransitionRepository{}, &mockClaimRepository{}, &mockTransactor{}, &mockCatalogCache{}, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteStatusCommand{StatusID: 404})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
