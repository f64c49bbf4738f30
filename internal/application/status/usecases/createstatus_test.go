package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
)

func existingStatus(t *testing.T, id uint, name string) *status.Status {
	t.Helper()
	now := time.Now().UTC()
	s, err := status.ReconstructStatus(id, name, "", 0, nil, nil, nil, now, now)
	require.NoError(t, err)
	return s
}

func TestCreateStatusUseCase_Execute_Success(t *testing.T) {
	cache := &mockCatalogCache{}
	statusRepo := &mockStatusRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*status.Status, error) {
			return nil, errors.NewNotFoundError("status not found")
		},
		SaveFunc: func(ctx context.Context, s *status.Status) error {
			return s.SetID(3)
		},
	}

	uc := NewCreateStatusUseCase(statusRepo, cache, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateStatusCommand{
		Name:         "derivado",
		Color:        "#9c27b0",
		DisplayOrder: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.ID)
	assert.Equal(t, "derivado", result.Name)
	assert.Equal(t, 1, cache.invalidations, "catalog cache is invalidated on write")
}

func TestCreateStatusUseCase_Execute_DuplicateName(t *testing.T) {
	statusRepo := &mockStatusRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*status.Status, error) {
			return existingStatus(t, 1, "derivado"), nil
		},
	}

	uc := NewCreateStatusUseCase(statusRepo, &mockCatalogCache{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateStatusCommand{Name: "derivado"})
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestCreateStatusUseCase_Execute_DuplicateNameIsCaseInsensitive(t *testing.T) {
	// The name lookup is case-insensitive, matching the unique index on the
	// statuses table under MySQL's default collation.
	var lookedUp string
	statusRepo := &mockStatusRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*status.Status, error) {
			lookedUp = name
			return existingStatus(t, 1, "Derivado"), nil
		},
	}

	uc := NewCreateStatusUseCase(statusRepo, &mockCatalogCache{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateStatusCommand{Name: "derivado"})
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
	assert.Equal(t, "derivado", lookedUp)
}

func TestCreateStatusUseCase_Execute_InvalidColor(t *testing.T) {
	statusRepo := &mockStatusRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*status.Status, error) {
			return nil, errors.NewNotFoundError("status not found")
		},
	}

	uc := NewCreateStatusUseCase(statusRepo, &mockCatalogCache{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateStatusCommand{
		Name:  "derivado",
		Color: "purple",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
