package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/infrastructure/persistence/models"
	apperrors "claimdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(&models.ClaimModel{})
	require.NoError(t, err)

	return database
}

// insertClaimRow writes a claim row directly so tests control created_at and
// resolved_at down to the stored millisecond.
func insertClaimRow(t *testing.T, database *gorm.DB, id uint, createdAt time.Time, resolvedAt *time.Time) {
	t.Helper()
	row := models.ClaimModel{
		ID:          id,
		Subject:     "Billing discrepancy",
		ClientName:  "Maria Perez",
		ContactInfo: "maria@example.com",
		Description: "Charged twice",
		StatusID:    1,
		Priority:    "medium",
		Version:     1,
		CreatedAt:   createdAt.UnixMilli(),
		UpdatedAt:   createdAt.UnixMilli(),
	}
	if resolvedAt != nil {
		millis := resolvedAt.UnixMilli()
		row.ResolvedAt = &millis
	}
	require.NoError(t, database.Create(&row).Error)
}

func TestClaimOrderClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{name: "default is compound descending", sortBy: "", sortOrder: "", want: "resolved_at DESC, created_at DESC"},
		{name: "created_at keeps the compound order", sortBy: "created_at", sortOrder: "asc", want: "resolved_at ASC, created_at ASC"},
		{name: "other whitelisted fields sort singly", sortBy: "priority", sortOrder: "ASC", want: "priority ASC"},
		{name: "field casing is normalized", sortBy: "UPDATED_AT", sortOrder: "desc", want: "updated_at DESC"},
		{name: "unknown field falls back to default", sortBy: "drop table claims", sortOrder: "asc", want: "resolved_at ASC, created_at ASC"},
		{name: "unknown direction falls back to DESC", sortBy: "id", sortOrder: "sideways", want: "id DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, claimOrderClause(tt.sortBy, tt.sortOrder))
		})
	}
}

func TestClaimRepository_List_CompoundCreatedAtSort(t *testing.T) {
	database := setupTestDB(t)
	repo := NewClaimRepository(database)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }
	resolvedEarlier := day(5)
	resolvedLater := day(6)

	insertClaimRow(t, database, 1, day(1), nil)              // older, open
	insertClaimRow(t, database, 2, day(4), nil)              // newest, open
	insertClaimRow(t, database, 3, day(2), &resolvedEarlier) // resolved first
	insertClaimRow(t, database, 4, day(3), &resolvedLater)   // resolved last

	listIDs := func(filter claim.ClaimFilter) []uint {
		claims, total, err := repo.List(ctx, filter)
		require.NoError(t, err)
		require.Equal(t, int64(4), total)
		ids := make([]uint, len(claims))
		for i, c := range claims {
			ids[i] = c.ID()
		}
		return ids
	}

	// Default sort: resolved claims bucketed by resolution recency ahead of
	// open ones by creation date, NULL resolved_at last under DESC.
	assert.Equal(t, []uint{4, 3, 2, 1}, listIDs(claim.ClaimFilter{}))

	// Plain created_at would yield {2,4,3,1}; the compound order must win.
	assert.Equal(t, []uint{4, 3, 2, 1},
		listIDs(claim.ClaimFilter{SortBy: "created_at", SortOrder: "desc"}))

	// Single-field whitelist sort bypasses the compound order.
	assert.Equal(t, []uint{1, 2, 3, 4},
		listIDs(claim.ClaimFilter{SortBy: "id", SortOrder: "asc"}))
}

func TestClaimRepository_List_Filters(t *testing.T) {
	database := setupTestDB(t)
	repo := NewClaimRepository(database)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	insertClaimRow(t, database, 1, base, nil)
	insertClaimRow(t, database, 2, base.Add(time.Hour), nil)

	assignee := uint(42)
	require.NoError(t, database.Model(&models.ClaimModel{}).
		Where("id = ?", 2).Update("assignee_id", assignee).Error)

	unassigned := true
	claims, total, err := repo.List(ctx, claim.ClaimFilter{Unassigned: &unassigned})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, claims, 1)
	assert.Equal(t, uint(1), claims[0].ID())

	claims, total, err = repo.List(ctx, claim.ClaimFilter{AssigneeID: &assignee})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, claims, 1)
	assert.Equal(t, uint(2), claims[0].ID())

	_, total, err = repo.List(ctx, claim.ClaimFilter{Search: "discrepancy"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = repo.List(ctx, claim.ClaimFilter{Search: "no such text"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestClaimRepository_Update_AdvancesVersion(t *testing.T) {
	database := setupTestDB(t)
	repo := NewClaimRepository(database)
	ctx := context.Background()

	c, err := claim.NewClaim("Billing discrepancy", "Maria Perez", "maria@example.com", "Charged twice", 1, vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, c))
	require.Equal(t, 1, c.Version())

	loaded, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, loaded))
	assert.Equal(t, 2, loaded.Version(), "in-memory aggregate must match the stored row")

	stored, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Version())
}

func TestClaimRepository_Update_StaleVersionConflicts(t *testing.T) {
	database := setupTestDB(t)
	repo := NewClaimRepository(database)
	ctx := context.Background()

	c, err := claim.NewClaim("Billing discrepancy", "Maria Perez", "maria@example.com", "Charged twice", 1, vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, c))

	first, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	stale, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, first))

	err = repo.Update(ctx, stale)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestClaimRepository_Update_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewClaimRepository(database)

	missing, err := claim.ReconstructClaim(
		99, "Subject", "Maria", "maria@example.com", nil, nil, "desc",
		1, nil, vo.PriorityLow, nil,
		nil, nil, nil, nil, 1, time.Now().UTC(), time.Now().UTC(), nil, nil, nil,
	)
	require.NoError(t, err)

	err = repo.Update(context.Background(), missing)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestClaimRepository_GetByID_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewClaimRepository(database)

	_, err := repo.GetByID(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
