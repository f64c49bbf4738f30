package claim

import (
	"context"
	"time"

	vo "claimdesk/internal/domain/claim/valueobjects"
)

// ClaimRepository persists whole aggregates. Update must fail with a
// conflict when the stored version differs from the version the aggregate
// was loaded with.
type ClaimRepository interface {
	Save(ctx context.Context, claim *Claim) error
	Update(ctx context.Context, claim *Claim) error
	Delete(ctx context.Context, claimID uint) error
	GetByID(ctx context.Context, claimID uint) (*Claim, error)
	List(ctx context.Context, filters ClaimFilter) ([]*Claim, int64, error)
	CountByStatusID(ctx context.Context, statusID uint) (int64, error)
	CountBySubStatusID(ctx context.Context, subStatusID uint) (int64, error)
}

type ClaimFilter struct {
	StatusID    *uint
	SubStatusID *uint
	Priority    *vo.Priority
	AssigneeID  *uint
	Unassigned  *bool
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}
