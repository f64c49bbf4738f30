package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/errors"
)

// StatusRefResolver turns user-supplied status references into catalog
// entities. A reference may be a numeric ID or a status name; names match
// case-insensitively.
type StatusRefResolver struct {
	statusRepo    status.StatusRepository
	subStatusRepo status.SubStatusRepository
}

func NewStatusRefResolver(
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
) *StatusRefResolver {
	return &StatusRefResolver{
		statusRepo:    statusRepo,
		subStatusRepo: subStatusRepo,
	}
}

func (r *StatusRefResolver) ResolveStatus(ctx context.Context, ref string) (*status.Status, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.NewValidationError("status reference is required")
	}

	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		s, err := r.statusRepo.GetByID(ctx, uint(id))
		if err == nil {
			return s, nil
		}
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		// Fall through: a purely numeric status name is unusual but legal.
	}

	s, err := r.statusRepo.GetByName(ctx, ref)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("status %q not found", ref))
		}
		return nil, err
	}
	return s, nil
}

// ResolveStatusOrDefault resolves ref, or returns the catalog's default
// status (lowest display order) when ref is empty.
func (r *StatusRefResolver) ResolveStatusOrDefault(ctx context.Context, ref string) (*status.Status, error) {
	if strings.TrimSpace(ref) == "" {
		s, err := r.statusRepo.GetDefault(ctx)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("no statuses configured")
			}
			return nil, err
		}
		return s, nil
	}
	return r.ResolveStatus(ctx, ref)
}

// ResolveSubStatus resolves ref within the given parent status.
func (r *StatusRefResolver) ResolveSubStatus(ctx context.Context, statusID uint, ref string) (*status.SubStatus, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.NewValidationError("sub-status reference is required")
	}

	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		ss, err := r.subStatusRepo.GetByID(ctx, uint(id))
		if err == nil {
			if !ss.BelongsTo(statusID) {
				return nil, errors.NewValidationError(
					fmt.Sprintf("sub-status %d does not belong to status %d", ss.ID(), statusID))
			}
			return ss, nil
		}
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
	}

	ss, err := r.subStatusRepo.GetByName(ctx, statusID, ref)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("sub-status %q not found", ref))
		}
		return nil, err
	}
	return ss, nil
}
