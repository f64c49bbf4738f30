package status

import (
	"fmt"
	"strings"
	"time"

	"claimdesk/internal/shared/biztime"
)

// SubStatus refines a parent Status with a finer-grained stage.
type SubStatus struct {
	id           uint
	statusID     uint
	name         string
	displayOrder int
	description  *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSubStatus(
	statusID uint,
	name string,
	displayOrder int,
	description *string,
) (*SubStatus, error) {
	if statusID == 0 {
		return nil, fmt.Errorf("parent status ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if displayOrder < 0 {
		return nil, fmt.Errorf("display order cannot be negative")
	}

	now := biztime.NowUTC()
	return &SubStatus{
		statusID:     statusID,
		name:         name,
		displayOrder: displayOrder,
		description:  description,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructSubStatus(
	id uint,
	statusID uint,
	name string,
	displayOrder int,
	description *string,
	createdAt, updatedAt time.Time,
) (*SubStatus, error) {
	if id == 0 {
		return nil, fmt.Errorf("sub-status ID cannot be zero")
	}
	if statusID == 0 {
		return nil, fmt.Errorf("parent status ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &SubStatus{
		id:           id,
		statusID:     statusID,
		name:         name,
		displayOrder: displayOrder,
		description:  description,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (s *SubStatus) ID() uint {
	return s.id
}

func (s *SubStatus) StatusID() uint {
	return s.statusID
}

func (s *SubStatus) Name() string {
	return s.name
}

func (s *SubStatus) DisplayOrder() int {
	return s.displayOrder
}

func (s *SubStatus) Description() *string {
	return s.description
}

func (s *SubStatus) CreatedAt() time.Time {
	return s.createdAt
}

func (s *SubStatus) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *SubStatus) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("sub-status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("sub-status ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *SubStatus) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	s.name = name
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *SubStatus) SetDisplayOrder(order int) error {
	if order < 0 {
		return fmt.Errorf("display order cannot be negative")
	}
	s.displayOrder = order
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *SubStatus) SetDescription(description *string) {
	s.description = description
	s.updatedAt = biztime.NowUTC()
}

// BelongsTo reports whether this sub-status refines the given status.
func (s *SubStatus) BelongsTo(statusID uint) bool {
	return s.statusID == statusID
}
