package status

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"claimdesk/internal/shared/biztime"
)

// terminalStatusNames are the status names that mark a claim as resolved.
// Matching is case-insensitive; the set reflects the workflow vocabulary
// used by the operations teams.
var terminalStatusNames = []string{"resuelto", "cerrado", "finalizado", "completado"}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Status is one configurable step in the claim workflow.
type Status struct {
	id           uint
	name         string
	color        string
	displayOrder int
	description  *string
	area         *string
	permissions  map[string]interface{}
	createdAt    time.Time
	updatedAt    time.Time
}

func NewStatus(
	name string,
	color string,
	displayOrder int,
	description *string,
	area *string,
	permissions map[string]interface{},
) (*Status, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if color != "" && !colorPattern.MatchString(color) {
		return nil, fmt.Errorf("color must be a hex value like #ff8800")
	}
	if displayOrder < 0 {
		return nil, fmt.Errorf("display order cannot be negative")
	}
	if permissions == nil {
		permissions = make(map[string]interface{})
	}

	now := biztime.NowUTC()
	return &Status{
		name:         name,
		color:        color,
		displayOrder: displayOrder,
		description:  description,
		area:         area,
		permissions:  permissions,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructStatus(
	id uint,
	name string,
	color string,
	displayOrder int,
	description *string,
	area *string,
	permissions map[string]interface{},
	createdAt, updatedAt time.Time,
) (*Status, error) {
	if id == 0 {
		return nil, fmt.Errorf("status ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if permissions == nil {
		permissions = make(map[string]interface{})
	}

	return &Status{
		id:           id,
		name:         name,
		color:        color,
		displayOrder: displayOrder,
		description:  description,
		area:         area,
		permissions:  permissions,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (s *Status) ID() uint {
	return s.id
}

func (s *Status) Name() string {
	return s.name
}

func (s *Status) Color() string {
	return s.color
}

func (s *Status) DisplayOrder() int {
	return s.displayOrder
}

func (s *Status) Description() *string {
	return s.description
}

func (s *Status) Area() *string {
	return s.area
}

func (s *Status) Permissions() map[string]interface{} {
	return s.permissions
}

func (s *Status) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Status) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Status) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Status) Rename(name string) error {
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

func (s *Status) SetColor(color string) error {
	if color != "" && !colorPattern.MatchString(color) {
		return fmt.Errorf("color must be a hex value like #ff8800")
	}
	s.color = color
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *Status) SetDisplayOrder(order int) error {
	if order < 0 {
		return fmt.Errorf("display order cannot be negative")
	}
	s.displayOrder = order
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *Status) SetDescription(description *string) {
	s.description = description
	s.updatedAt = biztime.NowUTC()
}

func (s *Status) SetArea(area *string) {
	s.area = area
	s.updatedAt = biztime.NowUTC()
}

func (s *Status) SetPermissions(permissions map[string]interface{}) {
	if permissions == nil {
		permissions = make(map[string]interface{})
	}
	s.permissions = permissions
	s.updatedAt = biztime.NowUTC()
}

// IsTerminal reports whether entering this status resolves the claim.
// The check is by name, case-insensitive.
func (s *Status) IsTerminal() bool {
	return IsTerminalName(s.name)
}

// IsTerminalName reports whether a status name belongs to the terminal set.
func IsTerminalName(name string) bool {
	for _, terminal := range terminalStatusNames {
		if strings.EqualFold(strings.TrimSpace(name), terminal) {
			return true
		}
	}
	return false
}
