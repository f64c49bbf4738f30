package directory

import (
	"fmt"
	"strings"
	"time"

	"claimdesk/internal/shared/biztime"
)

// Roles recognized by the workflow authorization checks.
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
	RoleUser  = "user"
)

// User is an account in the internal directory. Claims reference users by
// ID and carry a denormalized snapshot of the assignee's display fields.
type User struct {
	id           uint
	name         string
	email        string
	area         *string
	role         string
	passwordHash string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(
	name string,
	email string,
	area *string,
	role string,
	passwordHash string,
) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if !isValidRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		name:         name,
		email:        email,
		area:         area,
		role:         role,
		passwordHash: passwordHash,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	area *string,
	role string,
	passwordHash string,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !isValidRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		area:         area,
		role:         role,
		passwordHash: passwordHash,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Area() *string {
	return u.area
}

func (u *User) Role() string {
	return u.role
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = biztime.NowUTC()
}

func isValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAgent, RoleUser:
		return true
	}
	return false
}
