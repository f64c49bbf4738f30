package authorization

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleAgent UserRole = "agent"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role may see internal comments and
// perform agent level operations.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleAgent
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleAgent || r == RoleUser
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
