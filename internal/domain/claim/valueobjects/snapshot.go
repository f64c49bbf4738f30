package valueobjects

import "strings"

// AssigneeSnapshot is a denormalized copy of the assigned agent's display
// data, embedded in the claim so list and detail reads skip a user lookup.
type AssigneeSnapshot struct {
	Name  string
	Email string
	Area  string
}

func NewAssigneeSnapshot(name, email, area string) (AssigneeSnapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AssigneeSnapshot{}, ErrEmptySnapshotName
	}
	return AssigneeSnapshot{
		Name:  name,
		Email: strings.TrimSpace(email),
		Area:  strings.TrimSpace(area),
	}, nil
}

func (s AssigneeSnapshot) Equal(other AssigneeSnapshot) bool {
	return s.Name == other.Name && s.Email == other.Email && s.Area == other.Area
}
