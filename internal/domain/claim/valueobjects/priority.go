package valueobjects

import "fmt"

// Priority is the urgency of a claim, orthogonal to its workflow status.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func NewPriority(value string) (Priority, error) {
	p := Priority(value)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", value)
	}
	return p, nil
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// Weight returns a sortable ordering, critical highest.
func (p Priority) Weight() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}
