package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/domain/directory"
	"claimdesk/internal/domain/status"
)

func statusFixture(t *testing.T, id uint, name string, order int) *status.Status {
	t.Helper()
	now := time.Now().UTC()
	s, err := status.ReconstructStatus(id, name, "#2196f3", order, nil, nil, nil, now, now)
	require.NoError(t, err)
	return s
}

func subStatusFixture(t *testing.T, id, statusID uint, name string) *status.SubStatus {
	t.Helper()
	now := time.Now().UTC()
	ss, err := status.ReconstructSubStatus(id, statusID, name, 0, nil, now, now)
	require.NoError(t, err)
	return ss
}

func transitionFixture(t *testing.T, id, fromID, toID uint, roles []string) *status.Transition {
	t.Helper()
	now := time.Now().UTC()
	tr, err := status.ReconstructTransition(id, fromID, toID, roles, false, nil, now, now)
	require.NoError(t, err)
	return tr
}

func userFixture(t *testing.T, id uint, name, email, role string) *directory.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := directory.ReconstructUser(id, name, email, nil, role, "hash", true, now, now)
	require.NoError(t, err)
	return u
}

func claimFixture(t *testing.T, id, statusID uint) *claim.Claim {
	t.Helper()
	now := time.Now().UTC()
	c, err := claim.ReconstructClaim(
		id, "Billing discrepancy", "Maria Perez", "maria@example.com", nil, nil,
		"Charged twice", statusID, nil, vo.PriorityMedium, nil,
		nil, nil, nil, nil, 1, now, now, nil, nil, nil,
	)
	require.NoError(t, err)
	return c
}

func agentActor() claim.Actor {
	return claim.Actor{ID: 10, Name: "Agent Uno", Area: "billing", Role: "agent"}
}

func adminActor() claim.Actor {
	return claim.Actor{ID: 1, Name: "Admin", Area: "", Role: "admin"}
}
