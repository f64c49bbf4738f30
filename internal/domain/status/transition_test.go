package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransition(t *testing.T) {
	tr, err := NewTransition(1, 2, []string{"agent", "admin"}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(1), tr.FromStatusID())
	assert.Equal(t, uint(2), tr.ToStatusID())
	assert.False(t, tr.RequiresConfirmation())

	_, err = NewTransition(0, 2, nil, false, nil)
	assert.Error(t, err)

	_, err = NewTransition(1, 0, nil, false, nil)
	assert.Error(t, err)

	_, err = NewTransition(3, 3, nil, false, nil)
	assert.Error(t, err, "self transitions are not allowed")
}

func TestTransition_AllowsRole(t *testing.T) {
	restricted, err := NewTransition(1, 2, []string{"agent", "admin"}, false, nil)
	require.NoError(t, err)

	assert.True(t, restricted.AllowsRole("agent"))
	assert.True(t, restricted.AllowsRole("Admin"))
	assert.False(t, restricted.AllowsRole("user"))
	assert.False(t, restricted.AllowsRole(""))

	open, err := NewTransition(1, 2, nil, false, nil)
	require.NoError(t, err)

	assert.True(t, open.AllowsRole("user"))
	assert.True(t, open.AllowsRole(""))
}

func TestTransition_RequiredRolesDefensiveCopy(t *testing.T) {
	roles := []string{"agent"}
	tr, err := NewTransition(1, 2, roles, false, nil)
	require.NoError(t, err)

	got := tr.RequiredRoles()
	got[0] = "user"
	assert.True(t, tr.AllowsRole("agent"))
	assert.False(t, tr.AllowsRole("user"))
}
