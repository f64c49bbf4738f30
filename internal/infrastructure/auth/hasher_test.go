package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, hasher.Verify("s3cret-password", hash))
}

func TestBcryptPasswordHasher_Verify_WrongPassword(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)

	err = hasher.Verify("wrong-password", hash)
	require.Error(t, err)
	// The error must not leak whether the hash or the password was at fault.
	assert.EqualError(t, err, "password verification failed")
}

func TestBcryptPasswordHasher_Verify_MalformedHash(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	err := hasher.Verify("whatever", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.EqualError(t, err, "password verification failed")
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "below minimum falls back to default", cost: 1, want: bcrypt.DefaultCost},
		{name: "above maximum falls back to default", cost: 99, want: bcrypt.DefaultCost},
		{name: "valid cost is kept", cost: bcrypt.MinCost, want: bcrypt.MinCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptPasswordHasher(tt.cost)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}
