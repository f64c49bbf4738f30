package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 30, 7)

	pair, err := svc.Generate(42, "Juan Soto", "billing", authorization.RoleAgent)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, int64(30*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Juan Soto", claims.Name)
	assert.Equal(t, "billing", claims.Area)
	assert.Equal(t, authorization.RoleAgent, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_Verify_RefreshTokenCarriesRefreshType(t *testing.T) {
	svc := NewJWTService("test-secret", 30, 7)

	pair, err := svc.Generate(7, "Admin", "", authorization.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTService("issuer-secret", 30, 7)
	verifier := NewJWTService("another-secret", 30, 7)

	pair, err := issuer.Generate(1, "Admin", "", authorization.RoleAdmin)
	require.NoError(t, err)

	claims, err := verifier.Verify(pair.AccessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Verify_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -1, 7)

	pair, err := svc.Generate(1, "Admin", "", authorization.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 30, 7)

	_, err := svc.Verify("not-a-jwt")
	assert.Error(t, err)
}
