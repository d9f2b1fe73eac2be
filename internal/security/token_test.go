package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"volunteerhub-backend/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.GenerateAccessToken(7, "v@example.com", domain.AccountRoleVolunteer)
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), claims.AccountID)
	assert.Equal(t, "v@example.com", claims.Email)
	assert.Equal(t, domain.AccountRoleVolunteer, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.False(t, claims.IsAdmin())
}

func TestTokenManager_RefreshTokenType(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.GenerateRefreshToken(7, "v@example.com")
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret")
	other := NewTokenManager("other-secret")

	token, err := tm.GenerateAccessToken(7, "v@example.com", domain.AccountRoleVolunteer)
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret")

	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccountClaims_IsAdmin(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.GenerateAccessToken(1, "a@example.com", domain.AccountRoleAdmin)
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}
