package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"taskly.com/internal/config"
	"taskly.com/internal/model"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:      "unit-test-secret",
		Issuer:      "taskly-api",
		Audience:    "taskly-mobile",
		ExpiryHours: 168,
	}
}

func testUser() *model.User {
	user := &model.User{
		Username: "ada.lovelace",
		Email:    "ada@x.com",
		Name:     "Ada",
		Surname:  "Lovelace",
		Role:     "user",
		IsActive: true,
	}
	user.ID = 42
	return user
}

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager(testJWTConfig())

	token, err := m.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ada.lovelace", claims.Username)
	assert.Equal(t, "ada.lovelace", claims.Subject)
	assert.Equal(t, "ada@x.com", claims.Email)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "taskly-api", claims.Issuer)
	assert.Contains(t, claims.Audience, "taskly-mobile")
}

func TestIssueDefaultsRole(t *testing.T) {
	m := NewTokenManager(testJWTConfig())

	user := testUser()
	user.Role = ""
	token, err := m.Issue(user)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Role)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	m := NewTokenManager(testJWTConfig())
	m.now = func() time.Time { return issuedAt }

	token, err := m.Issue(testUser())
	require.NoError(t, err)

	// Still valid just inside the 7-day window.
	m.now = func() time.Time { return issuedAt.Add(6*24*time.Hour + 23*time.Hour) }
	_, err = m.Verify(token)
	assert.NoError(t, err)

	// Invalid past the window.
	m.now = func() time.Time { return issuedAt.Add(7*24*time.Hour + time.Hour) }
	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	m := NewTokenManager(testJWTConfig())
	token, err := m.Issue(testUser())
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "a-different-secret"
	_, err = NewTokenManager(other).Verify(token)
	assert.Error(t, err)
}

func TestVerifyChecksIssuerAndAudience(t *testing.T) {
	m := NewTokenManager(testJWTConfig())
	token, err := m.Issue(testUser())
	require.NoError(t, err)

	wrongIssuer := testJWTConfig()
	wrongIssuer.Issuer = "someone-else"
	_, err = NewTokenManager(wrongIssuer).Verify(token)
	assert.Error(t, err)

	wrongAudience := testJWTConfig()
	wrongAudience.Audience = "other-app"
	_, err = NewTokenManager(wrongAudience).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewTokenManager(testJWTConfig())
	_, err := m.Verify("not.a.token")
	assert.Error(t, err)
}
