package auth

import (
	"testing"
	"time"

	"encontro/config"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(user, admin string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.User = user
	cfg.SecretKey.Admin = admin

	return cfg
}

func TestJWTService_IssueAndValidateUserToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("user_secret_key_very_long_for_testing", "admin_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, svc)

	userID := uuid.New()

	token, err := svc.IssueUserToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token, service.ScopeUser)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.SubjectID)
	assert.Equal(t, service.ScopeUser, claims.Scope)
	assert.WithinDuration(t, time.Now().Add(svc.UserTokenDuration()), claims.ExpiresAt, time.Minute)
}

func TestJWTService_IssueAndValidateAdminToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("user_secret_key_very_long_for_testing", "admin_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	adminID := uuid.New()

	token, err := svc.IssueAdminToken(adminID)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token, service.ScopeAdmin)
	assert.NoError(t, err)
	assert.Equal(t, adminID, claims.SubjectID)
	assert.Equal(t, service.ScopeAdmin, claims.Scope)
}

func TestJWTService_ScopesAreNotInterchangeable(t *testing.T) {
	svc, err := NewJWTService(testConfig("user_secret_key_very_long_for_testing", "admin_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	userToken, err := svc.IssueUserToken(uuid.New())
	assert.NoError(t, err)

	// A user token presented on the admin scope fails signature
	// verification because the secrets are independent.
	claims, err := svc.ValidateToken(userToken, service.ScopeAdmin)
	assert.Error(t, err)
	assert.Nil(t, claims)

	adminToken, err := svc.IssueAdminToken(uuid.New())
	assert.NoError(t, err)

	claims, err = svc.ValidateToken(adminToken, service.ScopeUser)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_SameSecretWrongScopeClaim(t *testing.T) {
	// With identical secrets only the scope claim separates the audiences.
	svc, err := NewJWTService(testConfig("shared_secret_key_very_long_for_testing", "shared_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	userToken, err := svc.IssueUserToken(uuid.New())
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(userToken, service.ScopeAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrTokenWrongScope)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	const userSecret = "user_secret_key_very_long_for_testing"

	svc, err := NewJWTService(testConfig(userSecret, "admin_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	// Sign a token with the real user secret but an exp in the past.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"type": string(service.ScopeUser),
	})
	tokenString, err := expired.SignedString([]byte(userSecret))
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString, service.ScopeUser)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	assert.NotErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("user_secret_key_very_long_for_testing", "admin_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format", service.ScopeUser)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	svc, err := NewJWTService(testConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_TokenDurations(t *testing.T) {
	svc, err := NewJWTService(testConfig("user_secret_key_very_long_for_testing", "admin_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, svc.UserTokenDuration())
	assert.Equal(t, time.Hour*8, svc.AdminTokenDuration())
}
