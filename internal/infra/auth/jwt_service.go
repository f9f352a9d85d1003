// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"encontro/config"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/service"
)

const (
	userTokenTTL  = time.Hour * 24 * 7 // participants stay signed in across the week
	adminTokenTTL = time.Hour * 8      // admin sessions expire within a working day
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// User and admin tokens are signed with independent secrets, so possession of
// one kind of token proves nothing about the other scope.
type jwtService struct {
	userSecret  string
	adminSecret string
	userTTL     time.Duration
	adminTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.User == "" || cfg.SecretKey.Admin == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		userSecret:  cfg.SecretKey.User,
		adminSecret: cfg.SecretKey.Admin,
		userTTL:     userTokenTTL,
		adminTTL:    adminTokenTTL,
	}, nil
}

// IssueUserToken creates a signed token for an event participant.
func (s *jwtService) IssueUserToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, s.userTTL, s.userSecret, service.ScopeUser)
}

// IssueAdminToken creates a signed token for an administrator.
func (s *jwtService) IssueAdminToken(adminID uuid.UUID) (string, error) {
	return s.generateToken(adminID, s.adminTTL, s.adminSecret, service.ScopeAdmin)
}

// ValidateToken parses a token against the secret of the expected scope and
// returns its claims. Any signature, structure, expiry or scope problem
// yields a domain error and no claims.
func (s *jwtService) ValidateToken(tokenString string, scope service.TokenScope) (*service.Claims, error) {
	secret, err := s.secretFor(scope)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	tokenType, _ := mapClaims["type"].(string)
	if service.TokenScope(tokenType) != scope {
		return nil, domainerrors.ErrTokenWrongScope
	}

	subject, _ := mapClaims["sub"].(string)
	subjectID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	claims := &service.Claims{
		SubjectID: subjectID,
		Scope:     scope,
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// UserTokenDuration returns the configured duration for user tokens.
func (s *jwtService) UserTokenDuration() time.Duration {
	return s.userTTL
}

// AdminTokenDuration returns the configured duration for admin tokens.
func (s *jwtService) AdminTokenDuration() time.Duration {
	return s.adminTTL
}

func (s *jwtService) secretFor(scope service.TokenScope) (string, error) {
	switch scope {
	case service.ScopeUser:
		return s.userSecret, nil
	case service.ScopeAdmin:
		return s.adminSecret, nil
	default:
		return "", errors.Errorf("unknown token scope: %s", scope)
	}
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(subjectID uuid.UUID, ttl time.Duration, secret string, scope service.TokenScope) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subjectID.String(),  // Subject (who the token is for)
		"iat":  now.Unix(),          // Issued At
		"exp":  now.Add(ttl).Unix(), // Expiration Time
		"type": string(scope),       // Scope of the token (user or admin)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
