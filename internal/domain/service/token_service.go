package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenScope distinguishes the two independent signing contexts. A user
// token must never be accepted on an admin route and vice versa.
type TokenScope string

const (
	// ScopeUser marks tokens issued to event participants.
	ScopeUser TokenScope = "user"
	// ScopeAdmin marks tokens issued to administrators.
	ScopeAdmin TokenScope = "admin"
)

// Claims is the validated content of a bearer token.
type Claims struct {
	SubjectID uuid.UUID
	Scope     TokenScope
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating signed,
// time-limited bearer tokens. Validation fails closed: any signature,
// structure or expiry problem yields an error, never a partial principal.
type TokenService interface {
	// IssueUserToken creates a signed token for a participant.
	IssueUserToken(userID uuid.UUID) (string, error)

	// IssueAdminToken creates a signed token for an administrator.
	// Admin tokens are shorter-lived because of their elevated privilege.
	IssueAdminToken(adminID uuid.UUID) (string, error)

	// ValidateToken checks a token against the expected scope's signing
	// secret and returns its claims.
	ValidateToken(token string, scope TokenScope) (*Claims, error)

	// UserTokenDuration returns the configured TTL for user tokens.
	UserTokenDuration() time.Duration

	// AdminTokenDuration returns the configured TTL for admin tokens.
	AdminTokenDuration() time.Duration
}
