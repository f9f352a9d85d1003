package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessLevel represents the privilege tier of an administrator account.
type AccessLevel string

const (
	// AccessLevelAdmin grants the regular administrative surface.
	AccessLevelAdmin AccessLevel = "admin"
	// AccessLevelSuperAdmin additionally allows creating new administrators.
	AccessLevelSuperAdmin AccessLevel = "super_admin"
)

// String returns the string representation of the AccessLevel.
func (l AccessLevel) String() string {
	return string(l)
}

// IsValid checks if the AccessLevel is a valid value.
func (l AccessLevel) IsValid() bool {
	switch l {
	case AccessLevelAdmin, AccessLevelSuperAdmin:
		return true
	default:
		return false
	}
}

// Admin represents a back-office operator. Admins authenticate against a
// separate signing context from participants and carry a shorter token TTL.
type Admin struct {
	ID           uuid.UUID
	FullName     string
	Email        string // Unique login identifier.
	PasswordHash string
	AccessLevel  AccessLevel
	Active       bool
	CreatedBy    *uuid.UUID // Admin that created this account; nil for seeded accounts. Lookup only, no ownership.
	LastLogin    *time.Time
	CreatedAt    time.Time
}

// IsSuperAdmin reports whether the admin may perform super-admin-only
// operations such as creating other administrators.
func (a *Admin) IsSuperAdmin() bool {
	return a.AccessLevel == AccessLevelSuperAdmin
}
