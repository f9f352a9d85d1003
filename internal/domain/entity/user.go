// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Descent identifies which branch of the family a participant belongs to.
type Descent string

const (
	// DescentVeras marks descendants of the Veras branch.
	DescentVeras Descent = "veras"
	// DescentSaldanha marks descendants of the Saldanha branch.
	DescentSaldanha Descent = "saldanha"
)

// String returns the string representation of the Descent.
func (d Descent) String() string {
	return string(d)
}

// IsValid checks if the Descent is a valid value.
func (d Descent) IsValid() bool {
	switch d {
	case DescentVeras, DescentSaldanha:
		return true
	default:
		return false
	}
}

// User represents a registered event participant. Age is recorded at signup
// and drives the shirt price bracket for every order the user places.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the participant.
	FullName     string    // The participant's full name as given at signup.
	Email        string    // Unique login identifier.
	PasswordHash string    // Salted bcrypt hash; the plaintext is never stored.
	Descent      Descent   // Family branch: veras or saldanha.
	Age          int       // Age in years, accepted range 6-120.
	City         string    // City of residence.
	Active       bool      // Inactive accounts are rejected by the access guard.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
