// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"encontro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserListFilter narrows and pages the administrative user listing.
type UserListFilter struct {
	Search  string // Matches against full name or email, case-insensitive substring.
	Descent entity.Descent
	Page    int
	PerPage int
}

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// List returns a page of users matching the filter together with the
	// total match count.
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, int64, error)

	// CountActive returns the number of active users.
	CountActive(ctx context.Context) (int64, error)

	// CountActiveByDescent returns the number of active users in a family branch.
	CountActiveByDescent(ctx context.Context, descent entity.Descent) (int64, error)

	// CountCreatedSince returns the number of users registered at or after the given time.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
