package repository

import (
	"context"
	"errors"

	"encontro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is returned when an administrator record does not exist.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the standard operations for administrator persistence.
type AdminRepository interface {
	// FindByID retrieves a single administrator by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves a single administrator by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Create persists a new administrator entity to the storage.
	Create(ctx context.Context, admin *entity.Admin) error

	// Update modifies an existing administrator entity in the storage.
	Update(ctx context.Context, admin *entity.Admin) error
}
