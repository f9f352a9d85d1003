package repository

import (
	"context"
	"errors"

	"encontro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment record does not exist.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the standard operations for payment persistence.
type PaymentRepository interface {
	// FindByID retrieves a single payment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByIDForUser retrieves a payment only if it belongs to the given user.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Payment, error)

	// FindByUser retrieves all payments made by a user, most recent first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)

	// FindAll retrieves every payment, most recent first.
	FindAll(ctx context.Context) ([]*entity.Payment, error)

	// Create persists a new payment entity to the storage.
	Create(ctx context.Context, payment *entity.Payment) error

	// Update modifies an existing payment entity in the storage.
	Update(ctx context.Context, payment *entity.Payment) error
}
