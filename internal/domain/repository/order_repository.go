package repository

import (
	"context"
	"errors"
	"time"

	"encontro/internal/domain/entity"

	"github.com/google/uuid"
)

// Order persistence errors surfaced to the application layer.
var (
	// ErrOrderNotFound is returned when an order record does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrDuplicatePendingOrder is returned when the partial unique index on
	// pending orders rejects a second pendente order for the same user.
	ErrDuplicatePendingOrder = errors.New("user already has a pending order")
)

// OrderListFilter narrows and pages the administrative order listing.
type OrderListFilter struct {
	Status  entity.OrderStatus
	Page    int
	PerPage int
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUser retrieves an order only if it belongs to the given user.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error)

	// FindPendingByUser retrieves the user's pendente order, if any.
	FindPendingByUser(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves all orders owned by a user, most recent first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Create persists a new order entity to the storage.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order entity in the storage.
	Update(ctx context.Context, order *entity.Order) error

	// List returns a page of orders matching the filter together with the
	// total match count, most recent first.
	List(ctx context.Context, filter OrderListFilter) ([]*entity.Order, int64, error)

	// CountByStatus returns the number of orders in the given status.
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)

	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)

	// CountCreatedSince returns the number of orders placed at or after the given time.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)

	// RevenueAndShirts sums valor_total and total_camisas over paid and
	// confirmed orders.
	RevenueAndShirts(ctx context.Context) (revenue float64, shirts int64, err error)
}
