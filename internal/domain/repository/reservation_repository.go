package repository

import (
	"context"
	"errors"
	"time"

	"encontro/internal/domain/entity"

	"github.com/google/uuid"
)

// Reservation persistence errors surfaced to the application layer.
var (
	// ErrReservationNotFound is returned when a reservation record does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrDuplicateReservation is returned when the partial unique index on
	// confirmed reservations rejects a second confirmada row for the same
	// table.
	ErrDuplicateReservation = errors.New("table already has a confirmed reservation")

	// ErrDuplicateUserReservation is returned when the partial unique index
	// on confirmed reservations rejects a second confirmada row for the
	// same user.
	ErrDuplicateUserReservation = errors.New("user already has a confirmed reservation")
)

// ReservationListFilter narrows and pages the administrative reservation listing.
type ReservationListFilter struct {
	TableType string
	Status    entity.ReservationStatus
	Page      int
	PerPage   int
}

// ReservationRepository defines the standard operations for reservation persistence.
type ReservationRepository interface {
	// FindByID retrieves a single reservation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)

	// FindByIDForUser retrieves a reservation only if it belongs to the given user.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Reservation, error)

	// FindConfirmedByUser retrieves the user's confirmada reservation, if any.
	FindConfirmedByUser(ctx context.Context, userID uuid.UUID) (*entity.Reservation, error)

	// FindConfirmedByTable retrieves the confirmada reservation holding a
	// table number, if any.
	FindConfirmedByTable(ctx context.Context, tableNumber string) (*entity.Reservation, error)

	// FindConfirmed retrieves every confirmada reservation.
	FindConfirmed(ctx context.Context) ([]*entity.Reservation, error)

	// FindByUser retrieves all reservations owned by a user, most recent first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)

	// Create persists a new reservation entity to the storage.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// Update modifies an existing reservation entity in the storage.
	Update(ctx context.Context, reservation *entity.Reservation) error

	// List returns a page of reservations matching the filter together with
	// the total match count, most recent first.
	List(ctx context.Context, filter ReservationListFilter) ([]*entity.Reservation, int64, error)

	// CountConfirmed returns the number of confirmada reservations.
	CountConfirmed(ctx context.Context) (int64, error)

	// CountConfirmedByType returns the number of confirmada reservations for a table type.
	CountConfirmedByType(ctx context.Context, tableType string) (int64, error)

	// CountCreatedSince returns the number of reservations made at or after the given time.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
