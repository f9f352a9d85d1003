package usecase

import (
	"context"

	"encontro/internal/domain/entity"

	"github.com/google/uuid"
)

// ReserveTableInput defines the data required to reserve a table. The
// attributes must match the catalog entry for the table number exactly.
type ReserveTableInput struct {
	TableNumber   string
	TableType     string
	TableCapacity int
	TableLocation string
}

// TableAvailability pairs a catalog table with its reservation state.
type TableAvailability struct {
	Table    entity.Table
	Reserved bool
}

// ReservationUsecase defines the interface for table reservations.
type ReservationUsecase interface {
	// ListTables returns the full catalog with per-table availability.
	ListTables(ctx context.Context) ([]TableAvailability, error)

	// Reserve books a catalog table for the user.
	Reserve(ctx context.Context, userID uuid.UUID, input ReserveTableInput) (*entity.Reservation, error)

	// ListReservations returns the user's reservations, most recent first.
	ListReservations(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)

	// CurrentReservation returns the user's confirmada reservation, or nil.
	CurrentReservation(ctx context.Context, userID uuid.UUID) (*entity.Reservation, error)

	// Cancel releases the user's reservation.
	Cancel(ctx context.Context, userID, reservationID uuid.UUID) (*entity.Reservation, error)
}
