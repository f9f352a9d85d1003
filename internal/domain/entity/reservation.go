package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus tracks a table reservation. The only transition is
// confirmada→cancelada; reservations are never deleted.
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmada"
	ReservationStatusCancelled ReservationStatus = "cancelada"
)

// String returns the string representation of the ReservationStatus.
func (s ReservationStatus) String() string {
	return string(s)
}

// Reservation assigns one catalog table to one user. At most one confirmada
// reservation may exist per user and per table number at any time. Table
// attributes are copied from the catalog entry at reservation time.
type Reservation struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TableNumber   string
	TableType     string // VIP, Premium or Standard.
	TableCapacity int
	TableLocation string
	Status        ReservationStatus
	ReservedAt    time.Time
	CancelledAt   *time.Time
}

// CanCancel reports whether the reservation is still active.
func (r *Reservation) CanCancel() bool {
	return r.Status == ReservationStatusConfirmed
}
