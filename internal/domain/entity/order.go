package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks an order through its lifecycle. The only legal
// transitions are pendente→pago→confirmado and pendente→cancelado.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pendente"
	OrderStatusPaid      OrderStatus = "pago"
	OrderStatusConfirmed OrderStatus = "confirmado"
	OrderStatusCancelled OrderStatus = "cancelado"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a shirt order. A user may hold at most one pendente order at a
// time; the unit price is frozen from the owner's age bracket at creation.
type Order struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ShirtCount int     // Total shirts across all sizes.
	Total      float64 // ShirtCount * UnitPrice, validated against the client-submitted total.
	UnitPrice  float64 // Bracket price derived from the owner's age.
	ShirtsJSON string  // Serialized size/quantity breakdown as submitted.
	Status     OrderStatus
	OrderedAt  time.Time
	PaidAt     *time.Time
}

// CanCancel reports whether the order is still in a cancellable state.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending
}

// CanPay reports whether a payment may still be attached to the order.
func (o *Order) CanPay() bool {
	return o.Status == OrderStatusPending
}
