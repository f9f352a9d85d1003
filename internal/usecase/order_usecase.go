package usecase

import (
	"context"
	"time"

	"encontro/internal/domain/entity"
	"encontro/internal/domain/pricing"

	"github.com/google/uuid"
)

// ShirtItem is one size/quantity line of an order.
type ShirtItem struct {
	Size     string `json:"tamanho"`
	Quantity int    `json:"quantidade"`
}

// CreateOrderInput defines the data required to place a shirt order. Total
// is the client-computed sum; it must agree with the server-side price.
type CreateOrderInput struct {
	Shirts []ShirtItem
	Total  float64
}

// PurchaseStatus describes whether the ordering window is open for a user.
type PurchaseStatus struct {
	Open         bool
	Deadline     time.Time
	Pricing      pricing.Info
	PendingOrder *entity.Order
}

// OrderUsecase defines the interface for shirt-order operations.
type OrderUsecase interface {
	// CreateOrder places a new pendente order for the user.
	CreateOrder(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*entity.Order, error)

	// GetOrder fetches one order owned by the user.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the user's orders, most recent first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// CancelOrder cancels the user's pendente order.
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// PricingFor returns the price descriptor for the user's age bracket.
	PricingFor(ctx context.Context, userID uuid.UUID) (*pricing.Info, error)

	// PurchaseStatusFor reports whether the user can currently order.
	PurchaseStatusFor(ctx context.Context, userID uuid.UUID) (*PurchaseStatus, error)
}
