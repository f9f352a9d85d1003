package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is the means of payment chosen by the user.
type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "cartao"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCard:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks payment confirmation. Card payments are created
// already confirmado; PIX payments stay pendente until an admin confirms.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pendente"
	PaymentStatusConfirmed PaymentStatus = "confirmado"
	PaymentStatusRejected  PaymentStatus = "rejeitado"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// Payment records a payment attempt against an order. The amount must equal
// the order total exactly.
type Payment struct {
	ID      uuid.UUID
	OrderID uuid.UUID
	UserID  uuid.UUID
	Method  PaymentMethod
	Amount  float64
	Status  PaymentStatus

	// PIX-specific fields.
	PixPaymentsJSON string // Serialized list of individual PIX transfers.
	ReceiptFilename string // Uploaded proof-of-payment object name; empty until uploaded.

	// Card-specific fields.
	Installments      int     // 1-10; zero for PIX.
	InstallmentAmount float64 // Amount / Installments; zero for PIX.

	PaidAt      time.Time
	ConfirmedAt *time.Time
}

// IsPix reports whether this payment uses the PIX flow.
func (p *Payment) IsPix() bool {
	return p.Method == PaymentMethodPix
}
