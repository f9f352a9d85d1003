package usecase

import (
	"context"
	"io"

	"encontro/internal/domain/entity"

	"github.com/google/uuid"
)

// PixTransfer is one individual PIX transfer inside a payment. A family may
// split one order across several payers.
type PixTransfer struct {
	Payer  string  `json:"pagador"`
	Amount float64 `json:"valor"`
}

// CreatePaymentInput defines the data required to pay an order.
type CreatePaymentInput struct {
	OrderID      uuid.UUID
	Method       string
	Amount       float64
	PixTransfers []PixTransfer // PIX only.
	Installments int           // Card only, 1-10.
}

// UploadReceiptInput carries an uploaded PIX proof-of-payment file.
type UploadReceiptInput struct {
	PaymentID   uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// PaymentUsecase defines the interface for payment operations.
type PaymentUsecase interface {
	// CreatePayment records a payment against the user's pendente order.
	// Card payments confirm immediately and move the order to pago; PIX
	// payments stay pendente until an admin confirms them.
	CreatePayment(ctx context.Context, userID uuid.UUID, input CreatePaymentInput) (*entity.Payment, error)

	// ListPayments returns the user's payments, most recent first.
	ListPayments(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)

	// UploadReceipt stores a PIX proof-of-payment file for the payment.
	UploadReceipt(ctx context.Context, userID uuid.UUID, input UploadReceiptInput) (*entity.Payment, error)

	// PaymentQR renders the payment's PIX payload as a PNG QR code.
	PaymentQR(ctx context.Context, userID, paymentID uuid.UUID) ([]byte, error)
}
