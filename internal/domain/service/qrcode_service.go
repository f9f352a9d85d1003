package service

import "github.com/google/uuid"

// QRCodeService renders PIX payment payloads as QR code images.
type QRCodeService interface {
	// GeneratePaymentQR builds the PIX copia-e-cola payload for a payment
	// and returns it rendered as a PNG image.
	GeneratePaymentQR(paymentID uuid.UUID, amount float64) ([]byte, error)

	// PaymentPayload returns the raw PIX payload string for a payment, for
	// clients that prefer copy-and-paste over scanning.
	PaymentPayload(paymentID uuid.UUID, amount float64) string
}
