package handler

import (
	"log/slog"
	"net/http"

	"encontro/internal/delivery/http/middleware"
	"encontro/internal/delivery/http/response"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

type createPaymentRequest struct {
	OrderID      uuid.UUID             `json:"pedido_id" validate:"required"`
	Method       string                `json:"metodo_pagamento" validate:"required"`
	Amount       float64               `json:"valor" validate:"required,gt=0"`
	PixTransfers []usecase.PixTransfer `json:"pix_pagamentos"`
	Installments int                   `json:"parcelas"`
}

// Create records a payment against the user's pendente order.
func (h *PaymentHandler) Create(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do pagamento inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.uc.CreatePayment(c.Request().Context(), userID, usecase.CreatePaymentInput{
		OrderID:      req.OrderID,
		Method:       req.Method,
		Amount:       req.Amount,
		PixTransfers: req.PixTransfers,
		Installments: req.Installments,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"pagamento": newPaymentView(payment),
	}, "Pagamento processado com sucesso")
}

// List returns the authenticated user's payments.
func (h *PaymentHandler) List(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	payments, err := h.uc.ListPayments(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pagamentos": newPaymentViews(payments),
	}, "")
}

// UploadReceipt stores a PIX proof-of-payment file sent as multipart form data.
func (h *PaymentHandler) UploadReceipt(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("identificador de pagamento inválido")
	}

	fileHeader, err := c.FormFile("comprovante")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("nenhum arquivo enviado")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded receipt")
	}
	defer file.Close()

	payment, err := h.uc.UploadReceipt(c.Request().Context(), userID, usecase.UploadReceiptInput{
		PaymentID:   paymentID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"filename":  payment.ReceiptFilename,
		"pagamento": newPaymentView(payment),
	}, "Comprovante enviado com sucesso")
}

// QRCode renders the PIX payload of the payment as a PNG image.
func (h *PaymentHandler) QRCode(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("identificador de pagamento inválido")
	}

	png, err := h.uc.PaymentQR(c.Request().Context(), userID, paymentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
