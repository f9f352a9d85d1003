package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"time"

	"encontro/config"
	deliverycontext "encontro/internal/delivery/context"
	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/domain/service"
	"encontro/internal/usecase"
	"encontro/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minInstallments = 1
	maxInstallments = 10
)

// allowedReceiptExtensions are the accepted PIX proof-of-payment formats.
var allowedReceiptExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".pdf":  {},
}

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager      repository.TransactionManager
	paymentRepo    repository.PaymentRepository
	receiptStore   service.ReceiptStore
	qrcodeService  service.QRCodeService
	maxReceiptSize int64
	logger         *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PaymentRepo   repository.PaymentRepository
	ReceiptStore  service.ReceiptStore
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	var maxSize int64
	if params.Config != nil && params.Config.Uploads != nil {
		maxSize = int64(params.Config.Uploads.MaxReceiptSizeMB) << 20
	}

	return &paymentService{
		txManager:      params.TxManager,
		paymentRepo:    params.PaymentRepo,
		receiptStore:   params.ReceiptStore,
		qrcodeService:  params.QRCodeService,
		maxReceiptSize: maxSize,
		logger:         params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePayment records a payment against the user's pendente order. Card
// payments confirm immediately and move the order to pago in the same
// transaction; PIX payments stay pendente until an admin confirms them.
func (srv *paymentService) CreatePayment(ctx context.Context, userID uuid.UUID, input usecase.CreatePaymentInput) (*entity.Payment, error) {
	method := entity.PaymentMethod(input.Method)
	if !method.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("forma de pagamento deve ser pix ou cartao")
	}

	if method == entity.PaymentMethodCard &&
		(input.Installments < minInstallments || input.Installments > maxInstallments) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("parcelas deve estar entre %d e %d", minInstallments, maxInstallments))
	}

	now := time.Now()
	payment := &entity.Payment{
		UserID: userID,
		Method: method,
		Amount: input.Amount,
		PaidAt: now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		paymentRepo := repoFactory.PaymentRepo()

		order, err := orderRepo.FindByIDForUser(ctx, input.OrderID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order for payment")
		}

		if !order.CanPay() {
			return domainerrors.ErrOrderNotPending
		}

		if math.Abs(order.Total-input.Amount) > moneyTolerance {
			return domainerrors.ErrPaymentAmountMismatch
		}

		payment.OrderID = order.ID

		switch method {
		case entity.PaymentMethodCard:
			payment.Status = entity.PaymentStatusConfirmed
			payment.Installments = input.Installments
			payment.InstallmentAmount = input.Amount / float64(input.Installments)
			payment.ConfirmedAt = &now

			order.Status = entity.OrderStatusPaid
			order.PaidAt = &now
			if err := orderRepo.Update(ctx, order); err != nil {
				return err
			}
		case entity.PaymentMethodPix:
			payment.Status = entity.PaymentStatusPending

			transfersJSON, err := json.Marshal(input.PixTransfers)
			if err != nil {
				return errors.Wrap(err, "failed to serialize pix transfers")
			}
			payment.PixPaymentsJSON = string(transfersJSON)
		}

		return paymentRepo.Create(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Payment created",
		slog.Any("paymentID", payment.ID),
		slog.Any("orderID", payment.OrderID),
		slog.String("method", method.String()),
		slog.String("status", payment.Status.String()))

	return payment, nil
}

// ListPayments returns the user's payments, most recent first.
func (srv *paymentService) ListPayments(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// UploadReceipt stores a PIX proof-of-payment file for the payment.
func (srv *paymentService) UploadReceipt(ctx context.Context, userID uuid.UUID, input usecase.UploadReceiptInput) (*entity.Payment, error) {
	ext := strings.ToLower(filepath.Ext(input.Filename))
	if _, ok := allowedReceiptExtensions[ext]; !ok {
		return nil, domainerrors.ErrReceiptBadFormat
	}

	if srv.maxReceiptSize > 0 && input.Size > srv.maxReceiptSize {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("arquivo excede o tamanho máximo de %s", util.FormatBytes(srv.maxReceiptSize)))
	}

	payment, err := srv.paymentRepo.FindByIDForUser(ctx, input.PaymentID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment for receipt")
	}

	if !payment.IsPix() {
		return nil, domainerrors.ErrReceiptNotPix
	}
	if payment.Status != entity.PaymentStatusPending {
		return nil, domainerrors.ErrPaymentAlreadyProcessed
	}

	objectName := fmt.Sprintf("%s%s", payment.ID, ext)
	if err := srv.receiptStore.Save(ctx, objectName, input.ContentType, input.Body); err != nil {
		return nil, errors.Wrap(err, "failed to store receipt")
	}

	payment.ReceiptFilename = objectName
	if err := srv.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Receipt uploaded", slog.Any("paymentID", payment.ID), slog.String("object", objectName))

	return payment, nil
}

// PaymentQR renders the payment's PIX payload as a PNG QR code.
func (srv *paymentService) PaymentQR(ctx context.Context, userID, paymentID uuid.UUID) ([]byte, error) {
	payment, err := srv.paymentRepo.FindByIDForUser(ctx, paymentID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment for QR code")
	}

	if !payment.IsPix() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("QR code disponível apenas para pagamentos PIX")
	}

	png, err := srv.qrcodeService.GeneratePaymentQR(payment.ID, payment.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR code")
	}

	return png, nil
}
