package postgres

import (
	"context"

	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// FindByID retrieves a payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by ID")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByIDForUser retrieves a payment only if it belongs to the given user.
func (repo *paymentRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, userID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment for user")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByUser retrieves all payments made by a user, most recent first.
func (repo *paymentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("data_pagamento DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payments by user")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// FindAll retrieves every payment, most recent first.
func (repo *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Order("data_pagamento DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// Create persists a new payment.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID

	return nil
}

// Update modifies an existing payment.
func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", payment.ID).
		Updates(map[string]any{
			"status":           paymentM.Status,
			"comprovante":      paymentM.Comprovante,
			"data_confirmacao": paymentM.DataConfirm,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:                data.ID,
		OrderID:           data.PedidoID,
		UserID:            data.UsuarioID,
		Method:            entity.PaymentMethod(data.FormaPgto),
		Amount:            data.Valor,
		Status:            entity.PaymentStatus(data.Status),
		PixPaymentsJSON:   data.PagamentosPix,
		ReceiptFilename:   data.Comprovante,
		Installments:      data.Parcelas,
		InstallmentAmount: data.ValorParcela,
		PaidAt:            data.DataPgto,
		ConfirmedAt:       data.DataConfirm,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:            data.ID,
		PedidoID:      data.OrderID,
		UsuarioID:     data.UserID,
		FormaPgto:     data.Method.String(),
		Valor:         data.Amount,
		Status:        data.Status.String(),
		PagamentosPix: data.PixPaymentsJSON,
		Comprovante:   data.ReceiptFilename,
		Parcelas:      data.Installments,
		ValorParcela:  data.InstallmentAmount,
		DataPgto:      data.PaidAt,
		DataConfirm:   data.ConfirmedAt,
	}
}
