package postgres

import (
	"context"
	"time"

	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUser retrieves an order only if it belongs to the given user.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, userID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for user")
	}

	return toOrderDomain(&orderM), nil
}

// FindPendingByUser retrieves the user's pendente order, if any.
func (repo *orderRepository) FindPendingByUser(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("usuario_id = ? AND status = ?", userID, entity.OrderStatusPending.String()).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending order")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves all orders owned by a user, most recent first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("data_pedido DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Create persists a new order. The partial unique index on pending orders
// turns a concurrent second pendente order into ErrDuplicatePendingOrder.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePendingOrder
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID

	return nil
}

// Update modifies an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":         orderM.Status,
			"data_pagamento": orderM.DataPgto,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// List returns a page of orders matching the filter and the total match count.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderListFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Order("data_pedido DESC").
		Offset(pageOffset(filter.Page, filter.PerPage)).
		Limit(pageLimit(filter.PerPage)).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// CountByStatus returns the number of orders in the given status.
func (repo *orderRepository) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by status")
	}

	return count, nil
}

// Count returns the total number of orders.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// CountCreatedSince returns the number of orders placed at or after the given time.
func (repo *orderRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("data_pedido >= ?", since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent orders")
	}

	return count, nil
}

// RevenueAndShirts sums valor_total and total_camisas over paid and confirmed orders.
func (repo *orderRepository) RevenueAndShirts(ctx context.Context) (float64, int64, error) {
	var result struct {
		Revenue float64
		Shirts  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(valor_total), 0) AS revenue, COALESCE(SUM(total_camisas), 0) AS shirts").
		Where("status IN ?", []string{entity.OrderStatusPaid.String(), entity.OrderStatusConfirmed.String()}).
		Scan(&result).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to sum order revenue")
	}

	return result.Revenue, result.Shirts, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:         data.ID,
		UserID:     data.UsuarioID,
		ShirtCount: data.TotalCamisas,
		Total:      data.ValorTotal,
		UnitPrice:  data.ValorUnit,
		ShirtsJSON: data.Camisas,
		Status:     entity.OrderStatus(data.Status),
		OrderedAt:  data.DataPedido,
		PaidAt:     data.DataPgto,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:           data.ID,
		UsuarioID:    data.UserID,
		TotalCamisas: data.ShirtCount,
		ValorTotal:   data.Total,
		ValorUnit:    data.UnitPrice,
		Camisas:      data.ShirtsJSON,
		Status:       data.Status.String(),
		DataPedido:   data.OrderedAt,
		DataPgto:     data.PaidAt,
	}
}
