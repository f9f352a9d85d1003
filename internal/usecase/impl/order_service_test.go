package impl

import (
	"context"
	"testing"
	"time"

	"encontro/config"
	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockOrderRepository
	userRepo  *mockUserRepository
}

func createTestOrderService(t *testing.T, deadline time.Time) orderServiceFixtures {
	t.Helper()

	orderRepo := &mockOrderRepository{}
	userRepo := &mockUserRepository{}
	factory := &stubRepoFactory{orderRepo: orderRepo, userRepo: userRepo}

	cfg := &config.Config{Event: &config.EventConfig{OrderDeadline: deadline}}
	service := NewOrderService(OrderServiceParams{
		TxManager: &stubTxManager{factory: factory},
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Config:    cfg,
		Logger:    discardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

func futureDeadline() time.Time {
	return time.Now().Add(24 * time.Hour)
}

func adultUser(id uuid.UUID) *entity.User {
	return &entity.User{ID: id, Age: 30, Active: true, Descent: entity.DescentVeras}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(adultUser(userID), nil)
	fx.orderRepo.On("FindPendingByUser", ctx, userID).Return(nil, repository.ErrOrderNotFound)
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		Shirts: []usecase.ShirtItem{
			{Size: "M", Quantity: 2},
			{Size: "G", Quantity: 1},
		},
		Total: 870.00,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, order.ShirtCount)
	assert.Equal(t, 870.00, order.Total)
	assert.Equal(t, 290.00, order.UnitPrice)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Contains(t, order.ShirtsJSON, `"tamanho":"M"`)
}

func TestOrderService_CreateOrder_AfterDeadline(t *testing.T) {
	fx := createTestOrderService(t, time.Now().Add(-time.Hour))
	ctx := context.Background()

	_, err := fx.service.CreateOrder(ctx, uuid.New(), usecase.CreateOrderInput{
		Shirts: []usecase.ShirtItem{{Size: "M", Quantity: 1}},
		Total:  290.00,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderDeadlinePassed)
	fx.orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CreateOrder_TotalMismatch(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(adultUser(userID), nil)

	_, err := fx.service.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		Shirts: []usecase.ShirtItem{{Size: "M", Quantity: 2}},
		Total:  500.00, // correct total is 580.00
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderTotalMismatch.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "R$ 580,00")
}

func TestOrderService_CreateOrder_ToleratesRounding(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(adultUser(userID), nil)
	fx.orderRepo.On("FindPendingByUser", ctx, userID).Return(nil, repository.ErrOrderNotFound)
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	// Within the 0.01 tolerance.
	_, err := fx.service.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		Shirts: []usecase.ShirtItem{{Size: "M", Quantity: 1}},
		Total:  290.005,
	})
	assert.NoError(t, err)
}

func TestOrderService_CreateOrder_PendingOrderExists(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(adultUser(userID), nil)
	fx.orderRepo.On("FindPendingByUser", ctx, userID).
		Return(&entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}, nil)

	_, err := fx.service.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		Shirts: []usecase.ShirtItem{{Size: "M", Quantity: 1}},
		Total:  290.00,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPendingOrderExists)
	fx.orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CreateOrder_RaceLostOnUniqueIndex(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(adultUser(userID), nil)
	fx.orderRepo.On("FindPendingByUser", ctx, userID).Return(nil, repository.ErrOrderNotFound)
	// A concurrent request won the race; the partial unique index rejects this one.
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicatePendingOrder)

	_, err := fx.service.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		Shirts: []usecase.ShirtItem{{Size: "M", Quantity: 1}},
		Total:  290.00,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPendingOrderExists)
}

func TestOrderService_CreateOrder_ChildPricing(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()

	child := &entity.User{ID: userID, Age: 8, Active: true}
	fx.userRepo.On("FindByID", ctx, userID).Return(child, nil)
	fx.orderRepo.On("FindPendingByUser", ctx, userID).Return(nil, repository.ErrOrderNotFound)
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		Shirts: []usecase.ShirtItem{{Size: "10", Quantity: 2}},
		Total:  290.00,
	})
	require.NoError(t, err)
	assert.Equal(t, 145.00, order.UnitPrice)
}

func TestOrderService_CreateOrder_FreeBracketRejected(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()

	toddler := &entity.User{ID: userID, Age: 4, Active: true}
	fx.userRepo.On("FindByID", ctx, userID).Return(toddler, nil)

	_, err := fx.service.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		Shirts: []usecase.ShirtItem{{Size: "4", Quantity: 1}},
		Total:  0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNoShirtRequired)
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusPending}
	fx.orderRepo.On("FindByIDForUser", ctx, orderID, userID).Return(order, nil)
	fx.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	cancelled, err := fx.service.CancelOrder(ctx, userID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
}

func TestOrderService_CancelOrder_NotPending(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusPaid}
	fx.orderRepo.On("FindByIDForUser", ctx, orderID, userID).Return(order, nil)

	_, err := fx.service.CancelOrder(ctx, userID, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotPending)
	fx.orderRepo.AssertNotCalled(t, "Update")
}

func TestOrderService_PurchaseStatusFor(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(adultUser(userID), nil)
	fx.orderRepo.On("FindPendingByUser", ctx, userID).Return(nil, repository.ErrOrderNotFound)

	status, err := fx.service.PurchaseStatusFor(ctx, userID)
	require.NoError(t, err)
	assert.True(t, status.Open)
	assert.Nil(t, status.PendingOrder)
	assert.Equal(t, 290.00, status.Pricing.Price)
}

func TestOrderService_PurchaseStatusFor_BlockedByPendingOrder(t *testing.T) {
	fx := createTestOrderService(t, futureDeadline())
	ctx := context.Background()
	userID := uuid.New()

	pending := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}
	fx.userRepo.On("FindByID", ctx, userID).Return(adultUser(userID), nil)
	fx.orderRepo.On("FindPendingByUser", ctx, userID).Return(pending, nil)

	status, err := fx.service.PurchaseStatusFor(ctx, userID)
	require.NoError(t, err)
	assert.False(t, status.Open)
	assert.NotNil(t, status.PendingOrder)
}
