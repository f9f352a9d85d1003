package impl

import (
	"context"
	"testing"

	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/domain/service"
	"encontro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminDashboardServiceFixtures holds all test dependencies for dashboard tests.
type adminDashboardServiceFixtures struct {
	service         usecase.AdminDashboardUsecase
	userRepo        *mockUserRepository
	orderRepo       *mockOrderRepository
	paymentRepo     *mockPaymentRepository
	reservationRepo *mockReservationRepository
	auditLogRepo    *mockAuditLogRepository
	auditRecorder   *mockAuditRecorder
}

func createTestAdminDashboardService(t *testing.T) adminDashboardServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	orderRepo := &mockOrderRepository{}
	paymentRepo := &mockPaymentRepository{}
	reservationRepo := &mockReservationRepository{}
	auditLogRepo := &mockAuditLogRepository{}
	auditRecorder := &mockAuditRecorder{}
	factory := &stubRepoFactory{
		userRepo:        userRepo,
		orderRepo:       orderRepo,
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		auditLogRepo:    auditLogRepo,
	}

	service := NewAdminDashboardService(AdminDashboardServiceParams{
		TxManager:       &stubTxManager{factory: factory},
		UserRepo:        userRepo,
		OrderRepo:       orderRepo,
		PaymentRepo:     paymentRepo,
		ReservationRepo: reservationRepo,
		AuditLogRepo:    auditLogRepo,
		AuditRecorder:   auditRecorder,
		Logger:          discardLogger(),
	})

	return adminDashboardServiceFixtures{
		service:         service,
		userRepo:        userRepo,
		orderRepo:       orderRepo,
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		auditLogRepo:    auditLogRepo,
		auditRecorder:   auditRecorder,
	}
}

func TestAdminDashboardService_Stats(t *testing.T) {
	fx := createTestAdminDashboardService(t)
	ctx := context.Background()

	fx.userRepo.On("CountActive", ctx).Return(int64(120), nil)
	fx.userRepo.On("CountActiveByDescent", ctx, entity.DescentVeras).Return(int64(70), nil)
	fx.userRepo.On("CountActiveByDescent", ctx, entity.DescentSaldanha).Return(int64(50), nil)
	fx.userRepo.On("CountCreatedSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(8), nil)

	fx.orderRepo.On("Count", ctx).Return(int64(90), nil)
	fx.orderRepo.On("CountByStatus", ctx, entity.OrderStatusPending).Return(int64(15), nil)
	fx.orderRepo.On("CountByStatus", ctx, entity.OrderStatusPaid).Return(int64(60), nil)
	fx.orderRepo.On("CountCreatedSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(12), nil)
	fx.orderRepo.On("RevenueAndShirts", ctx).Return(26100.00, int64(90), nil)

	fx.reservationRepo.On("CountConfirmed", ctx).Return(int64(14), nil)
	fx.reservationRepo.On("CountCreatedSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil)

	stats, err := fx.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.ActiveUsers)
	assert.Equal(t, int64(70), stats.UsersVeras)
	assert.Equal(t, int64(50), stats.UsersSaldanha)
	assert.Equal(t, int64(15), stats.PendingOrders)
	assert.Equal(t, 26100.00, stats.Revenue)
	assert.Equal(t, int64(90), stats.ShirtsSold)
	assert.Equal(t, int64(14), stats.ActiveReservations)
}

func TestAdminDashboardService_TableOccupancy(t *testing.T) {
	fx := createTestAdminDashboardService(t)
	ctx := context.Background()

	fx.reservationRepo.On("CountConfirmedByType", ctx, "VIP").Return(int64(4), nil)
	fx.reservationRepo.On("CountConfirmedByType", ctx, "Premium").Return(int64(2), nil)
	fx.reservationRepo.On("CountConfirmedByType", ctx, "Standard").Return(int64(0), nil)

	occupancy, err := fx.service.TableOccupancy(ctx)
	require.NoError(t, err)
	require.Len(t, occupancy, 3)

	assert.Equal(t, "VIP", occupancy[0].Type)
	assert.Equal(t, int64(4), occupancy[0].Total)
	assert.Equal(t, int64(4), occupancy[0].Reserved)

	assert.Equal(t, "Premium", occupancy[1].Type)
	assert.Equal(t, int64(6), occupancy[1].Total)
	assert.Equal(t, int64(2), occupancy[1].Reserved)

	assert.Equal(t, "Standard", occupancy[2].Type)
	assert.Equal(t, int64(8), occupancy[2].Total)
}

func TestAdminDashboardService_SetUserActive_Deactivates(t *testing.T) {
	fx := createTestAdminDashboardService(t)
	ctx := context.Background()
	adminID := uuid.New()
	user := &entity.User{ID: uuid.New(), Email: "maria@encontro.com", Active: true}

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.userRepo.On("Update", ctx, user).Return(nil)
	fx.auditRecorder.On("Record", ctx, mock.MatchedBy(func(entry service.AuditEntry) bool {
		before, _ := entry.Before.(map[string]any)
		after, _ := entry.After.(map[string]any)

		return entry.Action == entity.AuditActionDeactivateUser &&
			before["ativo"] == true && after["ativo"] == false
	})).Return()

	updated, err := fx.service.SetUserActive(ctx, adminID, user.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)
	fx.auditRecorder.AssertExpectations(t)
}

func TestAdminDashboardService_SetUserActive_Reactivates(t *testing.T) {
	fx := createTestAdminDashboardService(t)
	ctx := context.Background()
	adminID := uuid.New()
	user := &entity.User{ID: uuid.New(), Email: "maria@encontro.com", Active: false}

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.userRepo.On("Update", ctx, user).Return(nil)
	fx.auditRecorder.On("Record", ctx, mock.MatchedBy(func(entry service.AuditEntry) bool {
		return entry.Action == entity.AuditActionActivateUser
	})).Return()

	updated, err := fx.service.SetUserActive(ctx, adminID, user.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Active)
}

func TestAdminDashboardService_UpdateOrderStatus_MarksPaidAt(t *testing.T) {
	fx := createTestAdminDashboardService(t)
	ctx := context.Background()
	adminID := uuid.New()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}

	fx.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	fx.orderRepo.On("Update", ctx, order).Return(nil)
	fx.auditRecorder.On("Record", ctx, mock.MatchedBy(func(entry service.AuditEntry) bool {
		before, _ := entry.Before.(map[string]any)
		after, _ := entry.After.(map[string]any)

		return entry.Action == entity.AuditActionUpdateOrderStatus &&
			before["status"] == "pendente" && after["status"] == "pago"
	})).Return()

	updated, err := fx.service.UpdateOrderStatus(ctx, adminID, order.ID, entity.OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, updated.Status)
	assert.NotNil(t, updated.PaidAt)
}

func TestAdminDashboardService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestAdminDashboardService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), "enviado")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	fx.orderRepo.AssertNotCalled(t, "Update")
}

func TestAdminDashboardService_CancelReservation(t *testing.T) {
	fx := createTestAdminDashboardService(t)
	ctx := context.Background()
	adminID := uuid.New()
	reservation := &entity.Reservation{
		ID:          uuid.New(),
		TableNumber: "VIP-02",
		Status:      entity.ReservationStatusConfirmed,
	}

	fx.reservationRepo.On("FindByID", ctx, reservation.ID).Return(reservation, nil)
	fx.reservationRepo.On("Update", ctx, reservation).Return(nil)
	fx.auditRecorder.On("Record", ctx, mock.MatchedBy(func(entry service.AuditEntry) bool {
		return entry.Action == entity.AuditActionCancelReservation
	})).Return()

	cancelled, err := fx.service.CancelReservation(ctx, adminID, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCancelled, cancelled.Status)
}

func TestAdminDashboardService_ConfirmPixPayment_CascadesToOrder(t *testing.T) {
	fx := createTestAdminDashboardService(t)
	ctx := context.Background()
	adminID := uuid.New()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}
	payment := &entity.Payment{
		ID:      uuid.New(),
		OrderID: order.ID,
		Method:  entity.PaymentMethodPix,
		Status:  entity.PaymentStatusPending,
	}

	fx.paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)
	fx.paymentRepo.On("Update", ctx, payment).Return(nil)
	fx.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	fx.orderRepo.On("Update", ctx, order).Return(nil)
	fx.auditRecorder.On("Record", ctx, mock.MatchedBy(func(entry service.AuditEntry) bool {
		return entry.Action == entity.AuditActionConfirmPayment
	})).Return()

	confirmed, err := fx.service.ConfirmPixPayment(ctx, adminID, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.NotNil(t, order.PaidAt)
}

func TestAdminDashboardService_ConfirmPixPayment_AlreadyConfirmed(t *testing.T) {
	fx := createTestAdminDashboardService(t)
	ctx := context.Background()
	payment := &entity.Payment{
		ID:     uuid.New(),
		Method: entity.PaymentMethodPix,
		Status: entity.PaymentStatusConfirmed,
	}

	fx.paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)

	_, err := fx.service.ConfirmPixPayment(ctx, uuid.New(), payment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadyProcessed)
	fx.paymentRepo.AssertNotCalled(t, "Update")
}

func TestAdminDashboardService_ConfirmPixPayment_CardRejected(t *testing.T) {
	fx := createTestAdminDashboardService(t)
	ctx := context.Background()
	payment := &entity.Payment{
		ID:     uuid.New(),
		Method: entity.PaymentMethodCard,
		Status: entity.PaymentStatusPending,
	}

	fx.paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)

	_, err := fx.service.ConfirmPixPayment(ctx, uuid.New(), payment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadyProcessed)
}

func TestAdminDashboardService_ListAuditLogs(t *testing.T) {
	fx := createTestAdminDashboardService(t)
	ctx := context.Background()
	filter := repository.AuditLogListFilter{Page: 1, PerPage: 20}

	logs := []*entity.AuditLog{{ID: uuid.New(), Action: entity.AuditActionLogin}}
	fx.auditLogRepo.On("List", ctx, filter).Return(logs, int64(1), nil)

	paged, err := fx.service.ListAuditLogs(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), paged.Total)
	require.Len(t, paged.Items, 1)
}
