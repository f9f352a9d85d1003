package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "encontro/internal/delivery/context"
	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/domain/service"
	"encontro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recentWindow is the lookback used for the "this week" dashboard counters.
const recentWindow = 7 * 24 * time.Hour

// adminDashboardService implements the AdminDashboardUsecase interface.
type adminDashboardService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	orderRepo       repository.OrderRepository
	paymentRepo     repository.PaymentRepository
	reservationRepo repository.ReservationRepository
	auditLogRepo    repository.AuditLogRepository
	auditRecorder   service.AuditRecorder
	logger          *slog.Logger
}

// AdminDashboardServiceParams holds dependencies for adminDashboardService, injected by Fx.
type AdminDashboardServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	OrderRepo       repository.OrderRepository
	PaymentRepo     repository.PaymentRepository
	ReservationRepo repository.ReservationRepository
	AuditLogRepo    repository.AuditLogRepository
	AuditRecorder   service.AuditRecorder
	Logger          *slog.Logger
}

// NewAdminDashboardService is the constructor for adminDashboardService.
func NewAdminDashboardService(params AdminDashboardServiceParams) usecase.AdminDashboardUsecase {
	return &adminDashboardService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		orderRepo:       params.OrderRepo,
		paymentRepo:     params.PaymentRepo,
		reservationRepo: params.ReservationRepo,
		auditLogRepo:    params.AuditLogRepo,
		auditRecorder:   params.AuditRecorder,
		logger:          params.Logger,
	}
}

func (srv *adminDashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats aggregates the dashboard headline numbers.
func (srv *adminDashboardService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	since := time.Now().Add(-recentWindow)
	stats := &usecase.DashboardStats{}

	var err error
	if stats.ActiveUsers, err = srv.userRepo.CountActive(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count active users")
	}
	if stats.UsersVeras, err = srv.userRepo.CountActiveByDescent(ctx, entity.DescentVeras); err != nil {
		return nil, errors.Wrap(err, "failed to count veras users")
	}
	if stats.UsersSaldanha, err = srv.userRepo.CountActiveByDescent(ctx, entity.DescentSaldanha); err != nil {
		return nil, errors.Wrap(err, "failed to count saldanha users")
	}
	if stats.NewUsersThisWeek, err = srv.userRepo.CountCreatedSince(ctx, since); err != nil {
		return nil, errors.Wrap(err, "failed to count recent users")
	}

	if stats.TotalOrders, err = srv.orderRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}
	if stats.PendingOrders, err = srv.orderRepo.CountByStatus(ctx, entity.OrderStatusPending); err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}
	if stats.PaidOrders, err = srv.orderRepo.CountByStatus(ctx, entity.OrderStatusPaid); err != nil {
		return nil, errors.Wrap(err, "failed to count paid orders")
	}
	if stats.OrdersThisWeek, err = srv.orderRepo.CountCreatedSince(ctx, since); err != nil {
		return nil, errors.Wrap(err, "failed to count recent orders")
	}
	if stats.Revenue, stats.ShirtsSold, err = srv.orderRepo.RevenueAndShirts(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	if stats.ActiveReservations, err = srv.reservationRepo.CountConfirmed(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count reservations")
	}
	if stats.ReservationsWeek, err = srv.reservationRepo.CountCreatedSince(ctx, since); err != nil {
		return nil, errors.Wrap(err, "failed to count recent reservations")
	}

	return stats, nil
}

// TableOccupancy summarizes confirmed reservations per table type.
func (srv *adminDashboardService) TableOccupancy(ctx context.Context) ([]usecase.TableTypeOccupancy, error) {
	totals := make(map[string]int64)
	order := make([]string, 0, 3)
	for _, table := range entity.TableCatalog {
		if _, seen := totals[table.Type]; !seen {
			order = append(order, table.Type)
		}
		totals[table.Type]++
	}

	occupancy := make([]usecase.TableTypeOccupancy, 0, len(order))
	for _, tableType := range order {
		reserved, err := srv.reservationRepo.CountConfirmedByType(ctx, tableType)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count reservations by type")
		}

		occupancy = append(occupancy, usecase.TableTypeOccupancy{
			Type:     tableType,
			Total:    totals[tableType],
			Reserved: reserved,
		})
	}

	return occupancy, nil
}

// ListUsers pages through registered participants.
func (srv *adminDashboardService) ListUsers(ctx context.Context, filter repository.UserListFilter) (*usecase.PagedUsers, error) {
	users, total, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.PagedUsers{Items: users, Total: total}, nil
}

// SetUserActive flips a participant's active flag and audit-logs the change.
func (srv *adminDashboardService) SetUserActive(ctx context.Context, adminID, userID uuid.UUID, active bool) (*entity.User, error) {
	var updated *entity.User
	var wasActive bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user for status toggle")
		}

		wasActive = user.Active
		user.Active = active
		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	action := entity.AuditActionActivateUser
	if !active {
		action = entity.AuditActionDeactivateUser
	}
	srv.auditRecorder.Record(ctx, service.AuditEntry{
		AdminID:       adminID,
		Action:        action,
		Description:   fmt.Sprintf("Status do usuário %s alterado", updated.Email),
		AffectedTable: "usuarios",
		RecordID:      &updated.ID,
		Before:        map[string]any{"ativo": wasActive},
		After:         map[string]any{"ativo": active},
	})

	srv.log(ctx).Info("User status toggled",
		slog.Any("userID", userID),
		slog.Any("adminID", adminID),
		slog.Bool("active", active))

	return updated, nil
}

// ListOrders pages through orders.
func (srv *adminDashboardService) ListOrders(ctx context.Context, filter repository.OrderListFilter) (*usecase.PagedOrders, error) {
	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.PagedOrders{Items: orders, Total: total}, nil
}

// UpdateOrderStatus overrides an order's status and audit-logs the change.
func (srv *adminDashboardService) UpdateOrderStatus(ctx context.Context, adminID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status de pedido desconhecido")
	}

	var updated *entity.Order
	var previous entity.OrderStatus

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order for status update")
		}

		previous = order.Status
		order.Status = status
		if status == entity.OrderStatusPaid && order.PaidAt == nil {
			now := time.Now()
			order.PaidAt = &now
		}
		if err := orderRepo.Update(ctx, order); err != nil {
			return err
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.auditRecorder.Record(ctx, service.AuditEntry{
		AdminID:       adminID,
		Action:        entity.AuditActionUpdateOrderStatus,
		Description:   fmt.Sprintf("Status do pedido alterado de %s para %s", previous, status),
		AffectedTable: "pedidos",
		RecordID:      &updated.ID,
		Before:        map[string]any{"status": previous.String()},
		After:         map[string]any{"status": status.String()},
	})

	return updated, nil
}

// ListReservations pages through reservations.
func (srv *adminDashboardService) ListReservations(ctx context.Context, filter repository.ReservationListFilter) (*usecase.PagedReservations, error) {
	reservations, total, err := srv.reservationRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	return &usecase.PagedReservations{Items: reservations, Total: total}, nil
}

// CancelReservation releases a reservation on behalf of its owner.
func (srv *adminDashboardService) CancelReservation(ctx context.Context, adminID, reservationID uuid.UUID) (*entity.Reservation, error) {
	var cancelled *entity.Reservation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservationRepo := repoFactory.ReservationRepo()

		reservation, err := reservationRepo.FindByID(ctx, reservationID)
		if err != nil {
			if errors.Is(err, repository.ErrReservationNotFound) {
				return domainerrors.ErrReservationNotFound
			}

			return errors.Wrap(err, "failed to find reservation for admin cancellation")
		}

		if !reservation.CanCancel() {
			return domainerrors.ErrReservationNotActive
		}

		now := time.Now()
		reservation.Status = entity.ReservationStatusCancelled
		reservation.CancelledAt = &now
		if err := reservationRepo.Update(ctx, reservation); err != nil {
			return err
		}

		cancelled = reservation

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.auditRecorder.Record(ctx, service.AuditEntry{
		AdminID:       adminID,
		Action:        entity.AuditActionCancelReservation,
		Description:   fmt.Sprintf("Reserva da mesa %s cancelada", cancelled.TableNumber),
		AffectedTable: "reservas",
		RecordID:      &cancelled.ID,
		Before:        map[string]any{"status": entity.ReservationStatusConfirmed.String()},
		After:         map[string]any{"status": entity.ReservationStatusCancelled.String()},
	})

	return cancelled, nil
}

// ListPayments returns every payment, most recent first.
func (srv *adminDashboardService) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// ConfirmPixPayment confirms a pendente PIX payment and cascades the order
// to pago in the same transaction.
func (srv *adminDashboardService) ConfirmPixPayment(ctx context.Context, adminID, paymentID uuid.UUID) (*entity.Payment, error) {
	var confirmed *entity.Payment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentRepo()
		orderRepo := repoFactory.OrderRepo()

		payment, err := paymentRepo.FindByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return domainerrors.ErrPaymentNotFound
			}

			return errors.Wrap(err, "failed to find payment for confirmation")
		}

		if !payment.IsPix() || payment.Status != entity.PaymentStatusPending {
			return domainerrors.ErrPaymentAlreadyProcessed
		}

		now := time.Now()
		payment.Status = entity.PaymentStatusConfirmed
		payment.ConfirmedAt = &now
		if err := paymentRepo.Update(ctx, payment); err != nil {
			return err
		}

		order, err := orderRepo.FindByID(ctx, payment.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order for payment confirmation")
		}

		order.Status = entity.OrderStatusPaid
		order.PaidAt = &now
		if err := orderRepo.Update(ctx, order); err != nil {
			return err
		}

		confirmed = payment

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.auditRecorder.Record(ctx, service.AuditEntry{
		AdminID:       adminID,
		Action:        entity.AuditActionConfirmPayment,
		Description:   "Pagamento PIX confirmado",
		AffectedTable: "pagamentos",
		RecordID:      &confirmed.ID,
		Before:        map[string]any{"status": entity.PaymentStatusPending.String()},
		After:         map[string]any{"status": entity.PaymentStatusConfirmed.String()},
	})

	srv.log(ctx).Info("PIX payment confirmed",
		slog.Any("paymentID", paymentID),
		slog.Any("adminID", adminID))

	return confirmed, nil
}

// ListAuditLogs pages through the audit trail.
func (srv *adminDashboardService) ListAuditLogs(ctx context.Context, filter repository.AuditLogListFilter) (*usecase.PagedAuditLogs, error) {
	logs, total, err := srv.auditLogRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	return &usecase.PagedAuditLogs{Items: logs, Total: total}, nil
}
