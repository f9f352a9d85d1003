package usecase

import (
	"context"

	"encontro/internal/domain/entity"
	"encontro/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AdminLoginInput defines the data required for an administrator to log in.
type AdminLoginInput struct {
	Email    string
	Password string
}

// CreateAdminInput defines the data required to create a new administrator.
// Only super admins may perform this operation.
type CreateAdminInput struct {
	FullName    string
	Email       string
	Password    string
	AccessLevel string
}

// --- Output DTOs ---

// AdminLoginOutput returns the generated token after a successful admin login.
type AdminLoginOutput struct {
	Admin *entity.Admin
	Token string
}

// DashboardStats aggregates the headline numbers for the admin dashboard.
type DashboardStats struct {
	ActiveUsers        int64
	UsersVeras         int64
	UsersSaldanha      int64
	NewUsersThisWeek   int64
	TotalOrders        int64
	PendingOrders      int64
	PaidOrders         int64
	OrdersThisWeek     int64
	Revenue            float64
	ShirtsSold         int64
	ActiveReservations int64
	ReservationsWeek   int64
}

// TableTypeOccupancy summarizes reservation pressure for one table type.
type TableTypeOccupancy struct {
	Type     string
	Total    int64
	Reserved int64
}

// PagedUsers is one page of the administrative user listing.
type PagedUsers struct {
	Items []*entity.User
	Total int64
}

// PagedOrders is one page of the administrative order listing.
type PagedOrders struct {
	Items []*entity.Order
	Total int64
}

// PagedReservations is one page of the administrative reservation listing.
type PagedReservations struct {
	Items []*entity.Reservation
	Total int64
}

// PagedAuditLogs is one page of the audit trail.
type PagedAuditLogs struct {
	Items []*entity.AuditLog
	Total int64
}

// AdminAuthUsecase covers the administrator session lifecycle.
type AdminAuthUsecase interface {
	// Login verifies admin credentials, stamps last_login and issues a
	// token. The login itself is audit-logged.
	Login(ctx context.Context, input AdminLoginInput) (*AdminLoginOutput, error)

	// Logout records the end of an admin session in the audit trail.
	Logout(ctx context.Context, adminID uuid.UUID) error

	// Verify loads the admin behind a validated token.
	Verify(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error)

	// CreateAdmin creates a new administrator account. The caller must be
	// a super admin.
	CreateAdmin(ctx context.Context, creatorID uuid.UUID, input CreateAdminInput) (*entity.Admin, error)
}

// AdminDashboardUsecase covers the administrative read and mutation surface.
// Every mutation writes an audit record.
type AdminDashboardUsecase interface {
	// Stats aggregates the dashboard headline numbers.
	Stats(ctx context.Context) (*DashboardStats, error)

	// TableOccupancy summarizes confirmed reservations per table type.
	TableOccupancy(ctx context.Context) ([]TableTypeOccupancy, error)

	// ListUsers pages through registered participants.
	ListUsers(ctx context.Context, filter repository.UserListFilter) (*PagedUsers, error)

	// SetUserActive flips a participant's active flag.
	SetUserActive(ctx context.Context, adminID, userID uuid.UUID, active bool) (*entity.User, error)

	// ListOrders pages through orders.
	ListOrders(ctx context.Context, filter repository.OrderListFilter) (*PagedOrders, error)

	// UpdateOrderStatus overrides an order's status.
	UpdateOrderStatus(ctx context.Context, adminID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// ListReservations pages through reservations.
	ListReservations(ctx context.Context, filter repository.ReservationListFilter) (*PagedReservations, error)

	// CancelReservation releases a reservation on behalf of its owner.
	CancelReservation(ctx context.Context, adminID, reservationID uuid.UUID) (*entity.Reservation, error)

	// ListPayments returns every payment, most recent first.
	ListPayments(ctx context.Context) ([]*entity.Payment, error)

	// ConfirmPixPayment confirms a pendente PIX payment and cascades the
	// order to pago in the same transaction.
	ConfirmPixPayment(ctx context.Context, adminID, paymentID uuid.UUID) (*entity.Payment, error)

	// ListAuditLogs pages through the audit trail.
	ListAuditLogs(ctx context.Context, filter repository.AuditLogListFilter) (*PagedAuditLogs, error)
}
