package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"encontro/internal/domain/entity"
	"encontro/internal/domain/repository"
	"encontro/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// discardLogger silences service logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Repository mocks ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) List(ctx context.Context, filter repository.UserListFilter) ([]*entity.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}

	return args.Get(0).([]*entity.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) CountActiveByDescent(ctx context.Context, descent entity.Descent) (int64, error) {
	args := m.Called(ctx, descent)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)

	return args.Get(0).(int64), args.Error(1)
}

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *mockAdminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *mockAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *mockAdminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderRepository) FindPendingByUser(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *mockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepository) List(ctx context.Context, filter repository.OrderListFilter) ([]*entity.Order, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}

	return args.Get(0).([]*entity.Order), args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepository) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepository) RevenueAndShirts(ctx context.Context) (float64, int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *mockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockPaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Reservation, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepository) FindConfirmedByUser(ctx context.Context, userID uuid.UUID) (*entity.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepository) FindConfirmedByTable(ctx context.Context, tableNumber string) (*entity.Reservation, error) {
	args := m.Called(ctx, tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepository) FindConfirmed(ctx context.Context) ([]*entity.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *mockReservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *mockReservationRepository) List(ctx context.Context, filter repository.ReservationListFilter) ([]*entity.Reservation, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}

	return args.Get(0).([]*entity.Reservation), args.Get(1).(int64), args.Error(2)
}

func (m *mockReservationRepository) CountConfirmed(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReservationRepository) CountConfirmedByType(ctx context.Context, tableType string) (int64, error) {
	args := m.Called(ctx, tableType)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReservationRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)

	return args.Get(0).(int64), args.Error(1)
}

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *mockAuditLogRepository) List(ctx context.Context, filter repository.AuditLogListFilter) ([]*entity.AuditLog, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}

	return args.Get(0).([]*entity.AuditLog), args.Get(1).(int64), args.Error(2)
}

// --- Transaction plumbing ---

// stubRepoFactory hands the test's repository mocks to transactional code.
type stubRepoFactory struct {
	userRepo        *mockUserRepository
	adminRepo       *mockAdminRepository
	orderRepo       *mockOrderRepository
	paymentRepo     *mockPaymentRepository
	reservationRepo *mockReservationRepository
	auditLogRepo    *mockAuditLogRepository
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository       { return f.userRepo }
func (f *stubRepoFactory) AdminRepo() repository.AdminRepository     { return f.adminRepo }
func (f *stubRepoFactory) OrderRepo() repository.OrderRepository     { return f.orderRepo }
func (f *stubRepoFactory) PaymentRepo() repository.PaymentRepository { return f.paymentRepo }
func (f *stubRepoFactory) ReservationRepo() repository.ReservationRepository {
	return f.reservationRepo
}
func (f *stubRepoFactory) AuditLogRepo() repository.AuditLogRepository { return f.auditLogRepo }

// stubTxManager runs the transactional function directly against the stub factory.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (tm *stubTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

// --- Domain service mocks ---

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) IssueUserToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) IssueAdminToken(adminID uuid.UUID) (string, error) {
	args := m.Called(adminID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(token string, scope service.TokenScope) (*service.Claims, error) {
	args := m.Called(token, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *mockTokenService) UserTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

func (m *mockTokenService) AdminTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

type mockReceiptStore struct {
	mock.Mock
}

func (m *mockReceiptStore) Save(ctx context.Context, name string, contentType string, body io.Reader) error {
	return m.Called(ctx, name, contentType, body).Error(0)
}

func (m *mockReceiptStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(io.ReadCloser), args.Error(1)
}

type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GeneratePaymentQR(paymentID uuid.UUID, amount float64) ([]byte, error) {
	args := m.Called(paymentID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockQRCodeService) PaymentPayload(paymentID uuid.UUID, amount float64) string {
	return m.Called(paymentID, amount).String(0)
}

type mockAuditRecorder struct {
	mock.Mock
}

func (m *mockAuditRecorder) Record(ctx context.Context, entry service.AuditEntry) {
	m.Called(ctx, entry)
}
