package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"encontro/config"
	deliverycontext "encontro/internal/delivery/context"
	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/pricing"
	"encontro/internal/domain/repository"
	"encontro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// moneyTolerance absorbs float rounding when comparing client-submitted
// totals against server-side arithmetic.
const moneyTolerance = 0.01

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	userRepo      repository.UserRepository
	orderDeadline time.Time
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	var deadline time.Time
	if params.Config != nil && params.Config.Event != nil {
		deadline = params.Config.Event.OrderDeadline
	}

	return &orderService{
		txManager:     params.TxManager,
		orderRepo:     params.OrderRepo,
		userRepo:      params.UserRepo,
		orderDeadline: deadline,
		logger:        params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) deadlinePassed(now time.Time) bool {
	return !srv.orderDeadline.IsZero() && now.After(srv.orderDeadline)
}

// CreateOrder places a new pendente order for the user. The unit price is
// frozen from the owner's age bracket and the client total must agree with
// the server-side arithmetic.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	now := time.Now()
	if srv.deadlinePassed(now) {
		return nil, domainerrors.ErrOrderDeadlinePassed
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for order")
	}

	unitPrice := pricing.ShirtPrice(user.Age)
	if unitPrice == 0 {
		return nil, domainerrors.ErrNoShirtRequired
	}

	shirtCount := 0
	for _, item := range input.Shirts {
		if item.Quantity < 1 || item.Size == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("cada item deve ter tamanho e quantidade positiva")
		}
		shirtCount += item.Quantity
	}
	if shirtCount == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("o pedido deve conter ao menos uma camisa")
	}

	expectedTotal := float64(shirtCount) * unitPrice
	if math.Abs(expectedTotal-input.Total) > moneyTolerance {
		return nil, domainerrors.ErrOrderTotalMismatch.WithDetails(
			fmt.Sprintf("valor esperado: %s", pricing.FormatBRL(expectedTotal)))
	}

	shirtsJSON, err := json.Marshal(input.Shirts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize shirt items")
	}

	order := &entity.Order{
		UserID:     userID,
		ShirtCount: shirtCount,
		Total:      expectedTotal,
		UnitPrice:  unitPrice,
		ShirtsJSON: string(shirtsJSON),
		Status:     entity.OrderStatusPending,
		OrderedAt:  now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		// Friendly check first; the partial unique index still closes the
		// race if two requests pass it concurrently.
		_, err := orderRepo.FindPendingByUser(ctx, userID)
		if err == nil {
			return domainerrors.ErrPendingOrderExists
		}
		if !errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(err, "failed to check pending order")
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			if errors.Is(err, repository.ErrDuplicatePendingOrder) {
				return domainerrors.ErrPendingOrderExists
			}

			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("userID", userID),
		slog.Int("shirts", shirtCount),
		slog.Float64("total", expectedTotal))

	return order, nil
}

// GetOrder fetches one order owned by the user.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListOrders returns the user's orders, most recent first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// CancelOrder cancels the user's pendente order.
func (srv *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var cancelled *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByIDForUser(ctx, orderID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order for cancellation")
		}

		if !order.CanCancel() {
			return domainerrors.ErrOrderNotPending
		}

		order.Status = entity.OrderStatusCancelled
		if err := orderRepo.Update(ctx, order); err != nil {
			return err
		}

		cancelled = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order cancelled", slog.Any("orderID", orderID), slog.Any("userID", userID))

	return cancelled, nil
}

// PricingFor returns the price descriptor for the user's age bracket.
func (srv *orderService) PricingFor(ctx context.Context, userID uuid.UUID) (*pricing.Info, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for pricing")
	}

	info := pricing.InfoFor(user.Age)

	return &info, nil
}

// PurchaseStatusFor reports whether the user can currently order.
func (srv *orderService) PurchaseStatusFor(ctx context.Context, userID uuid.UUID) (*usecase.PurchaseStatus, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for purchase status")
	}

	status := &usecase.PurchaseStatus{
		Deadline: srv.orderDeadline,
		Pricing:  pricing.InfoFor(user.Age),
	}

	pending, err := srv.orderRepo.FindPendingByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(err, "failed to check pending order")
	}
	status.PendingOrder = pending

	status.Open = !srv.deadlinePassed(time.Now()) && !status.Pricing.Free && pending == nil

	return status, nil
}
