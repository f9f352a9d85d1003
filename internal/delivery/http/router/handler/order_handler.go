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

// OrderHandler holds dependencies for shirt-order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type createOrderRequest struct {
	Shirts     []usecase.ShirtItem `json:"camisas" validate:"required,min=1,dive"`
	ShirtCount int                 `json:"total_camisas"`
	Total      float64             `json:"valor_total"`
}

// Create handles the order creation request.
func (h *OrderHandler) Create(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do pedido inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), userID, usecase.CreateOrderInput{
		Shirts: req.Shirts,
		Total:  req.Total,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"pedido": newOrderView(order),
	}, "Pedido criado com sucesso")
}

// List returns the authenticated user's orders.
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pedidos": newOrderViews(orders),
	}, "")
}

// Get returns one of the authenticated user's orders.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("identificador de pedido inválido")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pedido": newOrderView(order),
	}, "")
}

// Cancel cancels the authenticated user's pendente order.
func (h *OrderHandler) Cancel(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("identificador de pedido inválido")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pedido": newOrderView(order),
	}, "Pedido cancelado com sucesso")
}
