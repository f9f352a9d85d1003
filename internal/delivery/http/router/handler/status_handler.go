package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"encontro/config"
	"encontro/internal/delivery/http/middleware"
	"encontro/internal/delivery/http/response"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/pricing"
	"encontro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04:05"
)

// StatusHandler serves the public system-status and pricing endpoints.
type StatusHandler struct {
	cfg     *config.Config
	orderUC usecase.OrderUsecase
	authUC  usecase.AuthUsecase
	logger  *slog.Logger
}

// NewStatusHandler is the constructor for StatusHandler, injected by Fx.
func NewStatusHandler(cfg *config.Config, orderUC usecase.OrderUsecase, authUC usecase.AuthUsecase, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{
		cfg:     cfg,
		orderUC: orderUC,
		authUC:  authUC,
		logger:  logger,
	}
}

func (h *StatusHandler) deadline() time.Time {
	if h.cfg.Event == nil {
		return time.Time{}
	}

	return h.cfg.Event.OrderDeadline
}

// Status reports the ordering window and event details. Public.
func (h *StatusHandler) Status(c echo.Context) error {
	now := time.Now()
	deadline := h.deadline()

	open := deadline.IsZero() || !now.After(deadline)
	daysLeft := 0
	if open && !deadline.IsZero() {
		daysLeft = int(deadline.Sub(now).Hours() / 24)
	}

	event := map[string]any{}
	if h.cfg.Event != nil {
		event = map[string]any{
			"nome":   h.cfg.Event.Name,
			"data":   h.cfg.Event.Date.Format(dateLayout),
			"local":  h.cfg.Event.Venue,
			"cidade": h.cfg.Event.City,
			"ano":    strconv.Itoa(h.cfg.Event.Date.Year()),
		}
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"sistema_ativo": true,
		"data_atual":    now.Format(dateTimeLayout),
		"compra_camisas": map[string]any{
			"ativa":           open,
			"data_limite":     deadline.Format(dateLayout),
			"dias_restantes":  daysLeft,
			"prazo_encerrado": !open,
		},
		"evento": event,
	}, "")
}

// PurchaseStatus reports whether the authenticated user may order.
func (h *StatusHandler) PurchaseStatus(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	status, err := h.orderUC.PurchaseStatusFor(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authUC.Profile(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{
		"pode_comprar": status.Open,
		"data_limite":  status.Deadline.Format(dateLayout),
		"data_atual":   time.Now().Format(dateTimeLayout),
		"usuario_id":   user.ID,
		"usuario_nome": user.FullName,
		"pricing":      status.Pricing,
	}
	if status.PendingOrder != nil {
		data["pedido_pendente"] = newOrderView(status.PendingOrder)
	}

	return response.Success(c, http.StatusOK, data, "")
}

// PriceForAge returns the shirt price descriptor for an age. Public.
func (h *StatusHandler) PriceForAge(c echo.Context) error {
	age, err := strconv.Atoi(c.Param("idade"))
	if err != nil || age < 0 || age > 120 {
		return domainerrors.ErrValidationFailed.WithDetails("idade deve estar entre 0 e 120 anos")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pricing": pricing.InfoFor(age),
	}, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
