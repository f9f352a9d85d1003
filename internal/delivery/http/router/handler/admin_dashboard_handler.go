package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"encontro/config"
	"encontro/internal/delivery/http/middleware"
	"encontro/internal/delivery/http/response"
	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// AdminDashboardHandler holds dependencies for the administrative surface.
type AdminDashboardHandler struct {
	cfg    *config.Config
	uc     usecase.AdminDashboardUsecase
	logger *slog.Logger
}

// NewAdminDashboardHandler is the constructor for AdminDashboardHandler, injected by Fx.
func NewAdminDashboardHandler(cfg *config.Config, uc usecase.AdminDashboardUsecase, logger *slog.Logger) *AdminDashboardHandler {
	return &AdminDashboardHandler{
		cfg:    cfg,
		uc:     uc,
		logger: logger,
	}
}

func (h *AdminDashboardHandler) deadline() time.Time {
	if h.cfg.Event == nil {
		return time.Time{}
	}

	return h.cfg.Event.OrderDeadline
}

// pagination reads the page/per_page query parameters with sane bounds.
func pagination(c echo.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func pageCount(total int64, perPage int) int64 {
	if total == 0 {
		return 0
	}
	return (total + int64(perPage) - 1) / int64(perPage)
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("identificador inválido")
	}
	return id, nil
}

// Stats returns the dashboard headline numbers.
func (h *AdminDashboardHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	occupancy, err := h.uc.TableOccupancy(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	reservations := map[string]any{"total": stats.ActiveReservations}
	for _, occ := range occupancy {
		reservations[occ.Type] = map[string]any{
			"total":      occ.Total,
			"reservadas": occ.Reserved,
		}
	}

	deadline := h.deadline()
	now := time.Now()
	open := deadline.IsZero() || !now.After(deadline)
	daysLeft := 0
	if open && !deadline.IsZero() {
		daysLeft = int(deadline.Sub(now).Hours() / 24)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"geral": map[string]any{
			"total_usuarios":   stats.ActiveUsers,
			"total_pedidos":    stats.TotalOrders,
			"total_reservas":   stats.ActiveReservations,
			"receita_total":    stats.Revenue,
			"camisas_vendidas": stats.ShirtsSold,
		},
		"usuarios": map[string]any{
			"veras":    stats.UsersVeras,
			"saldanha": stats.UsersSaldanha,
			"total":    stats.ActiveUsers,
		},
		"pedidos": map[string]any{
			"pendentes": stats.PendingOrders,
			"pagos":     stats.PaidOrders,
			"total":     stats.TotalOrders,
		},
		"reservas": reservations,
		"atividade_recente": map[string]any{
			"novos_usuarios": stats.NewUsersThisWeek,
			"novos_pedidos":  stats.OrdersThisWeek,
			"novas_reservas": stats.ReservationsWeek,
		},
		"prazo_compra": map[string]any{
			"ativo":          open,
			"dias_restantes": daysLeft,
			"data_limite":    deadline.Format(dateLayout),
		},
	}, "")
}

// ListUsers pages through registered participants.
func (h *AdminDashboardHandler) ListUsers(c echo.Context) error {
	page, perPage := pagination(c)
	paged, err := h.uc.ListUsers(c.Request().Context(), repository.UserListFilter{
		Search:  c.QueryParam("search"),
		Descent: entity.Descent(c.QueryParam("descendencia")),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"usuarios":     newUserViews(paged.Items),
		"total":        paged.Total,
		"pages":        pageCount(paged.Total, perPage),
		"current_page": page,
		"per_page":     perPage,
	}, "")
}

type toggleUserStatusRequest struct {
	Active bool `json:"ativo"`
}

// ToggleUserStatus sets a participant's active flag to the requested state.
func (h *AdminDashboardHandler) ToggleUserStatus(c echo.Context) error {
	adminID, err := middleware.AdminID(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req toggleUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados inválidos")
	}

	user, err := h.uc.SetUserActive(c.Request().Context(), adminID, userID, req.Active)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Usuário desativado com sucesso"
	if user.Active {
		message = "Usuário ativado com sucesso"
	}
	return response.Success(c, http.StatusOK, map[string]any{
		"usuario": newUserView(user),
	}, message)
}

// ListOrders pages through orders with an optional status filter.
func (h *AdminDashboardHandler) ListOrders(c echo.Context) error {
	page, perPage := pagination(c)
	paged, err := h.uc.ListOrders(c.Request().Context(), repository.OrderListFilter{
		Status:  entity.OrderStatus(c.QueryParam("status")),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pedidos":      newOrderViews(paged.Items),
		"total":        paged.Total,
		"pages":        pageCount(paged.Total, perPage),
		"current_page": page,
		"per_page":     perPage,
	}, "")
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus overrides an order's status.
func (h *AdminDashboardHandler) UpdateOrderStatus(c echo.Context) error {
	adminID, err := middleware.AdminID(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Status é obrigatório")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), adminID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pedido": newOrderView(order),
	}, "Status do pedido atualizado com sucesso")
}

// ListReservations pages through reservations with optional filters.
func (h *AdminDashboardHandler) ListReservations(c echo.Context) error {
	page, perPage := pagination(c)
	paged, err := h.uc.ListReservations(c.Request().Context(), repository.ReservationListFilter{
		TableType: c.QueryParam("mesa_tipo"),
		Status:    entity.ReservationStatus(c.QueryParam("status")),
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reservas":     newReservationViews(paged.Items),
		"total":        paged.Total,
		"pages":        pageCount(paged.Total, perPage),
		"current_page": page,
		"per_page":     perPage,
	}, "")
}

// CancelReservation releases a reservation on behalf of its owner.
func (h *AdminDashboardHandler) CancelReservation(c echo.Context) error {
	adminID, err := middleware.AdminID(c)
	if err != nil {
		return err
	}
	reservationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	reservation, err := h.uc.CancelReservation(c.Request().Context(), adminID, reservationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reserva": newReservationView(reservation),
	}, "Reserva cancelada com sucesso")
}

// TablesStatus summarizes confirmed reservations per table type.
func (h *AdminDashboardHandler) TablesStatus(c echo.Context) error {
	occupancy, err := h.uc.TableOccupancy(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	status := make([]map[string]any, 0, len(occupancy))
	for _, occ := range occupancy {
		status = append(status, map[string]any{
			"tipo":        occ.Type,
			"total":       occ.Total,
			"reservadas":  occ.Reserved,
			"disponiveis": occ.Total - occ.Reserved,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"mesas": status,
	}, "")
}

// ListPayments returns every payment, most recent first.
func (h *AdminDashboardHandler) ListPayments(c echo.Context) error {
	payments, err := h.uc.ListPayments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pagamentos": newPaymentViews(payments),
	}, "")
}

// ConfirmPayment confirms a pendente PIX payment and cascades to the order.
func (h *AdminDashboardHandler) ConfirmPayment(c echo.Context) error {
	adminID, err := middleware.AdminID(c)
	if err != nil {
		return err
	}
	paymentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.uc.ConfirmPixPayment(c.Request().Context(), adminID, paymentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pagamento": newPaymentView(payment),
	}, "Pagamento confirmado com sucesso")
}

// ListAuditLogs pages through the audit trail.
func (h *AdminDashboardHandler) ListAuditLogs(c echo.Context) error {
	page, perPage := pagination(c)
	filter := repository.AuditLogListFilter{
		Action:  c.QueryParam("acao"),
		Page:    page,
		PerPage: perPage,
	}
	if raw := c.QueryParam("admin_id"); raw != "" {
		adminID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("admin_id inválido")
		}
		filter.AdminID = &adminID
	}

	paged, err := h.uc.ListAuditLogs(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"logs":         newAuditLogViews(paged.Items),
		"total":        paged.Total,
		"pages":        pageCount(paged.Total, perPage),
		"current_page": page,
		"per_page":     perPage,
	}, "")
}
