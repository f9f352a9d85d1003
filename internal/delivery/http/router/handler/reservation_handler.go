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

// ReservationHandler holds dependencies for table reservation handlers.
type ReservationHandler struct {
	uc     usecase.ReservationUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{uc: uc, logger: logger}
}

// ListTables returns the seating catalog with per-table availability.
func (h *ReservationHandler) ListTables(c echo.Context) error {
	tables, err := h.uc.ListTables(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]tableView, 0, len(tables))
	for _, item := range tables {
		views = append(views, tableView{
			Number:   item.Table.Number,
			Type:     item.Table.Type,
			Capacity: item.Table.Capacity,
			Location: item.Table.Location,
			Reserved: item.Reserved,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"mesas": views,
	}, "")
}

type reserveTableRequest struct {
	TableNumber   string `json:"mesa_numero" validate:"required"`
	TableType     string `json:"mesa_tipo" validate:"required"`
	TableCapacity int    `json:"mesa_capacidade" validate:"required,gt=0"`
	TableLocation string `json:"mesa_localizacao" validate:"required"`
}

// Create books a table for the authenticated user.
func (h *ReservationHandler) Create(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req reserveTableRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados da reserva inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reservation, err := h.uc.Reserve(c.Request().Context(), userID, usecase.ReserveTableInput{
		TableNumber:   req.TableNumber,
		TableType:     req.TableType,
		TableCapacity: req.TableCapacity,
		TableLocation: req.TableLocation,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"reserva": newReservationView(reservation),
	}, "Reserva criada com sucesso")
}

// List returns the authenticated user's reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	reservations, err := h.uc.ListReservations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reservas": newReservationViews(reservations),
	}, "")
}

// Mine returns the user's active reservation, if any.
func (h *ReservationHandler) Mine(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	reservation, err := h.uc.CurrentReservation(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	if reservation == nil {
		return response.Success(c, http.StatusOK, map[string]any{
			"reserva": nil,
		}, "Nenhuma reserva ativa")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reserva": newReservationView(reservation),
	}, "")
}

// Cancel releases the authenticated user's reservation.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("identificador de reserva inválido")
	}

	reservation, err := h.uc.Cancel(c.Request().Context(), userID, reservationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reserva": newReservationView(reservation),
	}, "Reserva cancelada com sucesso")
}
