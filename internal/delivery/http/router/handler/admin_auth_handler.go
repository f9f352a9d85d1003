package handler

import (
	"log/slog"
	"net/http"

	"encontro/internal/delivery/http/middleware"
	"encontro/internal/delivery/http/response"
	"encontro/internal/domain/service"
	"encontro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminAuthHandler holds dependencies for administrator auth handlers.
type AdminAuthHandler struct {
	uc           usecase.AdminAuthUsecase
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAdminAuthHandler is the constructor for AdminAuthHandler, injected by Fx.
func NewAdminAuthHandler(uc usecase.AdminAuthUsecase, tokenService service.TokenService, logger *slog.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{
		uc:           uc,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login handles the administrator login request.
func (h *AdminAuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de login inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.AdminLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"admin": newAdminView(output.Admin),
		"token": output.Token,
	}, "Login realizado com sucesso")
}

// VerifyToken checks an admin token and returns the account behind it.
func (h *AdminAuthHandler) VerifyToken(c echo.Context) error {
	var req verifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Token é obrigatório")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims, err := h.tokenService.ValidateToken(req.Token, service.ScopeAdmin)
	if err != nil {
		return errors.WithStack(err)
	}

	admin, err := h.uc.Verify(c.Request().Context(), claims.SubjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"valid": true,
		"admin": newAdminView(admin),
	}, "Token válido")
}

// Logout records the end of the admin session in the audit trail.
func (h *AdminAuthHandler) Logout(c echo.Context) error {
	adminID, err := middleware.AdminID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), adminID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout realizado com sucesso")
}

type createAdminRequest struct {
	FullName    string `json:"nome_completo" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	AccessLevel string `json:"nivel_acesso" validate:"required"`
}

// CreateAdmin creates a new administrator account. Super admin only.
func (h *AdminAuthHandler) CreateAdmin(c echo.Context) error {
	adminID, err := middleware.AdminID(c)
	if err != nil {
		return err
	}

	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do administrador inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.uc.CreateAdmin(c.Request().Context(), adminID, usecase.CreateAdminInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		AccessLevel: req.AccessLevel,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"admin": newAdminView(admin),
	}, "Administrador criado com sucesso")
}
