// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"encontro/internal/delivery/http/response"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/service"
	"encontro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for participant auth handlers.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenService service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		tokenService: tokenService,
		logger:       logger,
	}
}

type registerRequest struct {
	FullName        string `json:"nomeCompleto" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Descent         string `json:"descendencia" validate:"required"`
	Age             int    `json:"idade" validate:"required,gte=6,lte=120"`
	City            string `json:"cidadeResidencia" validate:"required,min=2"`
}

// Register handles the participant signup request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cadastro inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Password != req.ConfirmPassword {
		return domainerrors.ErrValidationFailed.WithDetails("as senhas não coincidem")
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Descent:  req.Descent,
		Age:      req.Age,
		City:     req.City,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"user":  newUserView(output.User),
		"token": output.Token,
	}, "Usuário cadastrado com sucesso")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the participant login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de login inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":  newUserView(output.User),
		"token": output.Token,
	}, "Login realizado com sucesso")
}

type verifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// VerifyToken checks a participant token and returns the account behind it.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var req verifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Token é obrigatório")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims, err := h.tokenService.ValidateToken(req.Token, service.ScopeUser)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Profile(c.Request().Context(), claims.SubjectID)
	if err != nil {
		return errors.WithStack(err)
	}
	if !user.Active {
		return domainerrors.ErrAccountDisabled
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"valid": true,
		"user":  newUserView(user),
	}, "Token válido")
}
