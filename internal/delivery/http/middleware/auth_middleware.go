package middleware

import (
	"strings"

	deliverycontext "encontro/internal/delivery/context"
	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/service"
	"encontro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Context keys set by the guards for handlers to read.
const (
	keyUserID  = "userID"
	keyAdminID = "adminID"
	keyAdmin   = "admin"
)

// AuthMiddleware guards routes behind the two token scopes. Participant and
// administrator tokens are signed with independent secrets and are never
// interchangeable.
type AuthMiddleware struct {
	tokenService     service.TokenService
	authUsecase      usecase.AuthUsecase
	adminAuthUsecase usecase.AdminAuthUsecase
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService     service.TokenService
	AuthUsecase      usecase.AuthUsecase
	AdminAuthUsecase usecase.AdminAuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService:     params.TokenService,
		authUsecase:      params.AuthUsecase,
		adminAuthUsecase: params.AdminAuthUsecase,
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", domainerrors.ErrTokenMissing
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", domainerrors.ErrTokenInvalid
	}

	return token, nil
}

// attachRequestMeta copies the client network details into the request
// context so downstream layers (audit trail) can record them.
func attachRequestMeta(c echo.Context) {
	ctx := deliverycontext.WithRequestMeta(c.Request().Context(), deliverycontext.MetaFromEcho(c))
	c.SetRequest(c.Request().WithContext(ctx))
}

// AuthenticateUser validates a participant bearer token and loads the
// account behind it. Disabled accounts are rejected even with a live token.
func (m *AuthMiddleware) AuthenticateUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenService.ValidateToken(token, service.ScopeUser)
		if err != nil {
			return err
		}

		user, err := m.authUsecase.Profile(c.Request().Context(), claims.SubjectID)
		if err != nil {
			return err
		}
		if !user.Active {
			return domainerrors.ErrAccountDisabled
		}

		attachRequestMeta(c)
		c.Set(keyUserID, user.ID)

		return next(c)
	}
}

// AuthenticateAdmin validates an administrator bearer token and loads the
// admin account behind it.
func (m *AuthMiddleware) AuthenticateAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenService.ValidateToken(token, service.ScopeAdmin)
		if err != nil {
			return err
		}

		admin, err := m.adminAuthUsecase.Verify(c.Request().Context(), claims.SubjectID)
		if err != nil {
			return err
		}

		attachRequestMeta(c)
		c.Set(keyAdminID, admin.ID)
		c.Set(keyAdmin, admin)

		return next(c)
	}
}

// RequireSuperAdmin restricts a route to super admins. It must run after
// AuthenticateAdmin.
func (m *AuthMiddleware) RequireSuperAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		admin, ok := c.Get(keyAdmin).(*entity.Admin)
		if !ok {
			return domainerrors.ErrTokenInvalid
		}
		if !admin.IsSuperAdmin() {
			return domainerrors.ErrSuperAdminRequired
		}

		return next(c)
	}
}

// UserID returns the authenticated participant's ID set by AuthenticateUser.
func UserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(keyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return id, nil
}

// AdminID returns the authenticated admin's ID set by AuthenticateAdmin.
func AdminID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(keyAdminID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return id, nil
}
