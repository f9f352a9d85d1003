package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "encontro/internal/delivery/context"
	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/domain/service"
	"encontro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminAuthService implements the AdminAuthUsecase interface.
type adminAuthService struct {
	adminRepo     repository.AdminRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	auditRecorder service.AuditRecorder
	logger        *slog.Logger
}

// AdminAuthServiceParams holds dependencies for adminAuthService, injected by Fx.
type AdminAuthServiceParams struct {
	fx.In

	AdminRepo     repository.AdminRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	AuditRecorder service.AuditRecorder
	Logger        *slog.Logger
}

// NewAdminAuthService is the constructor for adminAuthService.
func NewAdminAuthService(params AdminAuthServiceParams) usecase.AdminAuthUsecase {
	return &adminAuthService{
		adminRepo:     params.AdminRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		auditRecorder: params.AuditRecorder,
		logger:        params.Logger,
	}
}

func (srv *adminAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies admin credentials, stamps last_login and issues a token.
func (srv *adminAuthService) Login(ctx context.Context, input usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login rejected: bad password", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !admin.Active {
		srv.log(ctx).Warn("Admin login rejected: account disabled", slog.Any("adminID", admin.ID))

		return nil, domainerrors.ErrAccountDisabled
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := srv.adminRepo.Update(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to stamp admin last login")
	}

	token, err := srv.tokenService.IssueAdminToken(admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue admin token")
	}

	srv.auditRecorder.Record(ctx, service.AuditEntry{
		AdminID:     admin.ID,
		Action:      entity.AuditActionLogin,
		Description: fmt.Sprintf("Login realizado por %s", admin.Email),
	})

	srv.log(ctx).Info("Admin logged in", slog.Any("adminID", admin.ID))

	return &usecase.AdminLoginOutput{Admin: admin, Token: token}, nil
}

// Logout records the end of an admin session in the audit trail.
func (srv *adminAuthService) Logout(ctx context.Context, adminID uuid.UUID) error {
	admin, err := srv.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound
		}

		return errors.Wrap(err, "failed to find admin for logout")
	}

	srv.auditRecorder.Record(ctx, service.AuditEntry{
		AdminID:     admin.ID,
		Action:      entity.AuditActionLogout,
		Description: fmt.Sprintf("Logout realizado por %s", admin.Email),
	})

	return nil
}

// Verify loads the admin behind a validated token.
func (srv *adminAuthService) Verify(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	admin, err := srv.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by ID")
	}

	if !admin.Active {
		return nil, domainerrors.ErrAccountDisabled
	}

	return admin, nil
}

// CreateAdmin creates a new administrator account. The caller must be a
// super admin; the creation is audit-logged with the new account snapshot.
func (srv *adminAuthService) CreateAdmin(ctx context.Context, creatorID uuid.UUID, input usecase.CreateAdminInput) (*entity.Admin, error) {
	creator, err := srv.adminRepo.FindByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find creating admin")
	}

	if !creator.IsSuperAdmin() {
		return nil, domainerrors.ErrSuperAdminRequired
	}

	accessLevel := entity.AccessLevel(input.AccessLevel)
	if !accessLevel.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nível de acesso deve ser admin ou super_admin")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.Admin{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		AccessLevel:  accessLevel,
		Active:       true,
		CreatedBy:    &creator.ID,
		CreatedAt:    time.Now(),
	}

	if err := srv.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	srv.auditRecorder.Record(ctx, service.AuditEntry{
		AdminID:       creator.ID,
		Action:        entity.AuditActionCreateAdmin,
		Description:   fmt.Sprintf("Administrador %s criado por %s", admin.Email, creator.Email),
		AffectedTable: "admins",
		RecordID:      &admin.ID,
		After: map[string]any{
			"email":        admin.Email,
			"nivel_acesso": admin.AccessLevel.String(),
		},
	})

	srv.log(ctx).Info("Admin created",
		slog.Any("adminID", admin.ID),
		slog.Any("createdBy", creator.ID),
		slog.String("accessLevel", accessLevel.String()))

	return admin, nil
}
