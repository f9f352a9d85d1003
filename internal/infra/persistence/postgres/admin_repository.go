package postgres

import (
	"context"

	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// FindByID retrieves an administrator by their unique ID.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by ID")
	}

	return toAdminDomain(&adminM), nil
}

// FindByEmail retrieves an administrator by their email address.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminDomain(&adminM), nil
}

// Create persists a new administrator.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt

	return nil
}

// Update modifies an existing administrator.
func (repo *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ?", admin.ID).
		Updates(map[string]any{
			"nome_completo": adminM.NomeCompleto,
			"email":         adminM.Email,
			"senha_hash":    adminM.SenhaHash,
			"nivel_acesso":  adminM.NivelAcesso,
			"ativo":         adminM.Ativo,
			"ultimo_login":  adminM.UltimoLogin,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		return errors.Wrap(result.Error, "failed to update admin")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:           data.ID,
		FullName:     data.NomeCompleto,
		Email:        data.Email,
		PasswordHash: data.SenhaHash,
		AccessLevel:  entity.AccessLevel(data.NivelAcesso),
		Active:       data.Ativo,
		CreatedBy:    data.CriadoPor,
		LastLogin:    data.UltimoLogin,
		CreatedAt:    data.CreatedAt,
	}
}

// fromAdminDomain converts a domain Admin entity to a GORM AdminModel.
func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:           data.ID,
		NomeCompleto: data.FullName,
		Email:        data.Email,
		SenhaHash:    data.PasswordHash,
		NivelAcesso:  data.AccessLevel.String(),
		Ativo:        data.Active,
		CriadoPor:    data.CreatedBy,
		UltimoLogin:  data.LastLogin,
		CreatedAt:    data.CreatedAt,
	}
}
