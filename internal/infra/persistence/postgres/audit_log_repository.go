package postgres

import (
	"context"

	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
// The table is append-only; the interface deliberately has no update or
// delete operation.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create appends one audit record.
func (repo *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	logM := fromAuditLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log")
	}

	log.ID = logM.ID

	return nil
}

// List returns a page of audit records matching the filter, most recent first.
func (repo *auditLogRepository) List(ctx context.Context, filter repository.AuditLogListFilter) ([]*entity.AuditLog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AuditLogModel{})

	if filter.Action != "" {
		query = query.Where("acao = ?", filter.Action)
	}
	if filter.AdminID != nil {
		query = query.Where("admin_id = ?", *filter.AdminID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count audit logs")
	}

	var logModels []*model.AuditLogModel
	if err := query.
		Order("timestamp DESC").
		Offset(pageOffset(filter.Page, filter.PerPage)).
		Limit(pageLimit(filter.PerPage)).
		Find(&logModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list audit logs")
	}

	logs := make([]*entity.AuditLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toAuditLogDomain(logM))
	}

	return logs, total, nil
}

// --- Mapper Functions ---

// toAuditLogDomain converts a GORM AuditLogModel to a domain AuditLog entity.
func toAuditLogDomain(data *model.AuditLogModel) *entity.AuditLog {
	if data == nil {
		return nil
	}

	return &entity.AuditLog{
		ID:            data.ID,
		AdminID:       data.AdminID,
		Action:        data.Acao,
		Description:   data.Descricao,
		AffectedTable: data.TabelaAfetada,
		RecordID:      data.RegistroID,
		BeforeJSON:    data.DadosAnteriores,
		AfterJSON:     data.DadosNovos,
		IPAddress:     data.IPAddress,
		UserAgent:     data.UserAgent,
		Timestamp:     data.Timestamp,
	}
}

// fromAuditLogDomain converts a domain AuditLog entity to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLog) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	return &model.AuditLogModel{
		ID:              data.ID,
		AdminID:         data.AdminID,
		Acao:            data.Action,
		Descricao:       data.Description,
		TabelaAfetada:   data.AffectedTable,
		RegistroID:      data.RecordID,
		DadosAnteriores: data.BeforeJSON,
		DadosNovos:      data.AfterJSON,
		IPAddress:       data.IPAddress,
		UserAgent:       data.UserAgent,
		Timestamp:       data.Timestamp,
	}
}
