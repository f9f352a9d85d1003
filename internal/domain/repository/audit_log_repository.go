package repository

import (
	"context"

	"encontro/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogListFilter narrows and pages the audit trail listing.
type AuditLogListFilter struct {
	Action  string
	AdminID *uuid.UUID
	Page    int
	PerPage int
}

// AuditLogRepository persists the administrative audit trail. Rows are
// append-only; there is deliberately no update or delete operation.
type AuditLogRepository interface {
	// Create appends one audit record.
	Create(ctx context.Context, log *entity.AuditLog) error

	// List returns a page of audit records matching the filter together
	// with the total match count, most recent first.
	List(ctx context.Context, filter AuditLogListFilter) ([]*entity.AuditLog, int64, error)
}
