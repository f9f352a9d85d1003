package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "encontro/internal/delivery/context"
	"encontro/internal/domain/entity"
	"encontro/internal/domain/repository"
	"encontro/internal/domain/service"

	"go.uber.org/fx"
)

// auditRecorder implements the service.AuditRecorder interface. Recording is
// best-effort: failures are logged and swallowed so an audit problem never
// rolls back the administrative action it documents.
type auditRecorder struct {
	auditLogRepo repository.AuditLogRepository
	logger       *slog.Logger
}

// AuditRecorderParams holds dependencies for auditRecorder, injected by Fx.
type AuditRecorderParams struct {
	fx.In

	AuditLogRepo repository.AuditLogRepository
	Logger       *slog.Logger
}

// NewAuditRecorder is the constructor for auditRecorder.
func NewAuditRecorder(params AuditRecorderParams) service.AuditRecorder {
	return &auditRecorder{
		auditLogRepo: params.AuditLogRepo,
		logger:       params.Logger,
	}
}

// Record appends one administrative action to the audit trail. Client IP and
// user agent come from the request metadata carried in ctx.
func (rec *auditRecorder) Record(ctx context.Context, entry service.AuditEntry) {
	meta := deliverycontext.GetRequestMeta(ctx)
	logger := deliverycontext.GetLoggerOrDefault(ctx, rec.logger)

	log := &entity.AuditLog{
		AdminID:       entry.AdminID,
		Action:        entry.Action,
		Description:   entry.Description,
		AffectedTable: entry.AffectedTable,
		RecordID:      entry.RecordID,
		BeforeJSON:    marshalSnapshot(logger, entry.Before),
		AfterJSON:     marshalSnapshot(logger, entry.After),
		IPAddress:     meta.IP,
		UserAgent:     meta.UserAgent,
		Timestamp:     time.Now(),
	}

	if err := rec.auditLogRepo.Create(ctx, log); err != nil {
		logger.Error("Failed to write audit log",
			slog.String("action", entry.Action),
			slog.Any("adminID", entry.AdminID),
			slog.Any("error", err))
	}
}

func marshalSnapshot(logger *slog.Logger, snapshot any) string {
	if snapshot == nil {
		return ""
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Warn("Failed to serialize audit snapshot", slog.Any("error", err))

		return ""
	}

	return string(data)
}
