package service

import (
	"context"

	"github.com/google/uuid"
)

// AuditEntry describes one administrative action to be recorded. Before and
// After are serialized to JSON by the recorder when non-nil.
type AuditEntry struct {
	AdminID       uuid.UUID
	Action        string
	Description   string
	AffectedTable string
	RecordID      *uuid.UUID
	Before        any
	After         any
}

// AuditRecorder appends administrative actions to the immutable audit trail.
// Recording is best-effort: a failure is reported through logging and must
// never abort or roll back the mutation it documents, so Record returns no
// error. Requester IP and user agent are taken from the request metadata
// carried in ctx.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry)
}
