package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit action tags written by the administrative surface.
const (
	AuditActionLogin             = "LOGIN"
	AuditActionLogout            = "LOGOUT"
	AuditActionCreateAdmin       = "CREATE_ADMIN"
	AuditActionActivateUser      = "ACTIVATE_USER"
	AuditActionDeactivateUser    = "DEACTIVATE_USER"
	AuditActionUpdateOrderStatus = "UPDATE_PEDIDO_STATUS"
	AuditActionCancelReservation = "CANCEL_RESERVA"
	AuditActionConfirmPayment    = "CONFIRM_PAGAMENTO"
)

// AuditLog is an immutable record of one administrative action. Rows are
// only ever appended; there is no update or delete path.
type AuditLog struct {
	ID            uuid.UUID
	AdminID       uuid.UUID
	Action        string
	Description   string
	AffectedTable string     // Storage table the action touched; empty for pure auth events.
	RecordID      *uuid.UUID // Affected row, when applicable.
	BeforeJSON    string     // Snapshot of the record before the mutation, serialized as JSON.
	AfterJSON     string     // Snapshot after the mutation.
	IPAddress     string
	UserAgent     string
	Timestamp     time.Time
}
