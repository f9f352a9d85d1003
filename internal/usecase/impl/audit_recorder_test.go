package impl

import (
	"context"
	"testing"

	deliverycontext "encontro/internal/delivery/context"
	"encontro/internal/domain/entity"
	"encontro/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuditRecorder(t *testing.T) (service.AuditRecorder, *mockAuditLogRepository) {
	t.Helper()

	auditLogRepo := &mockAuditLogRepository{}
	recorder := NewAuditRecorder(AuditRecorderParams{
		AuditLogRepo: auditLogRepo,
		Logger:       discardLogger(),
	})

	return recorder, auditLogRepo
}

func TestAuditRecorder_Record(t *testing.T) {
	recorder, auditLogRepo := createTestAuditRecorder(t)
	adminID := uuid.New()
	recordID := uuid.New()

	ctx := deliverycontext.WithRequestMeta(context.Background(), deliverycontext.RequestMeta{
		IP:        "10.0.0.7",
		UserAgent: "encontro-test/1.0",
	})

	var written *entity.AuditLog
	auditLogRepo.On("Create", ctx, mock.AnythingOfType("*entity.AuditLog")).
		Run(func(args mock.Arguments) {
			written = args.Get(1).(*entity.AuditLog)
		}).
		Return(nil)

	recorder.Record(ctx, service.AuditEntry{
		AdminID:       adminID,
		Action:        entity.AuditActionConfirmPayment,
		Description:   "Pagamento PIX confirmado",
		AffectedTable: "pagamentos",
		RecordID:      &recordID,
		Before:        map[string]any{"status": "pendente"},
		After:         map[string]any{"status": "confirmado"},
	})

	require.NotNil(t, written)
	assert.Equal(t, adminID, written.AdminID)
	assert.Equal(t, entity.AuditActionConfirmPayment, written.Action)
	assert.Equal(t, "10.0.0.7", written.IPAddress)
	assert.Equal(t, "encontro-test/1.0", written.UserAgent)
	assert.JSONEq(t, `{"status":"pendente"}`, written.BeforeJSON)
	assert.JSONEq(t, `{"status":"confirmado"}`, written.AfterJSON)
	assert.False(t, written.Timestamp.IsZero())
}

func TestAuditRecorder_Record_NilSnapshotsStayEmpty(t *testing.T) {
	recorder, auditLogRepo := createTestAuditRecorder(t)
	ctx := context.Background()

	var written *entity.AuditLog
	auditLogRepo.On("Create", ctx, mock.AnythingOfType("*entity.AuditLog")).
		Run(func(args mock.Arguments) {
			written = args.Get(1).(*entity.AuditLog)
		}).
		Return(nil)

	recorder.Record(ctx, service.AuditEntry{
		AdminID:     uuid.New(),
		Action:      entity.AuditActionLogout,
		Description: "Logout realizado",
	})

	require.NotNil(t, written)
	assert.Empty(t, written.BeforeJSON)
	assert.Empty(t, written.AfterJSON)
	assert.Empty(t, written.IPAddress)
}

func TestAuditRecorder_Record_SwallowsRepositoryError(t *testing.T) {
	recorder, auditLogRepo := createTestAuditRecorder(t)
	ctx := context.Background()

	auditLogRepo.On("Create", ctx, mock.AnythingOfType("*entity.AuditLog")).
		Return(errors.New("connection reset"))

	// Must not panic; auditing is best-effort.
	recorder.Record(ctx, service.AuditEntry{
		AdminID:     uuid.New(),
		Action:      entity.AuditActionLogin,
		Description: "Login realizado",
	})

	auditLogRepo.AssertExpectations(t)
}
