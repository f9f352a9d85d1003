package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gormTag(t *testing.T, model any, field string) string {
	t.Helper()

	structField, ok := reflect.TypeOf(model).Elem().FieldByName(field)
	require.True(t, ok, "field %s not found", field)

	return structField.Tag.Get("gorm")
}

func TestAll_CoversEveryPersistedModel(t *testing.T) {
	var names []string
	for _, m := range All() {
		names = append(names, reflect.TypeOf(m).Elem().Name())
	}

	assert.ElementsMatch(t, []string{
		"UserModel",
		"AdminModel",
		"OrderModel",
		"PaymentModel",
		"ReservationModel",
		"AuditLogModel",
	}, names)
}

// The uniqueness rules are enforced by partial unique indexes created at
// migration time. These tags are the source of truth for that schema, so a
// drive-by edit that drops one must fail here.
func TestModels_DeclarePartialUniqueIndexes(t *testing.T) {
	tests := []struct {
		name  string
		model any
		field string
		index string
		where string
	}{
		{
			name:  "one pending order per user",
			model: &OrderModel{},
			field: "UsuarioID",
			index: "idx_pedidos_usuario_pendente",
			where: "where:status = 'pendente'",
		},
		{
			name:  "one active reservation per user",
			model: &ReservationModel{},
			field: "UsuarioID",
			index: "idx_reservas_usuario_ativa",
			where: "where:status = 'confirmada'",
		},
		{
			name:  "one active reservation per table",
			model: &ReservationModel{},
			field: "MesaNumero",
			index: "idx_reservas_mesa_ativa",
			where: "where:status = 'confirmada'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := gormTag(t, tt.model, tt.field)
			assert.Contains(t, tag, tt.index)
			assert.Contains(t, tag, "unique")
			assert.True(t, strings.Contains(tag, tt.where), "tag %q missing %q", tag, tt.where)
		})
	}
}
