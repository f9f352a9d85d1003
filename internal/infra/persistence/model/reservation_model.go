package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel mirrors the 'reservas' table. Two partial unique indexes
// over rows WHERE status = 'confirmada' enforce one active reservation per
// user and one per table, closing the race between concurrent bookings.
type ReservationModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UsuarioID       uuid.UUID  `gorm:"column:usuario_id;type:uuid;not null;index:idx_reservas_usuario_ativa,unique,where:status = 'confirmada'"`
	MesaNumero      string     `gorm:"column:mesa_numero;type:varchar(10);not null;index:idx_reservas_mesa_ativa,unique,where:status = 'confirmada'"`
	MesaTipo        string     `gorm:"column:mesa_tipo;type:varchar(20);not null"`
	MesaCapacidade  int        `gorm:"column:mesa_capacidade;not null"`
	MesaLocalizacao string     `gorm:"column:mesa_localizacao;type:varchar(100);not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:confirmada"`
	DataReserva     time.Time  `gorm:"column:data_reserva;not null"`
	DataCancelam    *time.Time `gorm:"column:data_cancelamento"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservas"
}
