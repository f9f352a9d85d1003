package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'pedidos' table. The partial unique index on
// (usuario_id) WHERE status = 'pendente' makes "one pending order per user"
// a database guarantee rather than an application-level check.
type OrderModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UsuarioID    uuid.UUID  `gorm:"column:usuario_id;type:uuid;not null;index:idx_pedidos_usuario_pendente,unique,where:status = 'pendente'"`
	TotalCamisas int        `gorm:"column:total_camisas;not null"`
	ValorTotal   float64    `gorm:"column:valor_total;type:numeric(10,2);not null"`
	ValorUnit    float64    `gorm:"column:valor_unitario;type:numeric(10,2);not null"`
	Camisas      string     `gorm:"column:camisas;type:text;not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:pendente;index"`
	DataPedido   time.Time  `gorm:"column:data_pedido;not null"`
	DataPgto     *time.Time `gorm:"column:data_pagamento"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "pedidos"
}
