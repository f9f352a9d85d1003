package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'pagamentos' table. PIX payments keep their
// transfer breakdown and uploaded receipt name; card payments keep the
// installment plan. Either group is zero-valued for the other method.
type PaymentModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PedidoID      uuid.UUID  `gorm:"column:pedido_id;type:uuid;not null;index"`
	UsuarioID     uuid.UUID  `gorm:"column:usuario_id;type:uuid;not null;index"`
	FormaPgto     string     `gorm:"column:forma_pagamento;type:varchar(20);not null"`
	Valor         float64    `gorm:"type:numeric(10,2);not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:pendente"`
	PagamentosPix string     `gorm:"column:pagamentos_pix;type:text"`
	Comprovante   string     `gorm:"column:comprovante;type:varchar(255)"`
	Parcelas      int        `gorm:"column:parcelas;not null;default:0"`
	ValorParcela  float64    `gorm:"column:valor_parcela;type:numeric(10,2);not null;default:0"`
	DataPgto      time.Time  `gorm:"column:data_pagamento;not null"`
	DataConfirm   *time.Time `gorm:"column:data_confirmacao"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "pagamentos"
}
