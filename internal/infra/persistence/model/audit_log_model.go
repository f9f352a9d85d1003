package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the 'audit_logs' table. Rows are append-only.
type AuditLogModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AdminID         uuid.UUID  `gorm:"column:admin_id;type:uuid;not null;index"`
	Acao            string     `gorm:"column:acao;type:varchar(50);not null;index"`
	Descricao       string     `gorm:"column:descricao;type:text"`
	TabelaAfetada   string     `gorm:"column:tabela_afetada;type:varchar(50)"`
	RegistroID      *uuid.UUID `gorm:"column:registro_id;type:uuid"`
	DadosAnteriores string     `gorm:"column:dados_anteriores;type:text"`
	DadosNovos      string     `gorm:"column:dados_novos;type:text"`
	IPAddress       string     `gorm:"column:ip_address;type:varchar(45)"`
	UserAgent       string     `gorm:"column:user_agent;type:varchar(255)"`
	Timestamp       time.Time  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
