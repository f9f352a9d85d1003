package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' table. CriadoPor tracks which admin
// created the account; seeded accounts carry NULL.
type AdminModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NomeCompleto string     `gorm:"column:nome_completo;type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	SenhaHash    string     `gorm:"column:senha_hash;type:varchar(255);not null"`
	NivelAcesso  string     `gorm:"column:nivel_acesso;type:varchar(20);not null;default:admin"`
	Ativo        bool       `gorm:"not null;default:true"`
	CriadoPor    *uuid.UUID `gorm:"column:criado_por;type:uuid"`
	UltimoLogin  *time.Time `gorm:"column:ultimo_login"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
