// Package model contains the GORM table mappings for the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'usuarios' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NomeCompleto string    `gorm:"column:nome_completo;type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	SenhaHash    string    `gorm:"column:senha_hash;type:varchar(255);not null"`
	Descendencia string    `gorm:"type:varchar(20);not null"`
	Idade        int       `gorm:"not null"`
	Cidade       string    `gorm:"type:varchar(100);not null"`
	Ativo        bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "usuarios"
}
