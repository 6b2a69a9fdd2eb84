// Package model contains the GORM-specific structs mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string     `gorm:"type:varchar(255);not null"`
	Name           string     `gorm:"type:varchar(100)"`
	ProfilePicture string     `gorm:"type:varchar(512)"`
	PushToken      string     `gorm:"type:varchar(512)"`
	HomeLocationID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	HomeLocation *LocationModel `gorm:"foreignKey:HomeLocationID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
