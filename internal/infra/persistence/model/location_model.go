package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table. A location's identity is
// immutable once created.
type LocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Country     string    `gorm:"type:varchar(100)"`
	Latitude    float64   `gorm:"type:decimal(9,6);not null"`
	Longitude   float64   `gorm:"type:decimal(9,6);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
