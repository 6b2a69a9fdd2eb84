package model

import (
	"time"

	"github.com/google/uuid"
)

// RentalModel mirrors the 'rentals' table.
type RentalModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Address   string    `gorm:"type:varchar(512);not null"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null"`
	CreatedAt time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (RentalModel) TableName() string {
	return "rentals"
}

// RentalRequestModel mirrors the 'rental_requests' table. Submitted is the
// only state; no approval columns exist.
type RentalRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Address     string    `gorm:"type:varchar(512);not null"`
	Comment     string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	CreatedAt   time.Time

	Requester *UserModel `gorm:"foreignKey:RequesterID"`
	Owner     *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (RentalRequestModel) TableName() string {
	return "rental_requests"
}
