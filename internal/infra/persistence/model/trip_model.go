package model

import (
	"time"

	"github.com/google/uuid"
)

// TripModel mirrors the 'trips' table. Upcoming/previous classification is
// computed at read time and deliberately has no column here.
type TripModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate  time.Time `gorm:"not null"`
	EndDate    time.Time `gorm:"not null;index"`
	CreatedAt  time.Time

	Location *LocationModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (TripModel) TableName() string {
	return "trips"
}

// TripMemberModel mirrors the 'user_trips' membership table.
type TripMemberModel struct {
	TripID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	JoinedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (TripMemberModel) TableName() string {
	return "user_trips"
}
