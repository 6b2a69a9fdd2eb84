package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table. Name is the natural key.
type ActivityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

// UserActivityModel mirrors the 'user_activities' join table. The composite
// primary key keeps a user joined to an activity at most once.
type UserActivityModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActivityName string    `gorm:"type:varchar(100);primaryKey"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserActivityModel) TableName() string {
	return "user_activities"
}
