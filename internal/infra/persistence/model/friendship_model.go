package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipModel mirrors the 'user_friends' table: the directed edge
// "UserID has added FriendID". The composite primary key makes duplicate
// edges a unique-constraint violation at the database level.
type FriendshipModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FriendID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time

	Friend *UserModel `gorm:"foreignKey:FriendID"`
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "user_friends"
}
