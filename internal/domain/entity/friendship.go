// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Friendship is a directed edge meaning "UserID has added FriendID as a friend".
// The reverse edge is a separate row and is never implied. Self-edges are
// rejected by the workflow layer before they reach the store.
type Friendship struct {
	UserID    uuid.UUID `json:"user_id"`   // The user who added the friend.
	FriendID  uuid.UUID `json:"friend_id"` // The user who was added.
	CreatedAt time.Time `json:"created_at"`
}

// Friend is a friend of the viewer joined with their public profile,
// as produced by the friend-listing and proximity queries.
type Friend struct {
	UserID         uuid.UUID  `json:"user_id"`
	Name           string     `json:"name"`
	ProfilePicture string     `json:"profile_picture"`
	HomeLocationID *uuid.UUID `json:"home_location_id,omitempty"` // Nil when the friend has no home set.
}
