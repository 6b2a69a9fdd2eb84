// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a named pastime users can participate in, e.g., "hiking".
// The name is the natural key: two activities never share a name.
type Activity struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserActivity joins a user to an activity they participate in.
// A user is joined to a given activity at most once.
type UserActivity struct {
	UserID       uuid.UUID `json:"user_id"`
	ActivityName string    `json:"activity_name"`
	CreatedAt    time.Time `json:"created_at"`
}
