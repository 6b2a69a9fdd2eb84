// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a traveller account.
// The credential hash never leaves the persistence and auth layers.
type User struct {
	ID             uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email          string     // The user's primary contact email, used as the login identifier.
	Name           string     // The user's display name.
	ProfilePicture string     // Reference (URL or object key) to the user's profile picture.
	PushToken      string     // Device push token for owner notifications. Empty when the user has none registered.
	HomeLocationID *uuid.UUID // The user's home location. Nil until the user marks a home.
	CreatedAt      time.Time  // Timestamp of when this user account was created.
	UpdatedAt      time.Time  // Timestamp of the last modification to this user's data.
}

// HasHome reports whether the user has marked a home location.
func (u *User) HasHome() bool {
	return u != nil && u.HomeLocationID != nil
}
