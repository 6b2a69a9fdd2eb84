// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a shared journey to a location over a date range. Whether a trip is
// "upcoming" or "previous" is computed from the current date at read time and
// never stored.
type Trip struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"location_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsPrevious reports whether the trip ended strictly before now.
// A trip ending exactly at now still counts as upcoming.
func (t *Trip) IsPrevious(now time.Time) bool {
	return t.EndDate.Before(now)
}

// TripMember links a user to a trip they are enrolled in.
type TripMember struct {
	TripID   uuid.UUID `json:"trip_id"`
	UserID   uuid.UUID `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
