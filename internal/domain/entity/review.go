// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds. Ratings outside this range are rejected by the workflow.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating plus comment a user leaves for a location, meaningful
// once the user has a previous trip there. Duplicates are not hard-blocked;
// the trip workflow only surfaces whether a review already exists.
type Review struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	LocationID uuid.UUID `json:"location_id"`
	Rating     int       `json:"rating"` // MinRating..MaxRating inclusive.
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
