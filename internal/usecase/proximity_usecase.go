package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FriendDistance is a friend together with the distance in miles between the
// viewer's home and the friend's home
type FriendDistance struct {
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profile_picture"`
	HomeLocationID uuid.UUID `json:"home_location_id"`
	HomeName       string    `json:"home_name"`
	DistanceMiles  float64   `json:"distance_miles"`
}

// ProximityUsecase defines the interface for friend proximity use cases
type ProximityUsecase interface {
	// FriendsByDistance lists the viewer's friends ordered by distance from
	// the viewer's home, nearest first. Friends without a home location are
	// omitted. Read failures degrade to an empty list.
	FriendsByDistance(ctx context.Context, viewerID uuid.UUID) ([]*FriendDistance, error)
}
