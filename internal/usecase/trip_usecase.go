package usecase

import (
	"context"
	"time"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTripInput represents the input for creating a trip
type CreateTripInput struct {
	LocationID uuid.UUID `json:"location_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// TripView is a trip joined with its destination and the viewer's review state
type TripView struct {
	Trip     *entity.Trip     `json:"trip"`
	Location *entity.Location `json:"location,omitempty"`
	Reviewed bool             `json:"reviewed"`
}

// TripList splits the viewer's trips into upcoming and previous,
// classified against the current date at read time
type TripList struct {
	Upcoming []*TripView `json:"upcoming"`
	Previous []*TripView `json:"previous"`
}

// CreateReviewInput represents the input for reviewing a location
type CreateReviewInput struct {
	LocationID uuid.UUID `json:"location_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
}

// TripUsecase defines the interface for trip planning use cases
type TripUsecase interface {
	// CreateTrip creates a trip and enrolls the creator in one atomic step
	CreateTrip(ctx context.Context, creatorID uuid.UUID, input *CreateTripInput) (*entity.Trip, error)

	// JoinTrip enrolls a user in an existing trip
	JoinTrip(ctx context.Context, userID, tripID uuid.UUID) error

	// LeaveTrip removes a user's enrollment from a trip
	LeaveTrip(ctx context.Context, userID, tripID uuid.UUID) error

	// ListTrips lists the user's trips split into upcoming and previous
	ListTrips(ctx context.Context, userID uuid.UUID) (*TripList, error)

	// ListMembers lists the members of a trip
	ListMembers(ctx context.Context, tripID uuid.UUID) ([]*entity.Friend, error)

	// CreateReview records a rating for a location the user has travelled to
	CreateReview(ctx context.Context, userID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)

	// GenerateInviteQR renders a QR code inviting others to join the trip
	GenerateInviteQR(ctx context.Context, tripID uuid.UUID) ([]byte, error)

	// JoinByInviteQR parses a scanned invite and enrolls the user in the trip
	JoinByInviteQR(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Trip, error)
}
