package usecase

import (
	"context"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// AddLocationInput represents the input for adding a new location
type AddLocationInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Country     string `json:"country"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// LocationDetail is a location joined with its aggregate rating
type LocationDetail struct {
	Location *entity.Location       `json:"location"`
	Rating   *entity.LocationRating `json:"rating"`
	Reviews  []*entity.Review       `json:"reviews,omitempty"`
}

// LocationUsecase defines the interface for location management use cases
type LocationUsecase interface {
	// AddLocation creates a new location from string coordinates.
	// Malformed coordinates fail hard with ErrInvalidCoordinate.
	AddLocation(ctx context.Context, input *AddLocationInput) (*entity.Location, error)

	// GetLocation retrieves a location with its aggregate rating and reviews
	GetLocation(ctx context.Context, locationID uuid.UUID) (*LocationDetail, error)

	// ListLocations retrieves all locations ordered by name
	ListLocations(ctx context.Context) ([]*entity.Location, error)
}
