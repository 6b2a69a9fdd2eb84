// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wander/internal/domain/entity"
	"wander/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for location-related database operations.
type LocationRepository interface {
	// CreateLocation persists a new location. Its identity is immutable afterwards.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindLocationsByIDs retrieves the locations for the given IDs in one query.
	// Missing IDs are simply absent from the result.
	FindLocationsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Location, error)

	// ListLocations retrieves all locations ordered by name.
	ListLocations(ctx context.Context) ([]*entity.Location, error)

	// AggregateRating computes the average rating and review count for a location.
	AggregateRating(ctx context.Context, locationID uuid.UUID) (*entity.LocationRating, error)
}
