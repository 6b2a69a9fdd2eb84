// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wander/internal/domain/entity"
	"wander/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for trip persistence.
var (
	// ErrTripNotFound is returned when a trip is not found.
	ErrTripNotFound = errors.New("trip not found")
	// ErrDuplicateTripMember is returned when the user is already enrolled in the trip.
	ErrDuplicateTripMember = errors.New("user already enrolled in trip")
	// ErrTripMemberNotFound is returned when the membership row does not exist.
	ErrTripMemberNotFound = errors.New("trip membership not found")
)

// TripRepository defines the interface for trips and trip membership.
type TripRepository interface {
	// CreateTrip persists a new trip.
	CreateTrip(ctx context.Context, trip *entity.Trip) error

	// FindTripByID retrieves a trip by its unique ID.
	FindTripByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)

	// FindTripsByMember retrieves every trip the user is enrolled in,
	// ordered by start date.
	FindTripsByMember(ctx context.Context, userID uuid.UUID) ([]*entity.Trip, error)

	// AddMember enrolls a user in a trip.
	AddMember(ctx context.Context, member *entity.TripMember) error

	// RemoveMember removes a user's enrollment from a trip.
	RemoveMember(ctx context.Context, tripID, userID uuid.UUID) error

	// FindMembers retrieves the members of a trip joined with their public profile.
	FindMembers(ctx context.Context, tripID uuid.UUID) ([]*entity.Friend, error)
}
