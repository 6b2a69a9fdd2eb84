// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"wander/internal/domain/entity"
	"wander/internal/errors"

	"github.com/google/uuid"
)

// ErrRentalNotFound is returned when a rental listing is not found.
var ErrRentalNotFound = errors.New("rental not found")

// RentalRepository defines the interface for rental listings and requests.
type RentalRepository interface {
	// CreateRental persists a new rental listing.
	CreateRental(ctx context.Context, rental *entity.Rental) error

	// FindRentalByID retrieves a rental listing by its unique ID.
	FindRentalByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error)

	// FindOpenRentals retrieves listings whose start date lies after the given instant,
	// ordered by start date.
	FindOpenRentals(ctx context.Context, after time.Time) ([]*entity.Rental, error)

	// FindRentalsByOwner retrieves all listings of an owner.
	FindRentalsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Rental, error)

	// CreateRentalRequest persists a new rental request in its only state, submitted.
	CreateRentalRequest(ctx context.Context, request *entity.RentalRequest) error

	// FindRequestsForOwner retrieves the pending requests addressed to an owner,
	// newest first.
	FindRequestsForOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.RentalRequest, error)

	// FindRequestsByRequester retrieves the requests a user has submitted, newest first.
	FindRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.RentalRequest, error)
}
