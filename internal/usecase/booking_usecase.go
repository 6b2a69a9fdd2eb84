package usecase

import (
	"context"
	"time"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRentalInput represents the input for creating a rental listing
type CreateRentalInput struct {
	Address   string    `json:"address"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// SubmitRequestInput represents the input for submitting a rental request
type SubmitRequestInput struct {
	RentalID  uuid.UUID `json:"rental_id"`
	Comment   string    `json:"comment"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// BookingUsecase defines the interface for the rental booking workflow
type BookingUsecase interface {
	// CreateRental creates a new rental listing owned by the given user
	CreateRental(ctx context.Context, ownerID uuid.UUID, input *CreateRentalInput) (*entity.Rental, error)

	// GetRental retrieves a single rental listing
	GetRental(ctx context.Context, rentalID uuid.UUID) (*entity.Rental, error)

	// ListOpenRentals lists the rentals still open for requests
	ListOpenRentals(ctx context.Context) ([]*entity.Rental, error)

	// ListRentalsByOwner lists the rentals an owner has created
	ListRentalsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Rental, error)

	// SubmitRentalRequest submits a request against an open rental.
	// The request stays in its single submitted state; the owner is notified.
	SubmitRentalRequest(ctx context.Context, requesterID uuid.UUID, input *SubmitRequestInput) (*entity.RentalRequest, error)

	// ListRequestsForOwner lists the requests addressed to an owner
	ListRequestsForOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.RentalRequest, error)

	// ListRequestsByRequester lists the requests a user has submitted
	ListRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.RentalRequest, error)
}
