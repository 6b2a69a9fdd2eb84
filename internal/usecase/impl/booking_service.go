package impl

import (
	"context"
	"log/slog"
	"time"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/domain/service"
	"wander/internal/usecase"

	deliverycontext "wander/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type bookingService struct {
	rentalRepo     repository.RentalRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	RentalRepo     repository.RentalRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewBookingService creates a new booking workflow service instance
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		rentalRepo:     params.RentalRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// CreateRental creates a new rental listing owned by the given user
func (s *bookingService) CreateRental(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateRentalInput) (*entity.Rental, error) {
	if input.Address == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("address is required")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerrors.ErrInvalidDateRange
	}

	rental := &entity.Rental{
		OwnerID:   ownerID,
		Address:   input.Address,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	if err := s.rentalRepo.CreateRental(ctx, rental); err != nil {
		return nil, err
	}

	return rental, nil
}

// GetRental retrieves a single rental listing
func (s *bookingService) GetRental(ctx context.Context, rentalID uuid.UUID) (*entity.Rental, error) {
	rental, err := s.rentalRepo.FindRentalByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return nil, domainerrors.ErrRentalNotFound
		}

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	return rental, nil
}

// ListOpenRentals lists the rentals still open for requests
func (s *bookingService) ListOpenRentals(ctx context.Context) ([]*entity.Rental, error) {
	rentals, err := s.rentalRepo.FindOpenRentals(ctx, s.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find open rentals")
	}

	return rentals, nil
}

// ListRentalsByOwner lists the rentals an owner has created
func (s *bookingService) ListRentalsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Rental, error) {
	rentals, err := s.rentalRepo.FindRentalsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find rentals by owner")
	}

	return rentals, nil
}

// SubmitRentalRequest submits a request against an open rental.
// Submitted is the only request state; there is no accept or reject
// transition, the owner just sees the pending request.
func (s *bookingService) SubmitRentalRequest(ctx context.Context, requesterID uuid.UUID, input *usecase.SubmitRequestInput) (*entity.RentalRequest, error) {
	rental, err := s.rentalRepo.FindRentalByID(ctx, input.RentalID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return nil, domainerrors.ErrRentalNotFound
		}

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	if !rental.IsOpen(s.now()) {
		return nil, domainerrors.ErrRentalClosed
	}
	if rental.OwnerID == requesterID {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot request own rental")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerrors.ErrInvalidDateRange
	}

	request := &entity.RentalRequest{
		RequesterID: requesterID,
		OwnerID:     rental.OwnerID,
		Address:     rental.Address,
		Comment:     input.Comment,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	if err := s.rentalRepo.CreateRentalRequest(ctx, request); err != nil {
		return nil, err
	}

	// The event fans out to the worker, which pushes a notification to the
	// owner. Publishing is best effort: the request is already persisted.
	event := &service.BookingEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventType:   service.EventRentalRequestSubmitted,
		RentalReqID: request.ID.String(),
		RequesterID: requesterID.String(),
		OwnerID:     rental.OwnerID.String(),
		Address:     rental.Address,
		StartDate:   request.StartDate.Format(time.RFC3339),
		EndDate:     request.EndDate.Format(time.RFC3339),
	}
	if err := s.eventPublisher.PublishBookingEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish booking event",
			slog.String("rental_request_id", request.ID.String()),
			slog.Any("error", err),
		)
	}

	return request, nil
}

// ListRequestsForOwner lists the requests addressed to an owner
func (s *bookingService) ListRequestsForOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.RentalRequest, error) {
	requests, err := s.rentalRepo.FindRequestsForOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find requests for owner")
	}

	return requests, nil
}

// ListRequestsByRequester lists the requests a user has submitted
func (s *bookingService) ListRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.RentalRequest, error) {
	requests, err := s.rentalRepo.FindRequestsByRequester(ctx, requesterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find requests by requester")
	}

	return requests, nil
}
