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

type tripService struct {
	tripRepo       repository.TripRepository
	locationRepo   repository.LocationRepository
	reviewRepo     repository.ReviewRepository
	txManager      repository.TransactionManager
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// TripServiceParams holds dependencies for TripService, injected by Fx.
type TripServiceParams struct {
	fx.In

	TripRepo       repository.TripRepository
	LocationRepo   repository.LocationRepository
	ReviewRepo     repository.ReviewRepository
	TxManager      repository.TransactionManager
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewTripService creates a new trip planning service instance
func NewTripService(params TripServiceParams) usecase.TripUsecase {
	return &tripService{
		tripRepo:       params.TripRepo,
		locationRepo:   params.LocationRepo,
		reviewRepo:     params.ReviewRepo,
		txManager:      params.TxManager,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// CreateTrip creates a trip and enrolls the creator in one atomic step.
// A trip without its creator enrolled must never be observable, so both
// writes share one transaction.
func (s *tripService) CreateTrip(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateTripInput) (*entity.Trip, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerrors.ErrInvalidDateRange
	}

	if _, err := s.locationRepo.FindLocationByID(ctx, input.LocationID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	trip := &entity.Trip{
		LocationID: input.LocationID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txTripRepo := factory.NewTripRepository()

		if err := txTripRepo.CreateTrip(ctx, trip); err != nil {
			return err
		}

		return txTripRepo.AddMember(ctx, &entity.TripMember{
			TripID: trip.ID,
			UserID: creatorID,
		})
	})
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// JoinTrip enrolls a user in an existing trip
func (s *tripService) JoinTrip(ctx context.Context, userID, tripID uuid.UUID) error {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return domainerrors.ErrTripNotFound
		}

		return errors.Wrap(err, "failed to find trip by id")
	}

	member := &entity.TripMember{
		TripID: tripID,
		UserID: userID,
	}

	if err := s.tripRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateTripMember) {
			return domainerrors.ErrAlreadyTripMember
		}
		if errors.Is(err, repository.ErrTripNotFound) {
			return domainerrors.ErrTripNotFound
		}

		return err
	}

	event := &service.BookingEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventType: service.EventTripMemberJoined,
		TripID:    trip.ID.String(),
		StartDate: trip.StartDate.Format(time.RFC3339),
		EndDate:   trip.EndDate.Format(time.RFC3339),
	}
	if err := s.eventPublisher.PublishBookingEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish trip join event",
			slog.String("trip_id", trip.ID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// LeaveTrip removes a user's enrollment from a trip
func (s *tripService) LeaveTrip(ctx context.Context, userID, tripID uuid.UUID) error {
	if err := s.tripRepo.RemoveMember(ctx, tripID, userID); err != nil {
		if errors.Is(err, repository.ErrTripMemberNotFound) {
			return domainerrors.ErrNotTripMember
		}

		return err
	}

	return nil
}

// ListTrips lists the user's trips split into upcoming and previous.
// The split is computed against the current date on every call; a trip
// crosses over by itself once its end date passes.
func (s *tripService) ListTrips(ctx context.Context, userID uuid.UUID) (*usecase.TripList, error) {
	trips, err := s.tripRepo.FindTripsByMember(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find trips by member")
	}

	locationIDs := make([]uuid.UUID, 0, len(trips))
	for _, trip := range trips {
		locationIDs = append(locationIDs, trip.LocationID)
	}

	locations, err := s.locationRepo.FindLocationsByIDs(ctx, locationIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find trip locations")
	}

	now := s.now()
	list := &usecase.TripList{
		Upcoming: make([]*usecase.TripView, 0),
		Previous: make([]*usecase.TripView, 0),
	}

	for _, trip := range trips {
		view := &usecase.TripView{
			Trip:     trip,
			Location: locations[trip.LocationID],
		}

		if !trip.IsPrevious(now) {
			list.Upcoming = append(list.Upcoming, view)

			continue
		}

		// Only previous trips can carry a review; surface whether one
		// already exists so the client can offer the review form once.
		reviewed, err := s.reviewRepo.HasReview(ctx, userID, trip.LocationID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check review existence")
		}
		view.Reviewed = reviewed

		list.Previous = append(list.Previous, view)
	}

	return list, nil
}

// ListMembers lists the members of a trip
func (s *tripService) ListMembers(ctx context.Context, tripID uuid.UUID) ([]*entity.Friend, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to find trip by id")
	}

	members, err := s.tripRepo.FindMembers(ctx, tripID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find trip members")
	}

	return members, nil
}

// CreateReview records a rating for a location the user has travelled to.
// Eligibility requires a previous trip to the location.
func (s *tripService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrInvalidRating
	}

	trips, err := s.tripRepo.FindTripsByMember(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find trips by member")
	}

	now := s.now()
	eligible := false
	for _, trip := range trips {
		if trip.LocationID == input.LocationID && trip.IsPrevious(now) {
			eligible = true

			break
		}
	}
	if !eligible {
		return nil, domainerrors.ErrForbidden.WrapMessage("no previous trip to this location")
	}

	review := &entity.Review{
		UserID:     userID,
		LocationID: input.LocationID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// GenerateInviteQR renders a QR code inviting others to join the trip
func (s *tripService) GenerateInviteQR(ctx context.Context, tripID uuid.UUID) ([]byte, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to find trip by id")
	}

	qrBytes, err := s.qrcodeService.GenerateTripInviteQR(tripID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate trip invite qr")
	}

	return qrBytes, nil
}

// JoinByInviteQR parses a scanned invite and enrolls the user in the trip
func (s *tripService) JoinByInviteQR(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Trip, error) {
	tripID, err := s.qrcodeService.ParseTripInviteQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid trip invite")
	}

	if err := s.JoinTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find trip by id")
	}

	return trip, nil
}
