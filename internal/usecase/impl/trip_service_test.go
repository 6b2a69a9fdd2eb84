package impl

import (
	"context"
	"testing"
	"time"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/domain/service"
	mockrepo "wander/internal/mocks/repository"
	mockservice "wander/internal/mocks/service"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tripServiceMocks struct {
	tripRepo       *mockrepo.MockTripRepository
	locationRepo   *mockrepo.MockLocationRepository
	reviewRepo     *mockrepo.MockReviewRepository
	txManager      *mockrepo.MockTransactionManager
	qrcodeService  *mockservice.MockQRCodeService
	eventPublisher *mockservice.MockEventPublisher
}

func newTripService(t *testing.T, now time.Time) (*tripService, *tripServiceMocks) {
	mocks := &tripServiceMocks{
		tripRepo:       mockrepo.NewMockTripRepository(t),
		locationRepo:   mockrepo.NewMockLocationRepository(t),
		reviewRepo:     mockrepo.NewMockReviewRepository(t),
		txManager:      mockrepo.NewMockTransactionManager(t),
		qrcodeService:  mockservice.NewMockQRCodeService(t),
		eventPublisher: mockservice.NewMockEventPublisher(t),
	}

	svc := NewTripService(TripServiceParams{
		TripRepo:       mocks.tripRepo,
		LocationRepo:   mocks.locationRepo,
		ReviewRepo:     mocks.reviewRepo,
		TxManager:      mocks.txManager,
		QRCodeService:  mocks.qrcodeService,
		EventPublisher: mocks.eventPublisher,
		Logger:         discardLogger(),
	}).(*tripService)
	svc.now = func() time.Time { return now }

	return svc, mocks
}

func TestTripService_CreateTrip(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New()
	locationID := uuid.New()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates trip and enrolls creator in one transaction", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.locationRepo.EXPECT().FindLocationByID(ctx, locationID).
			Return(&entity.Location{ID: locationID, Name: "Lisbon"}, nil)

		txTripRepo := mockrepo.NewMockTripRepository(t)
		factory := mockrepo.NewMockRepositoryFactory(t)
		factory.EXPECT().NewTripRepository().Return(txTripRepo)

		txTripRepo.EXPECT().CreateTrip(ctx, mock.MatchedBy(func(trip *entity.Trip) bool {
			return trip.LocationID == locationID
		})).Return(nil)
		txTripRepo.EXPECT().AddMember(ctx, mock.MatchedBy(func(member *entity.TripMember) bool {
			return member.UserID == creatorID
		})).Return(nil)

		mocks.txManager.EXPECT().Execute(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			})

		trip, err := svc.CreateTrip(ctx, creatorID, &usecase.CreateTripInput{
			LocationID: locationID,
			StartDate:  now.AddDate(0, 1, 0),
			EndDate:    now.AddDate(0, 1, 7),
		})
		require.NoError(t, err)
		assert.Equal(t, locationID, trip.LocationID)
	})

	t.Run("rolled back transaction surfaces the error", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.locationRepo.EXPECT().FindLocationByID(ctx, locationID).
			Return(&entity.Location{ID: locationID}, nil)

		txTripRepo := mockrepo.NewMockTripRepository(t)
		factory := mockrepo.NewMockRepositoryFactory(t)
		factory.EXPECT().NewTripRepository().Return(txTripRepo)

		txTripRepo.EXPECT().CreateTrip(ctx, mock.Anything).Return(nil)
		txTripRepo.EXPECT().AddMember(ctx, mock.Anything).
			Return(domainerrors.ErrTransactionFailed)

		mocks.txManager.EXPECT().Execute(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			})

		_, err := svc.CreateTrip(ctx, creatorID, &usecase.CreateTripInput{
			LocationID: locationID,
			StartDate:  now.AddDate(0, 1, 0),
			EndDate:    now.AddDate(0, 1, 7),
		})
		assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	})

	t.Run("rejects unknown location", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.locationRepo.EXPECT().FindLocationByID(ctx, locationID).
			Return(nil, repository.ErrLocationNotFound)

		_, err := svc.CreateTrip(ctx, creatorID, &usecase.CreateTripInput{
			LocationID: locationID,
			StartDate:  now,
			EndDate:    now.AddDate(0, 0, 7),
		})
		assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		svc, _ := newTripService(t, now)

		_, err := svc.CreateTrip(ctx, creatorID, &usecase.CreateTripInput{
			LocationID: locationID,
			StartDate:  now.AddDate(0, 0, 7),
			EndDate:    now,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
	})
}

func TestTripService_JoinTrip(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	trip := &entity.Trip{
		ID:        uuid.New(),
		StartDate: now.AddDate(0, 1, 0),
		EndDate:   now.AddDate(0, 1, 7),
	}

	t.Run("enrolls member and publishes event", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.tripRepo.EXPECT().FindTripByID(ctx, trip.ID).Return(trip, nil)
		mocks.tripRepo.EXPECT().AddMember(ctx, &entity.TripMember{TripID: trip.ID, UserID: userID}).
			Return(nil)
		mocks.eventPublisher.EXPECT().PublishBookingEvent(ctx, mock.MatchedBy(func(e *service.BookingEvent) bool {
			return e.EventType == service.EventTripMemberJoined && e.TripID == trip.ID.String()
		})).Return(nil)

		require.NoError(t, svc.JoinTrip(ctx, userID, trip.ID))
	})

	t.Run("duplicate member maps to already enrolled", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.tripRepo.EXPECT().FindTripByID(ctx, trip.ID).Return(trip, nil)
		mocks.tripRepo.EXPECT().AddMember(ctx, mock.Anything).
			Return(repository.ErrDuplicateTripMember)

		err := svc.JoinTrip(ctx, userID, trip.ID)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyTripMember)
	})

	t.Run("unknown trip maps to not found", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.tripRepo.EXPECT().FindTripByID(ctx, trip.ID).
			Return(nil, repository.ErrTripNotFound)

		err := svc.JoinTrip(ctx, userID, trip.ID)
		assert.ErrorIs(t, err, domainerrors.ErrTripNotFound)
	})
}

func TestTripService_LeaveTrip(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	tripID := uuid.New()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("removes enrollment", func(t *testing.T) {
		svc, mocks := newTripService(t, now)
		mocks.tripRepo.EXPECT().RemoveMember(ctx, tripID, userID).Return(nil)

		require.NoError(t, svc.LeaveTrip(ctx, userID, tripID))
	})

	t.Run("non-member maps to not a member", func(t *testing.T) {
		svc, mocks := newTripService(t, now)
		mocks.tripRepo.EXPECT().RemoveMember(ctx, tripID, userID).
			Return(repository.ErrTripMemberNotFound)

		err := svc.LeaveTrip(ctx, userID, tripID)
		assert.ErrorIs(t, err, domainerrors.ErrNotTripMember)
	})
}

func TestTripService_ListTrips(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	lisbonID := uuid.New()
	osloID := uuid.New()
	lisbon := &entity.Location{ID: lisbonID, Name: "Lisbon"}
	oslo := &entity.Location{ID: osloID, Name: "Oslo"}

	past := &entity.Trip{
		ID:         uuid.New(),
		LocationID: lisbonID,
		StartDate:  now.AddDate(0, -2, 0),
		EndDate:    now.AddDate(0, -2, 7),
	}
	future := &entity.Trip{
		ID:         uuid.New(),
		LocationID: osloID,
		StartDate:  now.AddDate(0, 1, 0),
		EndDate:    now.AddDate(0, 1, 7),
	}

	t.Run("splits into upcoming and previous against the current date", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.tripRepo.EXPECT().FindTripsByMember(ctx, userID).
			Return([]*entity.Trip{past, future}, nil)
		mocks.locationRepo.EXPECT().FindLocationsByIDs(ctx, []uuid.UUID{lisbonID, osloID}).
			Return(map[uuid.UUID]*entity.Location{lisbonID: lisbon, osloID: oslo}, nil)
		mocks.reviewRepo.EXPECT().HasReview(ctx, userID, lisbonID).Return(true, nil)

		list, err := svc.ListTrips(ctx, userID)
		require.NoError(t, err)

		require.Len(t, list.Upcoming, 1)
		assert.Equal(t, future.ID, list.Upcoming[0].Trip.ID)
		assert.Equal(t, "Oslo", list.Upcoming[0].Location.Name)
		assert.False(t, list.Upcoming[0].Reviewed)

		require.Len(t, list.Previous, 1)
		assert.Equal(t, past.ID, list.Previous[0].Trip.ID)
		assert.True(t, list.Previous[0].Reviewed)
	})

	t.Run("trip ending exactly now is still upcoming", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		boundary := &entity.Trip{
			ID:         uuid.New(),
			LocationID: lisbonID,
			StartDate:  now.AddDate(0, 0, -7),
			EndDate:    now,
		}

		mocks.tripRepo.EXPECT().FindTripsByMember(ctx, userID).
			Return([]*entity.Trip{boundary}, nil)
		mocks.locationRepo.EXPECT().FindLocationsByIDs(ctx, []uuid.UUID{lisbonID}).
			Return(map[uuid.UUID]*entity.Location{lisbonID: lisbon}, nil)

		list, err := svc.ListTrips(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, list.Upcoming, 1)
		assert.Empty(t, list.Previous)
	})
}

func TestTripService_CreateReview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	previousTrip := &entity.Trip{
		ID:         uuid.New(),
		LocationID: locationID,
		StartDate:  now.AddDate(0, -2, 0),
		EndDate:    now.AddDate(0, -2, 7),
	}

	t.Run("records review for a visited location", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.tripRepo.EXPECT().FindTripsByMember(ctx, userID).
			Return([]*entity.Trip{previousTrip}, nil)
		mocks.reviewRepo.EXPECT().CreateReview(ctx, mock.MatchedBy(func(r *entity.Review) bool {
			return r.UserID == userID && r.LocationID == locationID && r.Rating == 4
		})).Return(nil)

		review, err := svc.CreateReview(ctx, userID, &usecase.CreateReviewInput{
			LocationID: locationID,
			Rating:     4,
			Comment:    "great food",
		})
		require.NoError(t, err)
		assert.Equal(t, 4, review.Rating)
	})

	t.Run("rejects rating outside bounds", func(t *testing.T) {
		svc, _ := newTripService(t, now)

		_, err := svc.CreateReview(ctx, userID, &usecase.CreateReviewInput{
			LocationID: locationID,
			Rating:     0,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)

		_, err = svc.CreateReview(ctx, userID, &usecase.CreateReviewInput{
			LocationID: locationID,
			Rating:     6,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	})

	t.Run("rejects review without a previous trip", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		upcomingOnly := &entity.Trip{
			ID:         uuid.New(),
			LocationID: locationID,
			StartDate:  now.AddDate(0, 1, 0),
			EndDate:    now.AddDate(0, 1, 7),
		}
		mocks.tripRepo.EXPECT().FindTripsByMember(ctx, userID).
			Return([]*entity.Trip{upcomingOnly}, nil)

		_, err := svc.CreateReview(ctx, userID, &usecase.CreateReviewInput{
			LocationID: locationID,
			Rating:     5,
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestTripService_InviteQR(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	trip := &entity.Trip{
		ID:        uuid.New(),
		StartDate: now.AddDate(0, 1, 0),
		EndDate:   now.AddDate(0, 1, 7),
	}

	t.Run("generates invite for existing trip", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.tripRepo.EXPECT().FindTripByID(ctx, trip.ID).Return(trip, nil)
		mocks.qrcodeService.EXPECT().GenerateTripInviteQR(trip.ID).
			Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

		qr, err := svc.GenerateInviteQR(ctx, trip.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, qr)
	})

	t.Run("join by scanned invite enrolls and returns the trip", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.qrcodeService.EXPECT().ParseTripInviteQR("qr-payload").Return(trip.ID, nil)
		mocks.tripRepo.EXPECT().FindTripByID(ctx, trip.ID).Return(trip, nil).Times(2)
		mocks.tripRepo.EXPECT().AddMember(ctx, &entity.TripMember{TripID: trip.ID, UserID: userID}).
			Return(nil)
		mocks.eventPublisher.EXPECT().PublishBookingEvent(ctx, mock.Anything).Return(nil)

		got, err := svc.JoinByInviteQR(ctx, userID, "qr-payload")
		require.NoError(t, err)
		assert.Equal(t, trip.ID, got.ID)
	})

	t.Run("malformed invite is a validation error", func(t *testing.T) {
		svc, mocks := newTripService(t, now)

		mocks.qrcodeService.EXPECT().ParseTripInviteQR("garbage").
			Return(uuid.Nil, domainerrors.ErrValidationFailed)

		_, err := svc.JoinByInviteQR(ctx, userID, "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
