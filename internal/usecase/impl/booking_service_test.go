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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookingService(
	rentalRepo *mockrepo.MockRentalRepository,
	eventPublisher *mockservice.MockEventPublisher,
	now time.Time,
) *bookingService {
	svc := NewBookingService(BookingServiceParams{
		RentalRepo:     rentalRepo,
		EventPublisher: eventPublisher,
		Logger:         discardLogger(),
	}).(*bookingService)
	svc.now = func() time.Time { return now }

	return svc
}

func TestBookingService_CreateRental(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates listing", func(t *testing.T) {
		rentalRepo := mockrepo.NewMockRentalRepository(t)
		rentalRepo.EXPECT().CreateRental(ctx, mock.MatchedBy(func(r *entity.Rental) bool {
			return r.OwnerID == ownerID && r.Address == "12 Rua Augusta, Lisbon"
		})).Return(nil)

		svc := newBookingService(rentalRepo, mockservice.NewMockEventPublisher(t), now)

		rental, err := svc.CreateRental(ctx, ownerID, &usecase.CreateRentalInput{
			Address:   "12 Rua Augusta, Lisbon",
			StartDate: now.AddDate(0, 1, 0),
			EndDate:   now.AddDate(0, 1, 7),
		})
		require.NoError(t, err)
		assert.Equal(t, ownerID, rental.OwnerID)
	})

	t.Run("rejects empty address", func(t *testing.T) {
		svc := newBookingService(mockrepo.NewMockRentalRepository(t), mockservice.NewMockEventPublisher(t), now)

		_, err := svc.CreateRental(ctx, ownerID, &usecase.CreateRentalInput{
			StartDate: now,
			EndDate:   now.AddDate(0, 0, 7),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		svc := newBookingService(mockrepo.NewMockRentalRepository(t), mockservice.NewMockEventPublisher(t), now)

		_, err := svc.CreateRental(ctx, ownerID, &usecase.CreateRentalInput{
			Address:   "12 Rua Augusta, Lisbon",
			StartDate: now.AddDate(0, 0, 7),
			EndDate:   now,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
	})
}

func TestBookingService_ListOpenRentals(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	rentalRepo := mockrepo.NewMockRentalRepository(t)
	open := []*entity.Rental{{ID: uuid.New(), Address: "12 Rua Augusta, Lisbon"}}
	rentalRepo.EXPECT().FindOpenRentals(ctx, now).Return(open, nil)

	svc := newBookingService(rentalRepo, mockservice.NewMockEventPublisher(t), now)

	got, err := svc.ListOpenRentals(ctx)
	require.NoError(t, err)
	assert.Equal(t, open, got)
}

func TestBookingService_SubmitRentalRequest(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	requesterID := uuid.New()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	openRental := &entity.Rental{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Address:   "12 Rua Augusta, Lisbon",
		StartDate: now.AddDate(0, 1, 0),
		EndDate:   now.AddDate(0, 1, 7),
	}

	t.Run("persists request and publishes event", func(t *testing.T) {
		rentalRepo := mockrepo.NewMockRentalRepository(t)
		eventPublisher := mockservice.NewMockEventPublisher(t)

		rentalRepo.EXPECT().FindRentalByID(ctx, openRental.ID).Return(openRental, nil)
		rentalRepo.EXPECT().CreateRentalRequest(ctx, mock.MatchedBy(func(r *entity.RentalRequest) bool {
			return r.RequesterID == requesterID && r.OwnerID == ownerID && r.Address == openRental.Address
		})).Return(nil)
		eventPublisher.EXPECT().PublishBookingEvent(ctx, mock.MatchedBy(func(e *service.BookingEvent) bool {
			return e.EventType == service.EventRentalRequestSubmitted &&
				e.OwnerID == ownerID.String() &&
				e.RequesterID == requesterID.String()
		})).Return(nil)

		svc := newBookingService(rentalRepo, eventPublisher, now)

		request, err := svc.SubmitRentalRequest(ctx, requesterID, &usecase.SubmitRequestInput{
			RentalID:  openRental.ID,
			Comment:   "two of us, arriving late",
			StartDate: openRental.StartDate,
			EndDate:   openRental.EndDate,
		})
		require.NoError(t, err)
		assert.Equal(t, "two of us, arriving late", request.Comment)
		assert.Equal(t, ownerID, request.OwnerID)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		rentalRepo := mockrepo.NewMockRentalRepository(t)
		eventPublisher := mockservice.NewMockEventPublisher(t)

		rentalRepo.EXPECT().FindRentalByID(ctx, openRental.ID).Return(openRental, nil)
		rentalRepo.EXPECT().CreateRentalRequest(ctx, mock.Anything).Return(nil)
		eventPublisher.EXPECT().PublishBookingEvent(ctx, mock.Anything).
			Return(errors.New("broker unavailable"))

		svc := newBookingService(rentalRepo, eventPublisher, now)

		_, err := svc.SubmitRentalRequest(ctx, requesterID, &usecase.SubmitRequestInput{
			RentalID:  openRental.ID,
			StartDate: openRental.StartDate,
			EndDate:   openRental.EndDate,
		})
		require.NoError(t, err)
	})

	t.Run("rejects closed rental", func(t *testing.T) {
		closed := &entity.Rental{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			StartDate: now.AddDate(0, -1, 0),
			EndDate:   now.AddDate(0, 0, -7),
		}

		rentalRepo := mockrepo.NewMockRentalRepository(t)
		rentalRepo.EXPECT().FindRentalByID(ctx, closed.ID).Return(closed, nil)

		svc := newBookingService(rentalRepo, mockservice.NewMockEventPublisher(t), now)

		_, err := svc.SubmitRentalRequest(ctx, requesterID, &usecase.SubmitRequestInput{
			RentalID:  closed.ID,
			StartDate: now,
			EndDate:   now.AddDate(0, 0, 7),
		})
		assert.ErrorIs(t, err, domainerrors.ErrRentalClosed)
	})

	t.Run("owner cannot request own rental", func(t *testing.T) {
		rentalRepo := mockrepo.NewMockRentalRepository(t)
		rentalRepo.EXPECT().FindRentalByID(ctx, openRental.ID).Return(openRental, nil)

		svc := newBookingService(rentalRepo, mockservice.NewMockEventPublisher(t), now)

		_, err := svc.SubmitRentalRequest(ctx, ownerID, &usecase.SubmitRequestInput{
			RentalID:  openRental.ID,
			StartDate: openRental.StartDate,
			EndDate:   openRental.EndDate,
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown rental maps to not found", func(t *testing.T) {
		rentalRepo := mockrepo.NewMockRentalRepository(t)
		missingID := uuid.New()
		rentalRepo.EXPECT().FindRentalByID(ctx, missingID).Return(nil, repository.ErrRentalNotFound)

		svc := newBookingService(rentalRepo, mockservice.NewMockEventPublisher(t), now)

		_, err := svc.SubmitRentalRequest(ctx, requesterID, &usecase.SubmitRequestInput{
			RentalID:  missingID,
			StartDate: now,
			EndDate:   now.AddDate(0, 0, 7),
		})
		assert.ErrorIs(t, err, domainerrors.ErrRentalNotFound)
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		rentalRepo := mockrepo.NewMockRentalRepository(t)
		rentalRepo.EXPECT().FindRentalByID(ctx, openRental.ID).Return(openRental, nil)

		svc := newBookingService(rentalRepo, mockservice.NewMockEventPublisher(t), now)

		_, err := svc.SubmitRentalRequest(ctx, requesterID, &usecase.SubmitRequestInput{
			RentalID:  openRental.ID,
			StartDate: openRental.EndDate,
			EndDate:   openRental.StartDate,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
	})
}

func TestBookingService_ListRequests(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	requesterID := uuid.New()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("for owner", func(t *testing.T) {
		rentalRepo := mockrepo.NewMockRentalRepository(t)
		requests := []*entity.RentalRequest{{ID: uuid.New(), OwnerID: ownerID}}
		rentalRepo.EXPECT().FindRequestsForOwner(ctx, ownerID).Return(requests, nil)

		svc := newBookingService(rentalRepo, mockservice.NewMockEventPublisher(t), now)

		got, err := svc.ListRequestsForOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, requests, got)
	})

	t.Run("by requester", func(t *testing.T) {
		rentalRepo := mockrepo.NewMockRentalRepository(t)
		requests := []*entity.RentalRequest{{ID: uuid.New(), RequesterID: requesterID}}
		rentalRepo.EXPECT().FindRequestsByRequester(ctx, requesterID).Return(requests, nil)

		svc := newBookingService(rentalRepo, mockservice.NewMockEventPublisher(t), now)

		got, err := svc.ListRequestsByRequester(ctx, requesterID)
		require.NoError(t, err)
		assert.Equal(t, requests, got)
	})
}
