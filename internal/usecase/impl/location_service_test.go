package impl

import (
	"context"
	"testing"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	mockrepo "wander/internal/mocks/repository"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_AddLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("parses string coordinates", func(t *testing.T) {
		locationRepo := mockrepo.NewMockLocationRepository(t)
		locationRepo.EXPECT().CreateLocation(ctx, mock.MatchedBy(func(l *entity.Location) bool {
			return l.Name == "Lisbon" && l.Latitude == 38.7223 && l.Longitude == -9.1393
		})).Return(nil)

		svc := NewLocationService(LocationServiceParams{LocationRepo: locationRepo})

		location, err := svc.AddLocation(ctx, &usecase.AddLocationInput{
			Name:      "Lisbon",
			Country:   "Portugal",
			Latitude:  "38.7223",
			Longitude: "-9.1393",
		})
		require.NoError(t, err)
		assert.Equal(t, 38.7223, location.Latitude)
		assert.Equal(t, -9.1393, location.Longitude)
	})

	t.Run("malformed coordinate is a hard failure", func(t *testing.T) {
		svc := NewLocationService(LocationServiceParams{})

		_, err := svc.AddLocation(ctx, &usecase.AddLocationInput{
			Name:      "Nowhere",
			Latitude:  "not-a-number",
			Longitude: "0",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

		_, err = svc.AddLocation(ctx, &usecase.AddLocationInput{
			Name:      "Nowhere",
			Latitude:  "0",
			Longitude: "NaN",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		svc := NewLocationService(LocationServiceParams{})

		_, err := svc.AddLocation(ctx, &usecase.AddLocationInput{
			Latitude:  "0",
			Longitude: "0",
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestLocationService_GetLocation(t *testing.T) {
	ctx := context.Background()
	locationID := uuid.New()

	t.Run("returns location with rating and reviews", func(t *testing.T) {
		locationRepo := mockrepo.NewMockLocationRepository(t)
		reviewRepo := mockrepo.NewMockReviewRepository(t)

		location := &entity.Location{ID: locationID, Name: "Lisbon"}
		rating := &entity.LocationRating{LocationID: locationID, AverageRating: 4.5, ReviewCount: 2}
		reviews := []*entity.Review{
			{ID: uuid.New(), LocationID: locationID, Rating: 5},
			{ID: uuid.New(), LocationID: locationID, Rating: 4},
		}

		locationRepo.EXPECT().FindLocationByID(ctx, locationID).Return(location, nil)
		locationRepo.EXPECT().AggregateRating(ctx, locationID).Return(rating, nil)
		reviewRepo.EXPECT().FindReviewsByLocation(ctx, locationID).Return(reviews, nil)

		svc := NewLocationService(LocationServiceParams{
			LocationRepo: locationRepo,
			ReviewRepo:   reviewRepo,
		})

		detail, err := svc.GetLocation(ctx, locationID)
		require.NoError(t, err)
		assert.Equal(t, location, detail.Location)
		assert.InDelta(t, 4.5, detail.Rating.AverageRating, 1e-9)
		assert.Len(t, detail.Reviews, 2)
	})

	t.Run("unknown location maps to not found", func(t *testing.T) {
		locationRepo := mockrepo.NewMockLocationRepository(t)
		locationRepo.EXPECT().FindLocationByID(ctx, locationID).
			Return(nil, repository.ErrLocationNotFound)

		svc := NewLocationService(LocationServiceParams{LocationRepo: locationRepo})

		_, err := svc.GetLocation(ctx, locationID)
		assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
	})
}

func TestLocationService_ListLocations(t *testing.T) {
	ctx := context.Background()

	locationRepo := mockrepo.NewMockLocationRepository(t)
	locations := []*entity.Location{
		{ID: uuid.New(), Name: "Lisbon"},
		{ID: uuid.New(), Name: "Oslo"},
	}
	locationRepo.EXPECT().ListLocations(ctx).Return(locations, nil)

	svc := NewLocationService(LocationServiceParams{LocationRepo: locationRepo})

	got, err := svc.ListLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, locations, got)
}
