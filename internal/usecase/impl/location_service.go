package impl

import (
	"context"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/infra/geo"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type locationService struct {
	locationRepo repository.LocationRepository
	reviewRepo   repository.ReviewRepository
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	ReviewRepo   repository.ReviewRepository
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		reviewRepo:   params.ReviewRepo,
	}
}

// AddLocation creates a new location from string coordinates.
// Coordinates arrive as strings from the transport layer; malformed input
// fails hard with ErrInvalidCoordinate, never with a silent default.
func (s *locationService) AddLocation(ctx context.Context, input *usecase.AddLocationInput) (*entity.Location, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	point, err := geo.ParsePoint(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	location := &entity.Location{
		Name:        input.Name,
		Description: input.Description,
		Country:     input.Country,
		Latitude:    point.Lat(),
		Longitude:   point.Lon(),
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

// GetLocation retrieves a location with its aggregate rating and reviews
func (s *locationService) GetLocation(ctx context.Context, locationID uuid.UUID) (*usecase.LocationDetail, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	rating, err := s.locationRepo.AggregateRating(ctx, locationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate rating")
	}

	reviews, err := s.reviewRepo.FindReviewsByLocation(ctx, locationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by location")
	}

	return &usecase.LocationDetail{
		Location: location,
		Rating:   rating,
		Reviews:  reviews,
	}, nil
}

// ListLocations retrieves all locations ordered by name
func (s *locationService) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}
