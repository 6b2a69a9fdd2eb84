// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation persists a new location.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt

	return nil
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationsByIDs retrieves the locations for the given IDs in one query.
func (repo *locationRepository) FindLocationsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Location, error) {
	locations := make(map[uuid.UUID]*entity.Location, len(ids))
	if len(ids) == 0 {
		return locations, nil
	}

	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by ids")
	}

	for _, locationM := range locationModels {
		locations[locationM.ID] = toLocationDomain(locationM)
	}

	return locations, nil
}

// ListLocations retrieves all locations ordered by name.
func (repo *locationRepository) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// AggregateRating computes the average rating and review count for a location.
// The aggregate is derived at read time; nothing is stored on the location row.
func (repo *locationRepository) AggregateRating(ctx context.Context, locationID uuid.UUID) (*entity.LocationRating, error) {
	var result struct {
		AverageRating float64
		ReviewCount   int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS review_count").
		Where("location_id = ?", locationID).
		Scan(&result).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate location rating")
	}

	return &entity.LocationRating{
		LocationID:    locationID,
		AverageRating: result.AverageRating,
		ReviewCount:   result.ReviewCount,
	}, nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Country:     data.Country,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		CreatedAt:   data.CreatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Country:     data.Country,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
	}
}
