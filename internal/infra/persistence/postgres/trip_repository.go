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

// tripRepository implements the repository.TripRepository interface.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository is the constructor for tripRepository.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{
		db: db,
	}
}

// CreateTrip persists a new trip.
func (repo *tripRepository) CreateTrip(ctx context.Context, trip *entity.Trip) error {
	tripM := &model.TripModel{
		LocationID: trip.LocationID,
		StartDate:  trip.StartDate,
		EndDate:    trip.EndDate,
	}

	if err := repo.db.WithContext(ctx).Create(tripM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLocationNotFound.WrapMessage("location does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create trip")
	}

	trip.ID = tripM.ID
	trip.CreatedAt = tripM.CreatedAt

	return nil
}

// FindTripByID retrieves a trip by its unique ID.
func (repo *tripRepository) FindTripByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	var tripM model.TripModel

	if err := repo.db.WithContext(ctx).First(&tripM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to find trip by id")
	}

	return toTripDomain(&tripM), nil
}

// FindTripsByMember retrieves every trip the user is enrolled in, ordered by start date.
func (repo *tripRepository) FindTripsByMember(ctx context.Context, userID uuid.UUID) ([]*entity.Trip, error) {
	var tripModels []*model.TripModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN user_trips ON user_trips.trip_id = trips.id").
		Where("user_trips.user_id = ?", userID).
		Order("trips.start_date ASC").
		Find(&tripModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find trips by member")
	}

	trips := make([]*entity.Trip, 0, len(tripModels))
	for _, tripM := range tripModels {
		trips = append(trips, toTripDomain(tripM))
	}

	return trips, nil
}

// AddMember enrolls a user in a trip.
func (repo *tripRepository) AddMember(ctx context.Context, member *entity.TripMember) error {
	memberM := &model.TripMemberModel{
		TripID: member.TripID,
		UserID: member.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTripMember
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTripNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add trip member")
	}

	member.JoinedAt = memberM.JoinedAt

	return nil
}

// RemoveMember removes a user's enrollment from a trip.
func (repo *tripRepository) RemoveMember(ctx context.Context, tripID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Delete(&model.TripMemberModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove trip member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTripMemberNotFound
	}

	return nil
}

// FindMembers retrieves the members of a trip joined with their public profile.
func (repo *tripRepository) FindMembers(ctx context.Context, tripID uuid.UUID) ([]*entity.Friend, error) {
	var memberModels []*model.TripMemberModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("trip_id = ?", tripID).
		Order("joined_at ASC").
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find trip members")
	}

	members := make([]*entity.Friend, 0, len(memberModels))
	for _, memberM := range memberModels {
		if memberM.User == nil {
			continue
		}
		members = append(members, &entity.Friend{
			UserID:         memberM.User.ID,
			Name:           memberM.User.Name,
			ProfilePicture: memberM.User.ProfilePicture,
			HomeLocationID: memberM.User.HomeLocationID,
		})
	}

	return members, nil
}

// toTripDomain converts a persistence model to a domain entity.
func toTripDomain(tripM *model.TripModel) *entity.Trip {
	return &entity.Trip{
		ID:         tripM.ID,
		LocationID: tripM.LocationID,
		StartDate:  tripM.StartDate,
		EndDate:    tripM.EndDate,
		CreatedAt:  tripM.CreatedAt,
	}
}
