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

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// CreateActivity persists a new named activity.
func (repo *activityRepository) CreateActivity(ctx context.Context, activity *entity.Activity) error {
	activityM := &model.ActivityModel{
		Name:        activity.Name,
		Description: activity.Description,
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("activity name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

// JoinActivity links a user to an activity by name.
func (repo *activityRepository) JoinActivity(ctx context.Context, userID uuid.UUID, activityName string) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("name = ?", activityName).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to look up activity")
	}
	if count == 0 {
		return repository.ErrActivityNotFound
	}

	userActivityM := &model.UserActivityModel{
		UserID:       userID,
		ActivityName: activityName,
	}

	if err := repo.db.WithContext(ctx).Create(userActivityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUserActivity
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to join activity")
	}

	return nil
}

// LeaveActivity removes the user-activity link.
func (repo *activityRepository) LeaveActivity(ctx context.Context, userID uuid.UUID, activityName string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND activity_name = ?", userID, activityName).
		Delete(&model.UserActivityModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to leave activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// FindActivityNamesByUser retrieves the names of all activities the user participates in.
func (repo *activityRepository) FindActivityNamesByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string

	if err := repo.db.WithContext(ctx).
		Model(&model.UserActivityModel{}).
		Where("user_id = ?", userID).
		Order("activity_name ASC").
		Pluck("activity_name", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activity names by user")
	}

	return names, nil
}

// FindActivityNamesByUsers retrieves activity names per user for the given
// users in one query.
func (repo *activityRepository) FindActivityNamesByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	result := make(map[uuid.UUID][]string, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var userActivityModels []*model.UserActivityModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("activity_name ASC").
		Find(&userActivityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activity names by users")
	}

	for _, userActivityM := range userActivityModels {
		result[userActivityM.UserID] = append(result[userActivityM.UserID], userActivityM.ActivityName)
	}

	return result, nil
}
