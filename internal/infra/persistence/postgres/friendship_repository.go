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

// friendshipRepository implements the repository.FriendshipRepository interface.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{
		db: db,
	}
}

// CreateFriendship persists the directed edge user -> friend.
func (repo *friendshipRepository) CreateFriendship(ctx context.Context, friendship *entity.Friendship) error {
	friendshipM := &model.FriendshipModel{
		UserID:   friendship.UserID,
		FriendID: friendship.FriendID,
	}

	if err := repo.db.WithContext(ctx).Create(friendshipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFriendship
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("friend does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create friendship")
	}

	friendship.CreatedAt = friendshipM.CreatedAt

	return nil
}

// DeleteFriendship removes the directed edge user -> friend.
func (repo *friendshipRepository) DeleteFriendship(ctx context.Context, userID, friendID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&model.FriendshipModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete friendship")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendshipNotFound
	}

	return nil
}

// FindFriendsOfUser retrieves the users the given user has added, joined with
// their public profile.
func (repo *friendshipRepository) FindFriendsOfUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error) {
	var friendshipModels []*model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Preload("Friend").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&friendshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friends of user")
	}

	friends := make([]*entity.Friend, 0, len(friendshipModels))
	for _, friendshipM := range friendshipModels {
		if friendshipM.Friend == nil {
			continue
		}
		friends = append(friends, &entity.Friend{
			UserID:         friendshipM.Friend.ID,
			Name:           friendshipM.Friend.Name,
			ProfilePicture: friendshipM.Friend.ProfilePicture,
			HomeLocationID: friendshipM.Friend.HomeLocationID,
		})
	}

	return friends, nil
}

// FindFriendIDs retrieves just the IDs of the users the given user has added.
func (repo *friendshipRepository) FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friend ids")
	}

	return ids, nil
}
