package impl

import (
	"context"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type friendService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
}

// FriendServiceParams holds dependencies for FriendService, injected by Fx.
type FriendServiceParams struct {
	fx.In

	FriendshipRepo repository.FriendshipRepository
	UserRepo       repository.UserRepository
}

// NewFriendService creates a new friend service instance
func NewFriendService(params FriendServiceParams) usecase.FriendUsecase {
	return &friendService{
		friendshipRepo: params.FriendshipRepo,
		userRepo:       params.UserRepo,
	}
}

// AddFriend creates the directed edge user -> friend.
// The reverse edge is never implied; the friend adds back separately.
func (s *friendService) AddFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	if userID == friendID {
		return domainerrors.ErrSelfFriendship
	}

	if _, err := s.userRepo.FindByID(ctx, friendID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user by id")
	}

	friendship := &entity.Friendship{
		UserID:   userID,
		FriendID: friendID,
	}

	if err := s.friendshipRepo.CreateFriendship(ctx, friendship); err != nil {
		if errors.Is(err, repository.ErrDuplicateFriendship) {
			return domainerrors.ErrFriendshipExists
		}

		return err
	}

	return nil
}

// RemoveFriend removes the directed edge user -> friend
func (s *friendService) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	if err := s.friendshipRepo.DeleteFriendship(ctx, userID, friendID); err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("friendship does not exist")
		}

		return err
	}

	return nil
}

// ListFriends retrieves the user's friends with their public profile
func (s *friendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error) {
	friends, err := s.friendshipRepo.FindFriendsOfUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friends of user")
	}

	return friends, nil
}
