package impl

import (
	"context"
	"testing"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	mockrepo "wander/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendService_AddFriend(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()

	t.Run("creates directed edge", func(t *testing.T) {
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		userRepo := mockrepo.NewMockUserRepository(t)

		userRepo.EXPECT().FindByID(ctx, friendID).
			Return(&entity.User{ID: friendID, Name: "Bob"}, nil)
		friendshipRepo.EXPECT().
			CreateFriendship(ctx, &entity.Friendship{UserID: userID, FriendID: friendID}).
			Return(nil)

		svc := NewFriendService(FriendServiceParams{
			FriendshipRepo: friendshipRepo,
			UserRepo:       userRepo,
		})

		require.NoError(t, svc.AddFriend(ctx, userID, friendID))
	})

	t.Run("rejects self friendship", func(t *testing.T) {
		svc := NewFriendService(FriendServiceParams{})

		err := svc.AddFriend(ctx, userID, userID)
		assert.ErrorIs(t, err, domainerrors.ErrSelfFriendship)
	})

	t.Run("rejects unknown friend", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)

		userRepo.EXPECT().FindByID(ctx, friendID).Return(nil, repository.ErrUserNotFound)

		svc := NewFriendService(FriendServiceParams{UserRepo: userRepo})

		err := svc.AddFriend(ctx, userID, friendID)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("duplicate edge maps to friendship exists", func(t *testing.T) {
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		userRepo := mockrepo.NewMockUserRepository(t)

		userRepo.EXPECT().FindByID(ctx, friendID).
			Return(&entity.User{ID: friendID}, nil)
		friendshipRepo.EXPECT().
			CreateFriendship(ctx, &entity.Friendship{UserID: userID, FriendID: friendID}).
			Return(repository.ErrDuplicateFriendship)

		svc := NewFriendService(FriendServiceParams{
			FriendshipRepo: friendshipRepo,
			UserRepo:       userRepo,
		})

		err := svc.AddFriend(ctx, userID, friendID)
		assert.ErrorIs(t, err, domainerrors.ErrFriendshipExists)
	})
}

func TestFriendService_RemoveFriend(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()

	t.Run("removes edge", func(t *testing.T) {
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		friendshipRepo.EXPECT().DeleteFriendship(ctx, userID, friendID).Return(nil)

		svc := NewFriendService(FriendServiceParams{FriendshipRepo: friendshipRepo})

		require.NoError(t, svc.RemoveFriend(ctx, userID, friendID))
	})

	t.Run("missing edge maps to not found", func(t *testing.T) {
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		friendshipRepo.EXPECT().DeleteFriendship(ctx, userID, friendID).
			Return(repository.ErrFriendshipNotFound)

		svc := NewFriendService(FriendServiceParams{FriendshipRepo: friendshipRepo})

		err := svc.RemoveFriend(ctx, userID, friendID)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestFriendService_ListFriends(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
	friends := []*entity.Friend{
		{UserID: uuid.New(), Name: "Bob"},
		{UserID: uuid.New(), Name: "Carol"},
	}
	friendshipRepo.EXPECT().FindFriendsOfUser(ctx, userID).Return(friends, nil)

	svc := NewFriendService(FriendServiceParams{FriendshipRepo: friendshipRepo})

	got, err := svc.ListFriends(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, friends, got)
}
