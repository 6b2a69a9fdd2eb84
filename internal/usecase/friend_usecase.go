package usecase

import (
	"context"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// FriendUsecase defines the interface for managing the directed friend graph
type FriendUsecase interface {
	// AddFriend creates the directed edge user -> friend
	AddFriend(ctx context.Context, userID, friendID uuid.UUID) error

	// RemoveFriend removes the directed edge user -> friend
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error

	// ListFriends retrieves the user's friends with their public profile
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error)
}
