// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wander/internal/domain/entity"
	"wander/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for friendship persistence.
var (
	// ErrFriendshipNotFound is returned when the directed edge does not exist.
	ErrFriendshipNotFound = errors.New("friendship not found")
	// ErrDuplicateFriendship is returned when the directed edge already exists.
	ErrDuplicateFriendship = errors.New("friendship already exists")
)

// FriendshipRepository defines the interface for the directed friend graph.
// Every operation works on edges in one direction only; the reverse edge is a
// separate row.
type FriendshipRepository interface {
	// CreateFriendship persists the directed edge user -> friend.
	CreateFriendship(ctx context.Context, friendship *entity.Friendship) error

	// DeleteFriendship removes the directed edge user -> friend.
	DeleteFriendship(ctx context.Context, userID, friendID uuid.UUID) error

	// FindFriendsOfUser retrieves the users the given user has added,
	// joined with their public profile.
	FindFriendsOfUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error)

	// FindFriendIDs retrieves just the IDs of the users the given user has added.
	FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
