// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wander/internal/domain/entity"
	"wander/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for activity persistence.
var (
	// ErrActivityNotFound is returned when an activity is not found.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrDuplicateUserActivity is returned when a user is already joined to the activity.
	ErrDuplicateUserActivity = errors.New("user already joined to activity")
)

// ActivityRepository defines the interface for activities and the
// user-activity join table. Activity name is the natural key throughout.
type ActivityRepository interface {
	// CreateActivity persists a new named activity.
	CreateActivity(ctx context.Context, activity *entity.Activity) error

	// JoinActivity links a user to an activity by name.
	JoinActivity(ctx context.Context, userID uuid.UUID, activityName string) error

	// LeaveActivity removes the user-activity link.
	LeaveActivity(ctx context.Context, userID uuid.UUID, activityName string) error

	// FindActivityNamesByUser retrieves the names of all activities the user participates in.
	FindActivityNamesByUser(ctx context.Context, userID uuid.UUID) ([]string, error)

	// FindActivityNamesByUsers retrieves activity names per user for the given users in one query.
	FindActivityNamesByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}
