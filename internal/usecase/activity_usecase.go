package usecase

import (
	"context"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateActivityInput represents the input for creating a named activity
type CreateActivityInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ActivityUsecase defines the interface for activity participation use cases
type ActivityUsecase interface {
	// CreateActivity creates a new named activity
	CreateActivity(ctx context.Context, input *CreateActivityInput) (*entity.Activity, error)

	// JoinActivity links the user to an activity by name
	JoinActivity(ctx context.Context, userID uuid.UUID, activityName string) error

	// LeaveActivity removes the user-activity link
	LeaveActivity(ctx context.Context, userID uuid.UUID, activityName string) error

	// ListUserActivities lists the names of the activities the user participates in
	ListUserActivities(ctx context.Context, userID uuid.UUID) ([]string, error)
}
