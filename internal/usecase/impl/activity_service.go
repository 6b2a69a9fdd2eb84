package impl

import (
	"context"
	"strings"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type activityService struct {
	activityRepo repository.ActivityRepository
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
	}
}

// CreateActivity creates a new named activity
func (s *activityService) CreateActivity(ctx context.Context, input *usecase.CreateActivityInput) (*entity.Activity, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	activity := &entity.Activity{
		Name:        name,
		Description: input.Description,
	}

	if err := s.activityRepo.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

// JoinActivity links the user to an activity by name
func (s *activityService) JoinActivity(ctx context.Context, userID uuid.UUID, activityName string) error {
	if err := s.activityRepo.JoinActivity(ctx, userID, activityName); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("activity does not exist")
		}
		if errors.Is(err, repository.ErrDuplicateUserActivity) {
			return domainerrors.ErrConflict.WrapMessage("already joined to activity")
		}

		return err
	}

	return nil
}

// LeaveActivity removes the user-activity link
func (s *activityService) LeaveActivity(ctx context.Context, userID uuid.UUID, activityName string) error {
	if err := s.activityRepo.LeaveActivity(ctx, userID, activityName); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("not joined to activity")
		}

		return err
	}

	return nil
}

// ListUserActivities lists the names of the activities the user participates in
func (s *activityService) ListUserActivities(ctx context.Context, userID uuid.UUID) ([]string, error) {
	names, err := s.activityRepo.FindActivityNamesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find activity names by user")
	}

	return names, nil
}
