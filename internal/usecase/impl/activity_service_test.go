package impl

import (
	"context"
	"testing"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	mockrepo "wander/internal/mocks/repository"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityService_CreateActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("creates named activity with trimmed name", func(t *testing.T) {
		activityRepo := mockrepo.NewMockActivityRepository(t)
		activityRepo.EXPECT().
			CreateActivity(ctx, &entity.Activity{Name: "hiking", Description: "mountain trails"}).
			Return(nil)

		svc := NewActivityService(ActivityServiceParams{ActivityRepo: activityRepo})

		activity, err := svc.CreateActivity(ctx, &usecase.CreateActivityInput{
			Name:        "  hiking ",
			Description: "mountain trails",
		})
		require.NoError(t, err)
		assert.Equal(t, "hiking", activity.Name)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		svc := NewActivityService(ActivityServiceParams{})

		_, err := svc.CreateActivity(ctx, &usecase.CreateActivityInput{Name: "   "})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestActivityService_JoinActivity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("joins by name", func(t *testing.T) {
		activityRepo := mockrepo.NewMockActivityRepository(t)
		activityRepo.EXPECT().JoinActivity(ctx, userID, "hiking").Return(nil)

		svc := NewActivityService(ActivityServiceParams{ActivityRepo: activityRepo})

		require.NoError(t, svc.JoinActivity(ctx, userID, "hiking"))
	})

	t.Run("unknown activity maps to not found", func(t *testing.T) {
		activityRepo := mockrepo.NewMockActivityRepository(t)
		activityRepo.EXPECT().JoinActivity(ctx, userID, "spelunking").
			Return(repository.ErrActivityNotFound)

		svc := NewActivityService(ActivityServiceParams{ActivityRepo: activityRepo})

		err := svc.JoinActivity(ctx, userID, "spelunking")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("double join maps to conflict", func(t *testing.T) {
		activityRepo := mockrepo.NewMockActivityRepository(t)
		activityRepo.EXPECT().JoinActivity(ctx, userID, "hiking").
			Return(repository.ErrDuplicateUserActivity)

		svc := NewActivityService(ActivityServiceParams{ActivityRepo: activityRepo})

		err := svc.JoinActivity(ctx, userID, "hiking")
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})
}

func TestActivityService_LeaveActivity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("leaves by name", func(t *testing.T) {
		activityRepo := mockrepo.NewMockActivityRepository(t)
		activityRepo.EXPECT().LeaveActivity(ctx, userID, "hiking").Return(nil)

		svc := NewActivityService(ActivityServiceParams{ActivityRepo: activityRepo})

		require.NoError(t, svc.LeaveActivity(ctx, userID, "hiking"))
	})

	t.Run("leaving an unjoined activity maps to not found", func(t *testing.T) {
		activityRepo := mockrepo.NewMockActivityRepository(t)
		activityRepo.EXPECT().LeaveActivity(ctx, userID, "hiking").
			Return(repository.ErrActivityNotFound)

		svc := NewActivityService(ActivityServiceParams{ActivityRepo: activityRepo})

		err := svc.LeaveActivity(ctx, userID, "hiking")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestActivityService_ListUserActivities(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	activityRepo := mockrepo.NewMockActivityRepository(t)
	activityRepo.EXPECT().FindActivityNamesByUser(ctx, userID).
		Return([]string{"hiking", "surfing"}, nil)

	svc := NewActivityService(ActivityServiceParams{ActivityRepo: activityRepo})

	names, err := svc.ListUserActivities(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"hiking", "surfing"}, names)
}
