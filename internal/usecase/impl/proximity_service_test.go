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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProximityService(
	userRepo *mockrepo.MockUserRepository,
	friendshipRepo *mockrepo.MockFriendshipRepository,
	locationRepo *mockrepo.MockLocationRepository,
) usecase.ProximityUsecase {
	return NewProximityService(ProximityServiceParams{
		UserRepo:       userRepo,
		FriendshipRepo: friendshipRepo,
		LocationRepo:   locationRepo,
		Logger:         discardLogger(),
	})
}

func TestProximityService_FriendsByDistance(t *testing.T) {
	ctx := context.Background()
	viewerID := uuid.New()
	homeID := uuid.New()

	viewer := &entity.User{ID: viewerID, HomeLocationID: &homeID}
	home := &entity.Location{ID: homeID, Name: "New York", Latitude: 40.0, Longitude: -73.0}

	t.Run("orders friends nearest first", func(t *testing.T) {
		nearHomeID := uuid.New()
		farHomeID := uuid.New()
		near := &entity.Friend{UserID: uuid.New(), Name: "Near", HomeLocationID: &nearHomeID}
		far := &entity.Friend{UserID: uuid.New(), Name: "Far", HomeLocationID: &farHomeID}

		userRepo := mockrepo.NewMockUserRepository(t)
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		locationRepo := mockrepo.NewMockLocationRepository(t)

		userRepo.EXPECT().FindByID(ctx, viewerID).Return(viewer, nil)
		friendshipRepo.EXPECT().FindFriendsOfUser(ctx, viewerID).
			Return([]*entity.Friend{far, near}, nil)
		locationRepo.EXPECT().
			FindLocationsByIDs(ctx, []uuid.UUID{homeID, farHomeID, nearHomeID}).
			Return(map[uuid.UUID]*entity.Location{
				homeID:     home,
				nearHomeID: {ID: nearHomeID, Name: "New York", Latitude: 40.0, Longitude: -73.0},
				farHomeID:  {ID: farHomeID, Name: "Albany", Latitude: 41.0, Longitude: -73.0},
			}, nil)

		svc := newProximityService(userRepo, friendshipRepo, locationRepo)

		result, err := svc.FriendsByDistance(ctx, viewerID)
		require.NoError(t, err)
		require.Len(t, result, 2)

		assert.Equal(t, near.UserID, result[0].UserID)
		assert.Zero(t, result[0].DistanceMiles)
		assert.Equal(t, far.UserID, result[1].UserID)
		// One degree of latitude with R = 3963.0 mi.
		assert.InDelta(t, 69.17, result[1].DistanceMiles, 0.01)
	})

	t.Run("omits friends without a home", func(t *testing.T) {
		withHomeID := uuid.New()
		withHome := &entity.Friend{UserID: uuid.New(), Name: "Settled", HomeLocationID: &withHomeID}
		homeless := &entity.Friend{UserID: uuid.New(), Name: "Nomad"}

		userRepo := mockrepo.NewMockUserRepository(t)
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		locationRepo := mockrepo.NewMockLocationRepository(t)

		userRepo.EXPECT().FindByID(ctx, viewerID).Return(viewer, nil)
		friendshipRepo.EXPECT().FindFriendsOfUser(ctx, viewerID).
			Return([]*entity.Friend{withHome, homeless}, nil)
		locationRepo.EXPECT().
			FindLocationsByIDs(ctx, []uuid.UUID{homeID, withHomeID}).
			Return(map[uuid.UUID]*entity.Location{
				homeID:     home,
				withHomeID: {ID: withHomeID, Name: "Boston", Latitude: 42.36, Longitude: -71.06},
			}, nil)

		svc := newProximityService(userRepo, friendshipRepo, locationRepo)

		result, err := svc.FriendsByDistance(ctx, viewerID)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, withHome.UserID, result[0].UserID)
		assert.Equal(t, "Boston", result[0].HomeName)
	})

	t.Run("viewer without a home is a hard error", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		locationRepo := mockrepo.NewMockLocationRepository(t)

		userRepo.EXPECT().FindByID(ctx, viewerID).
			Return(&entity.User{ID: viewerID}, nil)

		svc := newProximityService(userRepo, friendshipRepo, locationRepo)

		_, err := svc.FriendsByDistance(ctx, viewerID)
		assert.ErrorIs(t, err, domainerrors.ErrHomeNotSet)
	})

	t.Run("unknown viewer maps to user not found", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		locationRepo := mockrepo.NewMockLocationRepository(t)

		userRepo.EXPECT().FindByID(ctx, viewerID).Return(nil, repository.ErrUserNotFound)

		svc := newProximityService(userRepo, friendshipRepo, locationRepo)

		_, err := svc.FriendsByDistance(ctx, viewerID)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("degrades to empty list when friend query fails", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		locationRepo := mockrepo.NewMockLocationRepository(t)

		userRepo.EXPECT().FindByID(ctx, viewerID).Return(viewer, nil)
		friendshipRepo.EXPECT().FindFriendsOfUser(ctx, viewerID).
			Return(nil, errors.New("connection refused"))

		svc := newProximityService(userRepo, friendshipRepo, locationRepo)

		result, err := svc.FriendsByDistance(ctx, viewerID)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
