package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wander/config"
	"wander/internal/domain/entity"
	mockrepo "wander/internal/mocks/repository"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSuggestionService(
	userRepo *mockrepo.MockUserRepository,
	friendshipRepo *mockrepo.MockFriendshipRepository,
	activityRepo *mockrepo.MockActivityRepository,
	cfg *config.Config,
) usecase.SuggestionUsecase {
	return NewSuggestionService(SuggestionServiceParams{
		UserRepo:       userRepo,
		FriendshipRepo: friendshipRepo,
		ActivityRepo:   activityRepo,
		Config:         cfg,
		Logger:         discardLogger(),
	})
}

func TestSuggestionService_SuggestCompanions(t *testing.T) {
	ctx := context.Background()
	viewerID := uuid.New()

	t.Run("ranks fewest shared activities first", func(t *testing.T) {
		noShared := &entity.User{ID: uuid.New(), Name: "NoShared"}
		oneShared := &entity.User{ID: uuid.New(), Name: "OneShared"}
		twoShared := &entity.User{ID: uuid.New(), Name: "TwoShared"}

		userRepo := mockrepo.NewMockUserRepository(t)
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		activityRepo := mockrepo.NewMockActivityRepository(t)

		userRepo.EXPECT().FindAllExcept(ctx, viewerID).
			Return([]*entity.User{noShared, oneShared, twoShared}, nil)
		friendshipRepo.EXPECT().FindFriendIDs(ctx, viewerID).
			Return([]uuid.UUID{}, nil)
		activityRepo.EXPECT().FindActivityNamesByUser(ctx, viewerID).
			Return([]string{"hiking", "surfing"}, nil)
		activityRepo.EXPECT().
			FindActivityNamesByUsers(ctx, []uuid.UUID{noShared.ID, oneShared.ID, twoShared.ID}).
			Return(map[uuid.UUID][]string{
				noShared.ID:  {"chess"},
				oneShared.ID: {"hiking", "chess"},
				twoShared.ID: {"hiking", "surfing"},
			}, nil)

		svc := newSuggestionService(userRepo, friendshipRepo, activityRepo, &config.Config{})

		suggestions, err := svc.SuggestCompanions(ctx, viewerID)
		require.NoError(t, err)
		require.Len(t, suggestions, 3)

		assert.Equal(t, noShared.ID, suggestions[0].UserID)
		assert.Equal(t, 0, suggestions[0].SharedCount)
		assert.Equal(t, oneShared.ID, suggestions[1].UserID)
		assert.Equal(t, []string{"hiking"}, suggestions[1].SharedActivities)
		assert.Equal(t, twoShared.ID, suggestions[2].UserID)
		assert.Equal(t, 2, suggestions[2].SharedCount)
	})

	t.Run("excludes existing friends", func(t *testing.T) {
		friend := &entity.User{ID: uuid.New(), Name: "Friend"}
		stranger := &entity.User{ID: uuid.New(), Name: "Stranger"}

		userRepo := mockrepo.NewMockUserRepository(t)
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		activityRepo := mockrepo.NewMockActivityRepository(t)

		userRepo.EXPECT().FindAllExcept(ctx, viewerID).
			Return([]*entity.User{friend, stranger}, nil)
		friendshipRepo.EXPECT().FindFriendIDs(ctx, viewerID).
			Return([]uuid.UUID{friend.ID}, nil)
		activityRepo.EXPECT().FindActivityNamesByUser(ctx, viewerID).
			Return([]string{"hiking"}, nil)
		activityRepo.EXPECT().FindActivityNamesByUsers(ctx, []uuid.UUID{stranger.ID}).
			Return(map[uuid.UUID][]string{stranger.ID: {"hiking"}}, nil)

		svc := newSuggestionService(userRepo, friendshipRepo, activityRepo, &config.Config{})

		suggestions, err := svc.SuggestCompanions(ctx, viewerID)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, stranger.ID, suggestions[0].UserID)
	})

	t.Run("caps list at configured maximum", func(t *testing.T) {
		users := []*entity.User{
			{ID: uuid.New(), Name: "A"},
			{ID: uuid.New(), Name: "B"},
			{ID: uuid.New(), Name: "C"},
		}

		userRepo := mockrepo.NewMockUserRepository(t)
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		activityRepo := mockrepo.NewMockActivityRepository(t)

		userRepo.EXPECT().FindAllExcept(ctx, viewerID).Return(users, nil)
		friendshipRepo.EXPECT().FindFriendIDs(ctx, viewerID).Return(nil, nil)
		activityRepo.EXPECT().FindActivityNamesByUser(ctx, viewerID).Return(nil, nil)
		activityRepo.EXPECT().
			FindActivityNamesByUsers(ctx, []uuid.UUID{users[0].ID, users[1].ID, users[2].ID}).
			Return(map[uuid.UUID][]string{}, nil)

		cfg := &config.Config{Suggestion: &config.SuggestionConfig{MaxSuggestions: 2}}
		svc := newSuggestionService(userRepo, friendshipRepo, activityRepo, cfg)

		suggestions, err := svc.SuggestCompanions(ctx, viewerID)
		require.NoError(t, err)
		assert.Len(t, suggestions, 2)
	})

	t.Run("degrades to empty list on read failure", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		activityRepo := mockrepo.NewMockActivityRepository(t)

		userRepo.EXPECT().FindAllExcept(ctx, viewerID).
			Return(nil, errors.New("connection refused"))

		svc := newSuggestionService(userRepo, friendshipRepo, activityRepo, &config.Config{})

		suggestions, err := svc.SuggestCompanions(ctx, viewerID)
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("degrades to empty list on activity read failure", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		friendshipRepo := mockrepo.NewMockFriendshipRepository(t)
		activityRepo := mockrepo.NewMockActivityRepository(t)

		userRepo.EXPECT().FindAllExcept(ctx, viewerID).
			Return([]*entity.User{{ID: uuid.New()}}, nil)
		friendshipRepo.EXPECT().FindFriendIDs(ctx, viewerID).Return(nil, nil)
		activityRepo.EXPECT().FindActivityNamesByUser(ctx, viewerID).
			Return(nil, errors.New("connection refused"))

		svc := newSuggestionService(userRepo, friendshipRepo, activityRepo, &config.Config{})

		suggestions, err := svc.SuggestCompanions(ctx, viewerID)
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})
}
