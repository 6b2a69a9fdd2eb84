package impl

import (
	"context"
	"log/slog"
	"sort"

	"wander/config"
	"wander/internal/domain/repository"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type suggestionService struct {
	userRepo       repository.UserRepository
	friendshipRepo repository.FriendshipRepository
	activityRepo   repository.ActivityRepository
	config         *config.Config
	logger         *slog.Logger
}

// SuggestionServiceParams holds dependencies for SuggestionService, injected by Fx.
type SuggestionServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	FriendshipRepo repository.FriendshipRepository
	ActivityRepo   repository.ActivityRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSuggestionService creates a new companion suggestion service instance
func NewSuggestionService(params SuggestionServiceParams) usecase.SuggestionUsecase {
	return &suggestionService{
		userRepo:       params.UserRepo,
		friendshipRepo: params.FriendshipRepo,
		activityRepo:   params.ActivityRepo,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// SuggestCompanions ranks non-friend users by the number of activities they
// share with the viewer, fewest shared activities first.
//
// Any read failure degrades to an empty list instead of an error so the
// suggestion panel never breaks the page around it.
func (s *suggestionService) SuggestCompanions(ctx context.Context, viewerID uuid.UUID) ([]*usecase.CompanionSuggestion, error) {
	candidates, err := s.userRepo.FindAllExcept(ctx, viewerID)
	if err != nil {
		s.logger.Warn("suggestion candidate query failed, returning empty list",
			slog.String("viewer_id", viewerID.String()),
			slog.Any("error", err),
		)

		return []*usecase.CompanionSuggestion{}, nil
	}

	friendIDs, err := s.friendshipRepo.FindFriendIDs(ctx, viewerID)
	if err != nil {
		s.logger.Warn("suggestion friend query failed, returning empty list",
			slog.String("viewer_id", viewerID.String()),
			slog.Any("error", err),
		)

		return []*usecase.CompanionSuggestion{}, nil
	}

	friends := make(map[uuid.UUID]struct{}, len(friendIDs))
	for _, id := range friendIDs {
		friends[id] = struct{}{}
	}

	viewerActivities, err := s.activityRepo.FindActivityNamesByUser(ctx, viewerID)
	if err != nil {
		s.logger.Warn("suggestion viewer activity query failed, returning empty list",
			slog.String("viewer_id", viewerID.String()),
			slog.Any("error", err),
		)

		return []*usecase.CompanionSuggestion{}, nil
	}

	viewerSet := make(map[string]struct{}, len(viewerActivities))
	for _, name := range viewerActivities {
		viewerSet[name] = struct{}{}
	}

	candidateIDs := make([]uuid.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		if _, isFriend := friends[candidate.ID]; isFriend {
			continue
		}
		candidateIDs = append(candidateIDs, candidate.ID)
	}

	activitiesByUser, err := s.activityRepo.FindActivityNamesByUsers(ctx, candidateIDs)
	if err != nil {
		s.logger.Warn("suggestion candidate activity query failed, returning empty list",
			slog.String("viewer_id", viewerID.String()),
			slog.Any("error", err),
		)

		return []*usecase.CompanionSuggestion{}, nil
	}

	suggestions := make([]*usecase.CompanionSuggestion, 0, len(candidateIDs))
	for _, candidate := range candidates {
		if _, isFriend := friends[candidate.ID]; isFriend {
			continue
		}

		shared := make([]string, 0)
		for _, name := range activitiesByUser[candidate.ID] {
			if _, ok := viewerSet[name]; ok {
				shared = append(shared, name)
			}
		}

		suggestions = append(suggestions, &usecase.CompanionSuggestion{
			UserID:           candidate.ID,
			Name:             candidate.Name,
			ProfilePicture:   candidate.ProfilePicture,
			SharedActivities: shared,
			SharedCount:      len(shared),
		})
	}

	// Candidates arrive ordered by name; the stable sort keeps that order
	// within equal counts.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].SharedCount < suggestions[j].SharedCount
	})

	if s.config.Suggestion != nil && s.config.Suggestion.MaxSuggestions > 0 &&
		len(suggestions) > s.config.Suggestion.MaxSuggestions {
		suggestions = suggestions[:s.config.Suggestion.MaxSuggestions]
	}

	return suggestions, nil
}
