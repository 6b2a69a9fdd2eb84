package impl

import (
	"context"
	"log/slog"
	"sort"

	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/infra/geo"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type proximityService struct {
	userRepo       repository.UserRepository
	friendshipRepo repository.FriendshipRepository
	locationRepo   repository.LocationRepository
	logger         *slog.Logger
}

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	FriendshipRepo repository.FriendshipRepository
	LocationRepo   repository.LocationRepository
	Logger         *slog.Logger
}

// NewProximityService creates a new friend proximity service instance
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	return &proximityService{
		userRepo:       params.UserRepo,
		friendshipRepo: params.FriendshipRepo,
		locationRepo:   params.LocationRepo,
		logger:         params.Logger,
	}
}

// FriendsByDistance lists the viewer's friends ordered by great-circle
// distance from the viewer's home, nearest first.
//
// A viewer without a home location is a hard error: there is no reference
// point to measure from. Friends without a home are silently omitted, and
// read failures after the viewer lookup degrade to an empty list.
func (s *proximityService) FriendsByDistance(ctx context.Context, viewerID uuid.UUID) ([]*usecase.FriendDistance, error) {
	viewer, err := s.userRepo.FindByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if !viewer.HasHome() {
		return nil, domainerrors.ErrHomeNotSet
	}

	friends, err := s.friendshipRepo.FindFriendsOfUser(ctx, viewerID)
	if err != nil {
		s.logger.Warn("proximity friend query failed, returning empty list",
			slog.String("viewer_id", viewerID.String()),
			slog.Any("error", err),
		)

		return []*usecase.FriendDistance{}, nil
	}

	locationIDs := []uuid.UUID{*viewer.HomeLocationID}
	for _, friend := range friends {
		if friend.HomeLocationID != nil {
			locationIDs = append(locationIDs, *friend.HomeLocationID)
		}
	}

	locations, err := s.locationRepo.FindLocationsByIDs(ctx, locationIDs)
	if err != nil {
		s.logger.Warn("proximity location query failed, returning empty list",
			slog.String("viewer_id", viewerID.String()),
			slog.Any("error", err),
		)

		return []*usecase.FriendDistance{}, nil
	}

	home, ok := locations[*viewer.HomeLocationID]
	if !ok {
		return nil, domainerrors.ErrHomeNotSet.WrapMessage("home location record missing")
	}
	homePoint := geo.NewPoint(home.Latitude, home.Longitude)

	result := make([]*usecase.FriendDistance, 0, len(friends))
	for _, friend := range friends {
		if friend.HomeLocationID == nil {
			continue
		}
		friendHome, ok := locations[*friend.HomeLocationID]
		if !ok {
			continue
		}

		result = append(result, &usecase.FriendDistance{
			UserID:         friend.UserID,
			Name:           friend.Name,
			ProfilePicture: friend.ProfilePicture,
			HomeLocationID: friendHome.ID,
			HomeName:       friendHome.Name,
			DistanceMiles:  geo.Distance(homePoint, geo.NewPoint(friendHome.Latitude, friendHome.Longitude)),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceMiles < result[j].DistanceMiles
	})

	return result, nil
}
