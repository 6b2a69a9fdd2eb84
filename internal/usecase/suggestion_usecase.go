package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CompanionSuggestion is a candidate travel companion together with the
// activities they share with the viewer
type CompanionSuggestion struct {
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	ProfilePicture   string    `json:"profile_picture"`
	SharedActivities []string  `json:"shared_activities"`
	SharedCount      int       `json:"shared_count"`
}

// SuggestionUsecase defines the interface for companion suggestion use cases
type SuggestionUsecase interface {
	// SuggestCompanions ranks non-friend users by the number of activities
	// they share with the viewer. Read failures degrade to an empty list.
	SuggestCompanions(ctx context.Context, viewerID uuid.UUID) ([]*CompanionSuggestion, error)
}
