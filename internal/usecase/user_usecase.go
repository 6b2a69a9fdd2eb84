package usecase

import (
	"context"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput represents the input for user registration
type RegisterInput struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profile_picture"`
}

// LoginInput represents the input for user login
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput bundles the authenticated user with their token pair
type LoginOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// UserUsecase defines the interface for account management use cases
type UserUsecase interface {
	// Register creates a new user account with a hashed credential
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile retrieves a user's profile by ID
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// SetHomeLocation points the user's home at an existing location
	SetHomeLocation(ctx context.Context, userID, locationID uuid.UUID) error

	// UpdatePushToken stores the user's device push token for owner notifications
	UpdatePushToken(ctx context.Context, userID uuid.UUID, token string) error
}
