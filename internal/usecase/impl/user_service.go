// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"strings"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/domain/service"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	LocationRepo repository.LocationRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		locationRepo: params.LocationRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
	}
}

// Register creates a new user account with a hashed credential
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:          email,
		Name:           input.Name,
		ProfilePicture: input.ProfilePicture,
	}

	// The unique constraint on email is the real duplicate guard; the
	// repository maps it to ErrUserAlreadyExists.
	if err := s.userRepo.Create(ctx, user, hash); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a token pair
func (s *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	credential, err := s.userRepo.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	if !s.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(credential.User.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		User:         credential.User,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetProfile retrieves a user's profile by ID
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// SetHomeLocation points the user's home at an existing location
func (s *userService) SetHomeLocation(ctx context.Context, userID, locationID uuid.UUID) error {
	// Verify the location exists before pointing the home at it.
	if _, err := s.locationRepo.FindLocationByID(ctx, locationID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound
		}

		return errors.Wrap(err, "failed to find location by id")
	}

	if err := s.userRepo.SetHomeLocation(ctx, userID, locationID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	return nil
}

// UpdatePushToken stores the user's device push token
func (s *userService) UpdatePushToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.userRepo.UpdatePushToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	return nil
}
