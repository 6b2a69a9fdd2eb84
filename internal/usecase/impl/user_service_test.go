package impl

import (
	"context"
	"testing"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	mockrepo "wander/internal/mocks/repository"
	mockservice "wander/internal/mocks/service"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func userWithEmail(email string) interface{} {
	return mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == email
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed credential", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		hasher := mockservice.NewMockPasswordHasher(t)

		hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		userRepo.EXPECT().Create(ctx, userWithEmail("alice@example.com"), "hashed").Return(nil)

		svc := NewUserService(UserServiceParams{
			UserRepo: userRepo,
			Hasher:   hasher,
		})

		user, err := svc.Register(ctx, &usecase.RegisterInput{
			Email:    "Alice@Example.com ",
			Name:     "Alice",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("rejects empty email or password", func(t *testing.T) {
		svc := NewUserService(UserServiceParams{})

		_, err := svc.Register(ctx, &usecase.RegisterInput{Email: "", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = svc.Register(ctx, &usecase.RegisterInput{Email: "a@b.c", Password: ""})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("propagates duplicate email from repository", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		hasher := mockservice.NewMockPasswordHasher(t)

		hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		userRepo.EXPECT().Create(ctx, userWithEmail("bob@example.com"), "hashed").
			Return(domainerrors.ErrUserAlreadyExists)

		svc := NewUserService(UserServiceParams{
			UserRepo: userRepo,
			Hasher:   hasher,
		})

		_, err := svc.Register(ctx, &usecase.RegisterInput{
			Email:    "bob@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("issues token pair on valid credentials", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		hasher := mockservice.NewMockPasswordHasher(t)
		tokenService := mockservice.NewMockTokenService(t)

		credential := &repository.Credential{
			User:         &entity.User{ID: userID, Email: "alice@example.com"},
			PasswordHash: "hashed",
		}
		userRepo.EXPECT().FindCredentialByEmail(ctx, "alice@example.com").Return(credential, nil)
		hasher.EXPECT().Check("secret123", "hashed").Return(true)
		tokenService.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil)

		svc := NewUserService(UserServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
		})

		out, err := svc.Login(ctx, &usecase.LoginInput{Email: "Alice@Example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, userID, out.User.ID)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)

		userRepo.EXPECT().FindCredentialByEmail(ctx, "ghost@example.com").
			Return(nil, repository.ErrUserNotFound)

		svc := NewUserService(UserServiceParams{UserRepo: userRepo})

		_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password maps to invalid credentials", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		hasher := mockservice.NewMockPasswordHasher(t)

		credential := &repository.Credential{
			User:         &entity.User{ID: userID, Email: "alice@example.com"},
			PasswordHash: "hashed",
		}
		userRepo.EXPECT().FindCredentialByEmail(ctx, "alice@example.com").Return(credential, nil)
		hasher.EXPECT().Check("wrong", "hashed").Return(false)

		svc := NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher})

		_, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_SetHomeLocation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	t.Run("points home at existing location", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		locationRepo := mockrepo.NewMockLocationRepository(t)

		locationRepo.EXPECT().FindLocationByID(ctx, locationID).
			Return(&entity.Location{ID: locationID, Name: "Lisbon"}, nil)
		userRepo.EXPECT().SetHomeLocation(ctx, userID, locationID).Return(nil)

		svc := NewUserService(UserServiceParams{UserRepo: userRepo, LocationRepo: locationRepo})

		require.NoError(t, svc.SetHomeLocation(ctx, userID, locationID))
	})

	t.Run("rejects unknown location", func(t *testing.T) {
		locationRepo := mockrepo.NewMockLocationRepository(t)

		locationRepo.EXPECT().FindLocationByID(ctx, locationID).
			Return(nil, repository.ErrLocationNotFound)

		svc := NewUserService(UserServiceParams{LocationRepo: locationRepo})

		err := svc.SetHomeLocation(ctx, userID, locationID)
		assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
	})
}

func TestUserService_UpdatePushToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("stores token", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		userRepo.EXPECT().UpdatePushToken(ctx, userID, "device-token").Return(nil)

		svc := NewUserService(UserServiceParams{UserRepo: userRepo})

		require.NoError(t, svc.UpdatePushToken(ctx, userID, "device-token"))
	})

	t.Run("unknown user maps to domain error", func(t *testing.T) {
		userRepo := mockrepo.NewMockUserRepository(t)
		userRepo.EXPECT().UpdatePushToken(ctx, userID, "device-token").
			Return(repository.ErrUserNotFound)

		svc := NewUserService(UserServiceParams{UserRepo: userRepo})

		err := svc.UpdatePushToken(ctx, userID, "device-token")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
