// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// Credential bundles a user with their stored password hash for login checks.
// It never crosses the usecase boundary outward.
type Credential struct {
	User         *entity.User
	PasswordHash string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindCredentialByEmail retrieves a user together with their password hash.
	FindCredentialByEmail(ctx context.Context, email string) (*Credential, error)

	// Create persists a new user entity with the given password hash.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// SetHomeLocation points the user's home at an existing location.
	SetHomeLocation(ctx context.Context, userID, locationID uuid.UUID) error

	// UpdatePushToken stores the user's device push token. An empty token clears it.
	UpdatePushToken(ctx context.Context, userID uuid.UUID, token string) error

	// FindAllExcept retrieves every user except the given one.
	// Used by the companion suggestion query as its candidate universe.
	FindAllExcept(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)
}
