// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for location reviews.
type ReviewRepository interface {
	// CreateReview persists a new review.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewsByLocation retrieves all reviews for a location, newest first.
	FindReviewsByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Review, error)

	// HasReview reports whether the user has already reviewed the location.
	HasReview(ctx context.Context, userID, locationID uuid.UUID) (bool, error)
}
