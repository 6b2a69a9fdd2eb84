// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// CreateReview persists a new review.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		UserID:     review.UserID,
		LocationID: review.LocationID,
		Rating:     review.Rating,
		Comment:    review.Comment,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLocationNotFound.WrapMessage("location does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindReviewsByLocation retrieves all reviews for a location, newest first.
func (repo *reviewRepository) FindReviewsByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by location")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, &entity.Review{
			ID:         reviewM.ID,
			UserID:     reviewM.UserID,
			LocationID: reviewM.LocationID,
			Rating:     reviewM.Rating,
			Comment:    reviewM.Comment,
			CreatedAt:  reviewM.CreatedAt,
		})
	}

	return reviews, nil
}

// HasReview reports whether the user has already reviewed the location.
func (repo *reviewRepository) HasReview(ctx context.Context, userID, locationID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count reviews")
	}

	return count > 0, nil
}
