// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rentalRepository implements the repository.RentalRepository interface.
type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository is the constructor for rentalRepository.
func NewRentalRepository(db *gorm.DB) repository.RentalRepository {
	return &rentalRepository{
		db: db,
	}
}

// CreateRental persists a new rental listing.
func (repo *rentalRepository) CreateRental(ctx context.Context, rental *entity.Rental) error {
	rentalM := fromRentalDomain(rental)

	if err := repo.db.WithContext(ctx).Create(rentalM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rental")
	}

	rental.ID = rentalM.ID
	rental.CreatedAt = rentalM.CreatedAt

	return nil
}

// FindRentalByID retrieves a rental listing by its unique ID.
func (repo *rentalRepository) FindRentalByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	var rentalM model.RentalModel

	if err := repo.db.WithContext(ctx).First(&rentalM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRentalNotFound
		}

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	return toRentalDomain(&rentalM), nil
}

// FindOpenRentals retrieves listings whose start date lies after the given
// instant, ordered by start date.
func (repo *rentalRepository) FindOpenRentals(ctx context.Context, after time.Time) ([]*entity.Rental, error) {
	var rentalModels []*model.RentalModel

	if err := repo.db.WithContext(ctx).
		Where("start_date > ?", after).
		Order("start_date ASC").
		Find(&rentalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open rentals")
	}

	rentals := make([]*entity.Rental, 0, len(rentalModels))
	for _, rentalM := range rentalModels {
		rentals = append(rentals, toRentalDomain(rentalM))
	}

	return rentals, nil
}

// FindRentalsByOwner retrieves all listings of an owner.
func (repo *rentalRepository) FindRentalsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Rental, error) {
	var rentalModels []*model.RentalModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("start_date ASC").
		Find(&rentalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rentals by owner")
	}

	rentals := make([]*entity.Rental, 0, len(rentalModels))
	for _, rentalM := range rentalModels {
		rentals = append(rentals, toRentalDomain(rentalM))
	}

	return rentals, nil
}

// CreateRentalRequest persists a new rental request in its only state, submitted.
func (repo *rentalRepository) CreateRentalRequest(ctx context.Context, request *entity.RentalRequest) error {
	requestM := &model.RentalRequestModel{
		RequesterID: request.RequesterID,
		OwnerID:     request.OwnerID,
		Address:     request.Address,
		Comment:     request.Comment,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
	}

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("requester or owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rental request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindRequestsForOwner retrieves the pending requests addressed to an owner, newest first.
func (repo *rentalRepository) FindRequestsForOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.RentalRequest, error) {
	return repo.findRequests(ctx, "owner_id = ?", ownerID)
}

// FindRequestsByRequester retrieves the requests a user has submitted, newest first.
func (repo *rentalRepository) FindRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.RentalRequest, error) {
	return repo.findRequests(ctx, "requester_id = ?", requesterID)
}

func (repo *rentalRepository) findRequests(ctx context.Context, query string, arg any) ([]*entity.RentalRequest, error) {
	var requestModels []*model.RentalRequestModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rental requests")
	}

	requests := make([]*entity.RentalRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, &entity.RentalRequest{
			ID:          requestM.ID,
			RequesterID: requestM.RequesterID,
			OwnerID:     requestM.OwnerID,
			Address:     requestM.Address,
			Comment:     requestM.Comment,
			StartDate:   requestM.StartDate,
			EndDate:     requestM.EndDate,
			CreatedAt:   requestM.CreatedAt,
		})
	}

	return requests, nil
}

// toRentalDomain converts a persistence model to a domain entity.
func toRentalDomain(rentalM *model.RentalModel) *entity.Rental {
	return &entity.Rental{
		ID:        rentalM.ID,
		OwnerID:   rentalM.OwnerID,
		Address:   rentalM.Address,
		StartDate: rentalM.StartDate,
		EndDate:   rentalM.EndDate,
		CreatedAt: rentalM.CreatedAt,
	}
}

// fromRentalDomain converts a domain entity to a persistence model.
func fromRentalDomain(rental *entity.Rental) *model.RentalModel {
	return &model.RentalModel{
		ID:        rental.ID,
		OwnerID:   rental.OwnerID,
		Address:   rental.Address,
		StartDate: rental.StartDate,
		EndDate:   rental.EndDate,
	}
}
