// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rental is a listing offered by an owner for a date range.
// A listing has a single state; a request against it does not change it.
type Rental struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Address   string    `json:"address"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// IsOpen reports whether the listing is still open for requests,
// i.e., its start date lies in the future relative to now.
func (r *Rental) IsOpen(now time.Time) bool {
	return r.StartDate.After(now)
}

// RentalRequest records a requester asking an owner for an address and a date
// range, with a free-text comment. Submitted is the only modeled state: the
// owner can view pending requests, but no accept/reject transition exists in
// the data model. Kept as a known limitation rather than inventing approval
// semantics.
type RentalRequest struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Address     string    `json:"address"`
	Comment     string    `json:"comment"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
}
