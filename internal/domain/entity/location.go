// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a geographic point of interest that users mark as home,
// travel to, and rate. Its identity is immutable once created.
type Location struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the location.
	Name        string    // Human-readable place name, e.g., "Lisbon".
	Description string    // Free-text description of the place.
	Country     string    // The country the location belongs to.
	Latitude    float64   // The geographic latitude in decimal degrees.
	Longitude   float64   // The geographic longitude in decimal degrees.
	CreatedAt   time.Time // Timestamp of when this location was created.
}

// LocationRating is the aggregate rating of a location, derived from reviews
// at read time. It is never stored.
type LocationRating struct {
	LocationID    uuid.UUID // The location being rated.
	AverageRating float64   // Mean of all review ratings, 0 when unreviewed.
	ReviewCount   int64     // Number of reviews contributing to the average.
}
