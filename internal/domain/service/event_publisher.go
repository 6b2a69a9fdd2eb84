package service

import (
	"context"
)

// BookingEvent represents a booking-coordination event fanned out for async
// processing, e.g., a freshly submitted rental request.
type BookingEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventType   string `json:"event_type"`           // e.g., "rental_request_submitted"
	RentalReqID string `json:"rental_request_id,omitempty"`
	RequesterID string `json:"requester_id,omitempty"`
	OwnerID     string `json:"owner_id,omitempty"`
	TripID      string `json:"trip_id,omitempty"`
	Address     string `json:"address,omitempty"`
	StartDate   string `json:"start_date,omitempty"` // RFC 3339 date
	EndDate     string `json:"end_date,omitempty"`   // RFC 3339 date
}

// Booking event types published by the workflow engine.
const (
	EventRentalRequestSubmitted = "rental_request_submitted"
	EventTripMemberJoined       = "trip_member_joined"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookingEvent publishes a booking event for async processing
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
