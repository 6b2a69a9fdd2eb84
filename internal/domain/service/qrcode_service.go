package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateTripInviteQR generates a QR code inviting a user to join a trip
	GenerateTripInviteQR(tripID uuid.UUID) ([]byte, error)

	// ParseTripInviteQR parses QR code data and returns the trip ID
	ParseTripInviteQR(qrData string) (uuid.UUID, error)
}
