package handler

import (
	"log/slog"
	"net/http"
	"time"

	"wander/internal/delivery/http/response"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TripHandlerParams holds dependencies for TripHandler, injected by Fx.
type TripHandlerParams struct {
	fx.In

	TripUC usecase.TripUsecase
	Logger *slog.Logger
}

// TripHandler holds dependencies for trip planning handlers
type TripHandler struct {
	tripUC usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler
func NewTripHandler(params TripHandlerParams) *TripHandler {
	return &TripHandler{
		tripUC: params.TripUC,
		logger: params.Logger,
	}
}

// CreateTripRequest represents the request body for creating a trip
type CreateTripRequest struct {
	LocationID uuid.UUID `json:"location_id" validate:"required"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

// CreateReviewRequest represents the request body for reviewing a location
type CreateReviewRequest struct {
	LocationID uuid.UUID `json:"location_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required"`
	Comment    string    `json:"comment"`
}

// JoinByQRRequest represents the request body for joining a trip via invite QR
type JoinByQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// CreateTrip handles creating a trip with the current user enrolled as creator.
func (h *TripHandler) CreateTrip(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateTripInput{
		LocationID: req.LocationID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, trip, "Trip created successfully")
}

// JoinTrip handles enrolling the current user in an existing trip.
func (h *TripHandler) JoinTrip(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	if err := h.tripUC.JoinTrip(c.Request().Context(), userID, tripID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"trip_id": tripID.String()}, "Joined trip successfully")
}

// LeaveTrip handles removing the current user's enrollment from a trip.
func (h *TripHandler) LeaveTrip(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	if err := h.tripUC.LeaveTrip(c.Request().Context(), userID, tripID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"trip_id": tripID.String()}, "Left trip successfully")
}

// ListTrips handles listing the current user's trips split into upcoming and previous.
func (h *TripHandler) ListTrips(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	trips, err := h.tripUC.ListTrips(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trips, "Trips retrieved successfully")
}

// ListMembers handles listing the members of a trip.
func (h *TripHandler) ListMembers(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	members, err := h.tripUC.ListMembers(c.Request().Context(), tripID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, members, "Trip members retrieved successfully")
}

// CreateReview records the current user's rating for a visited location.
func (h *TripHandler) CreateReview(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateReviewInput{
		LocationID: req.LocationID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	review, err := h.tripUC.CreateReview(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// InviteQR renders a PNG QR code inviting others to join the trip.
func (h *TripHandler) InviteQR(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	png, err := h.tripUC.GenerateInviteQR(c.Request().Context(), tripID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// JoinByQR parses a scanned invite and enrolls the current user in the trip.
func (h *TripHandler) JoinByQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req JoinByQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	trip, err := h.tripUC.JoinByInviteQR(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trip, "Joined trip successfully")
}
