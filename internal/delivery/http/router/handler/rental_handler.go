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

// RentalHandlerParams holds dependencies for RentalHandler, injected by Fx.
type RentalHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// RentalHandler holds dependencies for rental booking handlers
type RentalHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewRentalHandler is the constructor for RentalHandler
func NewRentalHandler(params RentalHandlerParams) *RentalHandler {
	return &RentalHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreateRentalRequest represents the request body for creating a rental listing
type CreateRentalRequest struct {
	Address   string    `json:"address" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// SubmitRequestRequest represents the request body for submitting a rental request
type SubmitRequestRequest struct {
	Comment   string    `json:"comment"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// CreateRental handles creating a new rental listing owned by the current user.
func (h *RentalHandler) CreateRental(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateRentalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rental input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateRentalInput{
		Address:   req.Address,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	rental, err := h.bookingUC.CreateRental(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rental, "Rental created successfully")
}

// GetRental handles retrieving a single rental listing.
func (h *RentalHandler) GetRental(c echo.Context) error {
	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid rental ID")
	}

	rental, err := h.bookingUC.GetRental(c.Request().Context(), rentalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rental, "Rental retrieved successfully")
}

// ListOpenRentals handles listing rentals still open for requests.
func (h *RentalHandler) ListOpenRentals(c echo.Context) error {
	rentals, err := h.bookingUC.ListOpenRentals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rentals, "Open rentals retrieved successfully")
}

// ListOwnRentals handles listing the rentals the current user has created.
func (h *RentalHandler) ListOwnRentals(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	rentals, err := h.bookingUC.ListRentalsByOwner(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rentals, "Rentals retrieved successfully")
}

// SubmitRequest handles submitting a request against an open rental.
func (h *RentalHandler) SubmitRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid rental ID")
	}

	var req SubmitRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rental request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SubmitRequestInput{
		RentalID:  rentalID,
		Comment:   req.Comment,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	request, err := h.bookingUC.SubmitRentalRequest(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Rental request submitted successfully")
}

// ListReceivedRequests handles listing the requests addressed to the current user.
func (h *RentalHandler) ListReceivedRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.bookingUC.ListRequestsForOwner(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Received requests retrieved successfully")
}

// ListSubmittedRequests handles listing the requests the current user has submitted.
func (h *RentalHandler) ListSubmittedRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.bookingUC.ListRequestsByRequester(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Submitted requests retrieved successfully")
}
