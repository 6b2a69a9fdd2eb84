package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
	Logger     *slog.Logger
}

// ActivityHandler holds dependencies for activity participation handlers
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC: params.ActivityUC,
		logger:     params.Logger,
	}
}

// CreateActivityRequest represents the request body for creating an activity
type CreateActivityRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ActivityNameRequest represents the request body naming an activity
type ActivityNameRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateActivity handles creating a new named activity.
func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	var req CreateActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateActivityInput{
		Name:        req.Name,
		Description: req.Description,
	}

	activity, err := h.activityUC.CreateActivity(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, activity, "Activity created successfully")
}

// JoinActivity links the current user to an activity by name.
func (h *ActivityHandler) JoinActivity(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ActivityNameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.activityUC.JoinActivity(c.Request().Context(), userID, req.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"name": req.Name}, "Joined activity successfully")
}

// LeaveActivity removes the current user's link to an activity.
func (h *ActivityHandler) LeaveActivity(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ActivityNameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.activityUC.LeaveActivity(c.Request().Context(), userID, req.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"name": req.Name}, "Left activity successfully")
}

// ListUserActivities lists the names of the activities the current user participates in.
func (h *ActivityHandler) ListUserActivities(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	activities, err := h.activityUC.ListUserActivities(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activities, "Activities retrieved successfully")
}
