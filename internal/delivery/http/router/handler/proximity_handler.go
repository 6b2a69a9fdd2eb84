package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProximityHandler holds dependencies for friend proximity handlers.
type ProximityHandler struct {
	uc     usecase.ProximityUsecase
	logger *slog.Logger
}

// NewProximityHandler is the constructor for ProximityHandler, injected by Fx.
func NewProximityHandler(uc usecase.ProximityUsecase, logger *slog.Logger) *ProximityHandler {
	return &ProximityHandler{
		uc:     uc,
		logger: logger,
	}
}

// FriendsByDistance lists the current user's friends ordered by distance
// from the user's home, nearest first.
func (h *ProximityHandler) FriendsByDistance(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	friends, err := h.uc.FriendsByDistance(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, friends, "Friend distances retrieved successfully")
}
