package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FriendHandler holds dependencies for friend graph handlers.
type FriendHandler struct {
	uc     usecase.FriendUsecase
	logger *slog.Logger
}

// NewFriendHandler is the constructor for FriendHandler, injected by Fx.
func NewFriendHandler(uc usecase.FriendUsecase, logger *slog.Logger) *FriendHandler {
	return &FriendHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddFriend creates the directed edge from the current user to another user.
func (h *FriendHandler) AddFriend(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid friend ID")
	}

	if err := h.uc.AddFriend(c.Request().Context(), userID, friendID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"friend_id": friendID.String()}, "Friend added successfully")
}

// RemoveFriend removes the directed edge from the current user to another user.
func (h *FriendHandler) RemoveFriend(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid friend ID")
	}

	if err := h.uc.RemoveFriend(c.Request().Context(), userID, friendID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"friend_id": friendID.String()}, "Friend removed successfully")
}

// ListFriends lists the current user's friends.
func (h *FriendHandler) ListFriends(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	friends, err := h.uc.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, friends, "Friends retrieved successfully")
}
