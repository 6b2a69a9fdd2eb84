package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuggestionHandler holds dependencies for companion suggestion handlers.
type SuggestionHandler struct {
	uc     usecase.SuggestionUsecase
	logger *slog.Logger
}

// NewSuggestionHandler is the constructor for SuggestionHandler, injected by Fx.
func NewSuggestionHandler(uc usecase.SuggestionUsecase, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		uc:     uc,
		logger: logger,
	}
}

// SuggestCompanions lists non-friend users ranked by shared activities.
func (h *SuggestionHandler) SuggestCompanions(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	suggestions, err := h.uc.SuggestCompanions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions, "Companion suggestions retrieved successfully")
}
