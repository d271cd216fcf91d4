package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imammufiid/bnyu-admin/internal/errors"
	"github.com/imammufiid/bnyu-admin/internal/service"
)

// FeedbackHandler serves the feedback table.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// ListFeedback godoc
// @Summary List feedback submissions
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.FeedbackRow
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /feedback [get]
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	rows, err := h.feedbackService.ListFeedback(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "Failed to fetch feedback",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, rows)
}
