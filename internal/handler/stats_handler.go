package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imammufiid/bnyu-admin/internal/service"
)

// StatsHandler serves the dashboard landing page numbers.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard godoc
// @Summary Dashboard summary
// @Description Total user count and drink/not-drink reminder counts for
// @Description today, this week and this month. Fields that failed to load
// @Description are null, never zero.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardSummary
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	summary := h.statsService.DashboardSummary(c.Request().Context())
	return c.JSON(http.StatusOK, summary)
}
