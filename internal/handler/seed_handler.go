package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imammufiid/bnyu-admin/internal/errors"
	"github.com/imammufiid/bnyu-admin/internal/service"
)

// SeedHandler exposes the demo-data seeder for local development.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedDemo godoc
// @Summary Seed demo data
// @Description Inserts a fresh batch of demo users, points, reminders and feedback.
// @Tags seed
// @Produce json
// @Success 200 {object} service.SeedSummary
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/demo [post]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	summary, err := h.seedService.SeedDemo(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to seed demo data",
			Code:  "SEED_FAILED",
		})
	}
	return c.JSON(http.StatusOK, summary)
}
