package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/imammufiid/bnyu-admin/internal/errors"
	"github.com/imammufiid/bnyu-admin/internal/service"
	"github.com/imammufiid/bnyu-admin/internal/table"
)

// UserHandler serves the users table and the per-user detail stats.
type UserHandler struct {
	userService  service.UserService
	statsService service.StatsService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, statsService service.StatsService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		statsService: statsService,
	}
}

// ListUsers godoc
// @Summary List users
// @Description Full users table with in-memory search, sort and pagination.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive search over name and email"
// @Param sort_by query string false "Sort column" Enums(no, displayName, email, points, isVerified, lastActive)
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "1-indexed page number"
// @Param page_size query int false "Rows per page (default 10)"
// @Success 200 {object} service.UserPage
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	q := service.ListQuery{
		Search:  c.QueryParam("search"),
		SortBy:  c.QueryParam("sort_by"),
		SortDir: table.ParseDirection(c.QueryParam("sort_dir")),
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		q.Page = page
	}
	if size, err := strconv.Atoi(c.QueryParam("page_size")); err == nil {
		q.PageSize = size
	}

	pageData, err := h.userService.ListUsers(c.Request().Context(), q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "Failed to fetch users",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, pageData)
}

// GetUserStats godoc
// @Summary Per-user reminder statistics
// @Description Point total, last activity and today/week/month drink counts
// @Description for the selected user.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} service.UserStats
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/stats [get]
func (h *UserHandler) GetUserStats(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	stats, err := h.statsService.UserStats(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "Failed to fetch user stats",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, stats)
}
