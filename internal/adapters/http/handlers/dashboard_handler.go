package handlers

import (
	"errors"
	"time"

	"og-partnerhub/internal/core/domain"
	"og-partnerhub/internal/core/services"
	"og-partnerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles financial summary endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// PlatformSummary handles the platform-wide summary
// @Summary Platform financial summary
// @Description Live platform-wide financial summary for a period (admin or manager)
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param from query string false "Period start (YYYY-MM-DD), defaults to first of current month"
// @Param to query string false "Period end (YYYY-MM-DD), defaults to now"
// @Success 200 {object} response.Response
// @Router /dashboard/summary [get]
func (h *DashboardHandler) PlatformSummary(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return response.BadRequest(c, "Invalid period, use YYYY-MM-DD dates")
	}

	summary, err := h.dashboardService.GetPlatformSummary(c.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return response.UnprocessableEntity(c, "Period end must be after period start")
		}
		return response.InternalServerError(c, "Failed to compute summary")
	}

	return response.Success(c, "Summary computed successfully", summary)
}

// ExpertSummary handles a single expert's summary
// @Summary Expert financial summary
// @Description Live financial summary for one expert over a period
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expert ID"
// @Param from query string false "Period start (YYYY-MM-DD), defaults to first of current month"
// @Param to query string false "Period end (YYYY-MM-DD), defaults to now"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /experts/{id}/summary [get]
func (h *DashboardHandler) ExpertSummary(c *fiber.Ctx) error {
	expertID, err := c.ParamsInt("id")
	if err != nil || expertID < 1 {
		return response.BadRequest(c, "Invalid expert ID")
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		return response.BadRequest(c, "Invalid period, use YYYY-MM-DD dates")
	}

	summary, err := h.dashboardService.GetExpertSummary(c.Context(), uint(expertID), from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrExpertNotFound):
			return response.NotFound(c, "Expert not found")
		case errors.Is(err, domain.ErrInvalidPeriod):
			return response.UnprocessableEntity(c, "Period end must be after period start")
		default:
			return response.InternalServerError(c, "Failed to compute summary")
		}
	}

	return response.Success(c, "Summary computed successfully", summary)
}

// parsePeriod reads from/to query params as YYYY-MM-DD dates. Defaults
// to the current calendar month up to now.
func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := now

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	return from, to, nil
}
