package handlers

import (
	"errors"

	"og-partnerhub/internal/core/domain"
	"og-partnerhub/internal/core/services"
	"og-partnerhub/internal/pkg/pagination"
	"og-partnerhub/internal/pkg/response"
	"og-partnerhub/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles financial report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Generate handles report generation
// @Summary Generate report
// @Description Generate or regenerate a financial report for an expert's period
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.GenerateReportInput true "Report parameters"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /reports/generate [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var input services.GenerateReportInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	report, err := h.reportService.GenerateReport(c.Context(), &input)
	if err != nil {
		var ve *validation.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve)
		case errors.Is(err, domain.ErrExpertNotFound):
			return response.NotFound(c, "Expert not found")
		case errors.Is(err, domain.ErrInvalidPeriod):
			return response.UnprocessableEntity(c, "Period end must be after period start")
		case errors.Is(err, domain.ErrReportFinalized):
			return response.Conflict(c, "Report for this period is finalized")
		default:
			return response.InternalServerError(c, "Failed to generate report")
		}
	}

	return response.Created(c, "Report generated successfully", report)
}

// Get handles getting a report by ID
// @Summary Get report
// @Description Get a financial report by ID
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/{id} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid report ID")
	}

	report, err := h.reportService.GetReport(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return response.NotFound(c, "Report not found")
		}
		return response.InternalServerError(c, "Failed to get report")
	}

	return response.Success(c, "Report retrieved successfully", report)
}

// ListByExpert handles listing an expert's reports
// @Summary List expert reports
// @Description List an expert's financial reports with pagination
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expert ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /experts/{id}/reports [get]
func (h *ReportHandler) ListByExpert(c *fiber.Ctx) error {
	expertID, err := c.ParamsInt("id")
	if err != nil || expertID < 1 {
		return response.BadRequest(c, "Invalid expert ID")
	}

	params := pagination.GetParams(c)

	result, err := h.reportService.ListReports(c.Context(), uint(expertID), params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrExpertNotFound) {
			return response.NotFound(c, "Expert not found")
		}
		return response.InternalServerError(c, "Failed to list reports")
	}

	return response.Success(c, "Reports retrieved successfully",
		pagination.NewResponse(result.Reports, params, result.Total))
}

// Finalize handles report finalization
// @Summary Finalize report
// @Description Mark a report as finalized; finalized reports are immutable
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reports/{id}/finalize [post]
func (h *ReportHandler) Finalize(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid report ID")
	}

	report, err := h.reportService.FinalizeReport(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReportNotFound):
			return response.NotFound(c, "Report not found")
		case errors.Is(err, domain.ErrReportFinalized):
			return response.Conflict(c, "Report is already finalized")
		default:
			return response.InternalServerError(c, "Failed to finalize report")
		}
	}

	return response.Success(c, "Report finalized successfully", report)
}

// Delete handles draft report deletion
// @Summary Delete report
// @Description Delete a draft report; finalized reports cannot be deleted
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid report ID")
	}

	if err := h.reportService.DeleteReport(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrReportNotFound):
			return response.NotFound(c, "Report not found")
		case errors.Is(err, domain.ErrReportFinalized):
			return response.Conflict(c, "Finalized reports cannot be deleted")
		default:
			return response.InternalServerError(c, "Failed to delete report")
		}
	}

	return response.Success(c, "Report deleted successfully", nil)
}
