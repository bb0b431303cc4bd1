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

// CostHandler handles operational cost endpoints
type CostHandler struct {
	costService *services.CostService
}

// NewCostHandler creates a new cost handler
func NewCostHandler(costService *services.CostService) *CostHandler {
	return &CostHandler{costService: costService}
}

// Create handles recording an operational cost
// @Summary Record cost
// @Description Record an operational cost against an expert
// @Tags Costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CostCreateInput true "Cost data"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /costs [post]
func (h *CostHandler) Create(c *fiber.Ctx) error {
	creatorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CostCreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cost, err := h.costService.CreateCost(c.Context(), creatorID, &input)
	if err != nil {
		var ve *validation.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve)
		case errors.Is(err, domain.ErrExpertMissing):
			return response.UnprocessableEntity(c, "Referenced expert does not exist")
		case errors.Is(err, domain.ErrUserMissing):
			return response.UnprocessableEntity(c, "Creating user does not exist")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.UnprocessableEntity(c, "Amount must not be negative")
		default:
			return response.InternalServerError(c, "Failed to record cost")
		}
	}

	return response.Created(c, "Cost recorded successfully", cost)
}

// Get handles getting a cost by ID
// @Summary Get cost
// @Description Get an operational cost by ID
// @Tags Costs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cost ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /costs/{id} [get]
func (h *CostHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid cost ID")
	}

	cost, err := h.costService.GetCost(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrCostNotFound) {
			return response.NotFound(c, "Cost not found")
		}
		return response.InternalServerError(c, "Failed to get cost")
	}

	return response.Success(c, "Cost retrieved successfully", cost)
}

// ListByExpert handles listing an expert's costs
// @Summary List expert costs
// @Description List an expert's operational costs with pagination
// @Tags Costs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expert ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /experts/{id}/costs [get]
func (h *CostHandler) ListByExpert(c *fiber.Ctx) error {
	expertID, err := c.ParamsInt("id")
	if err != nil || expertID < 1 {
		return response.BadRequest(c, "Invalid expert ID")
	}

	params := pagination.GetParams(c)

	result, err := h.costService.ListCosts(c.Context(), uint(expertID), params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrExpertNotFound) {
			return response.NotFound(c, "Expert not found")
		}
		return response.InternalServerError(c, "Failed to list costs")
	}

	return response.Success(c, "Costs retrieved successfully",
		pagination.NewResponse(result.Costs, params, result.Total))
}

// Update handles partial cost updates
// @Summary Update cost
// @Description Apply a partial update to an operational cost
// @Tags Costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cost ID"
// @Param body body services.CostUpdateInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /costs/{id} [patch]
func (h *CostHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid cost ID")
	}

	var input services.CostUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cost, err := h.costService.UpdateCost(c.Context(), uint(id), &input)
	if err != nil {
		var ve *validation.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve)
		case errors.Is(err, domain.ErrCostNotFound):
			return response.NotFound(c, "Cost not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.UnprocessableEntity(c, "Amount must not be negative")
		default:
			return response.InternalServerError(c, "Failed to update cost")
		}
	}

	return response.Success(c, "Cost updated successfully", cost)
}

// Delete handles cost deletion
// @Summary Delete cost
// @Description Delete an operational cost
// @Tags Costs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cost ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /costs/{id} [delete]
func (h *CostHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid cost ID")
	}

	if err := h.costService.DeleteCost(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrCostNotFound) {
			return response.NotFound(c, "Cost not found")
		}
		return response.InternalServerError(c, "Failed to delete cost")
	}

	return response.Success(c, "Cost deleted successfully", nil)
}
