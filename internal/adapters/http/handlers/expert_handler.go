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

// ExpertHandler handles expert partnership endpoints
type ExpertHandler struct {
	expertService *services.ExpertService
}

// NewExpertHandler creates a new expert handler
func NewExpertHandler(expertService *services.ExpertService) *ExpertHandler {
	return &ExpertHandler{expertService: expertService}
}

// Create handles expert creation
// @Summary Create expert
// @Description Create a new expert partnership (manager or admin)
// @Tags Experts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ExpertCreateInput true "Expert data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /experts [post]
func (h *ExpertHandler) Create(c *fiber.Ctx) error {
	creatorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.ExpertCreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	expert, err := h.expertService.CreateExpert(c.Context(), creatorID, &input)
	if err != nil {
		var ve *validation.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve)
		case errors.Is(err, domain.ErrSplitOutOfRange):
			return response.UnprocessableEntity(c, "Revenue split must be between 0 and 100")
		case errors.Is(err, domain.ErrSubdomainTaken):
			return response.Conflict(c, "Subdomain already in use")
		case errors.Is(err, domain.ErrOwnerNotFound):
			return response.UnprocessableEntity(c, "Owner user does not exist")
		case errors.Is(err, domain.ErrOwnerAlreadyBound):
			return response.Conflict(c, "Owner already has an expert business")
		case errors.Is(err, domain.ErrCreatorNotFound):
			return response.UnprocessableEntity(c, "Creating user does not exist")
		default:
			return response.InternalServerError(c, "Failed to create expert")
		}
	}

	return response.Created(c, "Expert created successfully", expert)
}

// Get handles getting an expert by ID
// @Summary Get expert
// @Description Get an expert partnership by ID
// @Tags Experts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expert ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /experts/{id} [get]
func (h *ExpertHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid expert ID")
	}

	expert, err := h.expertService.GetExpert(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrExpertNotFound) {
			return response.NotFound(c, "Expert not found")
		}
		return response.InternalServerError(c, "Failed to get expert")
	}

	return response.Success(c, "Expert retrieved successfully", expert)
}

// GetBySubdomain handles tenant subdomain lookups
// @Summary Get expert by subdomain
// @Description Resolve an expert partnership from its panel subdomain
// @Tags Experts
// @Produce json
// @Param subdomain path string true "Tenant subdomain"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /experts/subdomain/{subdomain} [get]
func (h *ExpertHandler) GetBySubdomain(c *fiber.Ctx) error {
	subdomain := c.Params("subdomain")
	if subdomain == "" {
		return response.BadRequest(c, "Subdomain is required")
	}

	expert, err := h.expertService.GetExpertBySubdomain(c.Context(), subdomain)
	if err != nil {
		if errors.Is(err, domain.ErrExpertNotFound) {
			return response.NotFound(c, "Expert not found")
		}
		return response.InternalServerError(c, "Failed to get expert")
	}

	return response.Success(c, "Expert retrieved successfully", expert)
}

// List handles listing experts
// @Summary List experts
// @Description List experts with optional status filter and pagination
// @Tags Experts
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(active, inactive, pending, suspended)
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /experts [get]
func (h *ExpertHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	status := domain.ExpertStatus(c.Query("status"))

	result, err := h.expertService.ListExperts(c.Context(), status, params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Invalid status filter")
		}
		return response.InternalServerError(c, "Failed to list experts")
	}

	return response.Success(c, "Experts retrieved successfully",
		pagination.NewResponse(result.Experts, params, result.Total))
}

// Update handles partial expert updates
// @Summary Update expert
// @Description Apply a partial update to an expert partnership
// @Tags Experts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expert ID"
// @Param body body services.ExpertUpdateInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /experts/{id} [patch]
func (h *ExpertHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid expert ID")
	}

	var input services.ExpertUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	expert, err := h.expertService.UpdateExpert(c.Context(), uint(id), &input)
	if err != nil {
		var ve *validation.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve)
		case errors.Is(err, domain.ErrExpertNotFound):
			return response.NotFound(c, "Expert not found")
		case errors.Is(err, domain.ErrStatusTransition):
			return response.UnprocessableEntity(c, "Status transition not allowed")
		case errors.Is(err, domain.ErrSplitOutOfRange):
			return response.UnprocessableEntity(c, "Revenue split must be between 0 and 100")
		case errors.Is(err, domain.ErrSubdomainTaken):
			return response.Conflict(c, "Subdomain already in use")
		default:
			return response.InternalServerError(c, "Failed to update expert")
		}
	}

	return response.Success(c, "Expert updated successfully", expert)
}

// Delete handles expert deletion
// @Summary Delete expert
// @Description Soft delete an expert partnership (admin only)
// @Tags Experts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expert ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /experts/{id} [delete]
func (h *ExpertHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid expert ID")
	}

	if err := h.expertService.DeleteExpert(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrExpertNotFound) {
			return response.NotFound(c, "Expert not found")
		}
		return response.InternalServerError(c, "Failed to delete expert")
	}

	return response.Success(c, "Expert deleted successfully", nil)
}
