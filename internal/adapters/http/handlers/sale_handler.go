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

// SaleHandler handles sale transaction endpoints
type SaleHandler struct {
	saleService *services.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles recording a sale transaction
// @Summary Record sale
// @Description Record a sale, refund or adjustment for an expert
// @Tags Sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SaleCreateInput true "Sale data"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var input services.SaleCreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	sale, err := h.saleService.CreateSale(c.Context(), &input)
	if err != nil {
		var ve *validation.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve)
		case errors.Is(err, domain.ErrExpertMissing):
			return response.UnprocessableEntity(c, "Referenced expert does not exist")
		default:
			return response.InternalServerError(c, "Failed to record sale")
		}
	}

	return response.Created(c, "Sale recorded successfully", sale)
}

// Get handles getting a sale by ID
// @Summary Get sale
// @Description Get a sale transaction by ID
// @Tags Sales
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sale ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sales/{id} [get]
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid sale ID")
	}

	sale, err := h.saleService.GetSale(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return response.NotFound(c, "Sale not found")
		}
		return response.InternalServerError(c, "Failed to get sale")
	}

	return response.Success(c, "Sale retrieved successfully", sale)
}

// ListByExpert handles listing an expert's sales
// @Summary List expert sales
// @Description List an expert's sale transactions with pagination
// @Tags Sales
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expert ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /experts/{id}/sales [get]
func (h *SaleHandler) ListByExpert(c *fiber.Ctx) error {
	expertID, err := c.ParamsInt("id")
	if err != nil || expertID < 1 {
		return response.BadRequest(c, "Invalid expert ID")
	}

	params := pagination.GetParams(c)

	result, err := h.saleService.ListSales(c.Context(), uint(expertID), params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrExpertNotFound) {
			return response.NotFound(c, "Expert not found")
		}
		return response.InternalServerError(c, "Failed to list sales")
	}

	return response.Success(c, "Sales retrieved successfully",
		pagination.NewResponse(result.Sales, params, result.Total))
}

// Delete handles sale deletion
// @Summary Delete sale
// @Description Delete a sale record (admin only, for correcting bad imports)
// @Tags Sales
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sale ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid sale ID")
	}

	if err := h.saleService.DeleteSale(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return response.NotFound(c, "Sale not found")
		}
		return response.InternalServerError(c, "Failed to delete sale")
	}

	return response.Success(c, "Sale deleted successfully", nil)
}
