package services

import (
	"context"
	"errors"
	"time"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/adapters/persistence/repositories"
	"og-partnerhub/internal/core/domain"
	"og-partnerhub/internal/pkg/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CostService handles operational cost business logic
type CostService struct {
	costRepo   repositories.OperationalCostRepository
	expertRepo repositories.ExpertRepository
	userRepo   repositories.UserRepository
}

// NewCostService creates a new cost service
func NewCostService(
	costRepo repositories.OperationalCostRepository,
	expertRepo repositories.ExpertRepository,
	userRepo repositories.UserRepository,
) *CostService {
	return &CostService{
		costRepo:   costRepo,
		expertRepo: expertRepo,
		userRepo:   userRepo,
	}
}

// CostCreateInput represents input for recording an operational cost
type CostCreateInput struct {
	ExpertID           uint                `json:"expert_id" validate:"required"`
	Category           domain.CostCategory `json:"category" validate:"required,oneof=marketing operations technology support other"`
	Description        string              `json:"description" validate:"required,max=500"`
	Amount             decimal.Decimal     `json:"amount" validate:"required"`
	CostDate           *time.Time          `json:"cost_date"`
	IsRecurring        bool                `json:"is_recurring"`
	RecurringFrequency *string             `json:"recurring_frequency" validate:"omitempty,oneof=monthly weekly yearly"`
	ExternalReference  *string             `json:"external_reference" validate:"omitempty,max=100"`
	Notes              *string             `json:"notes" validate:"omitempty,max=1000"`
}

// CostUpdateInput represents partial update input. Only non-nil fields
// are applied; omitted fields are left untouched.
type CostUpdateInput struct {
	Category           *domain.CostCategory `json:"category" validate:"omitempty,oneof=marketing operations technology support other"`
	Description        *string              `json:"description" validate:"omitempty,max=500"`
	Amount             *decimal.Decimal     `json:"amount"`
	CostDate           *time.Time           `json:"cost_date"`
	IsRecurring        *bool                `json:"is_recurring"`
	RecurringFrequency *string              `json:"recurring_frequency" validate:"omitempty,oneof=monthly weekly yearly"`
	ExternalReference  *string              `json:"external_reference" validate:"omitempty,max=100"`
	Notes              *string              `json:"notes" validate:"omitempty,max=1000"`
}

// ListCostsOutput represents list costs output
type ListCostsOutput struct {
	Costs []*models.OperationalCostResponse `json:"costs"`
	Total int64                             `json:"total"`
}

// CreateCost records an operational cost against an expert. creatorID is
// the authenticated user entering the cost.
func (s *CostService) CreateCost(ctx context.Context, creatorID uint, input *CostCreateInput) (*models.OperationalCostResponse, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	expertExists, err := s.expertRepo.ExistsByID(ctx, input.ExpertID)
	if err != nil {
		return nil, err
	}
	if !expertExists {
		return nil, domain.ErrExpertMissing
	}

	userExists, err := s.userRepo.ExistsByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, domain.ErrUserMissing
	}

	costDate := time.Now().UTC()
	if input.CostDate != nil {
		costDate = *input.CostDate
	}

	cost := &models.OperationalCost{
		ExpertID:           input.ExpertID,
		CreatedByID:        creatorID,
		Category:           input.Category,
		Description:        input.Description,
		Amount:             input.Amount,
		CostDate:           costDate,
		IsRecurring:        input.IsRecurring,
		RecurringFrequency: input.RecurringFrequency,
		ExternalReference:  input.ExternalReference,
		Notes:              input.Notes,
	}

	if err := s.costRepo.Create(ctx, cost); err != nil {
		return nil, err
	}

	return cost.ToResponse(), nil
}

// GetCost gets an operational cost by ID
func (s *CostService) GetCost(ctx context.Context, id uint) (*models.OperationalCostResponse, error) {
	cost, err := s.costRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCostNotFound
		}
		return nil, err
	}
	return cost.ToResponse(), nil
}

// ListCosts lists an expert's operational costs with pagination
func (s *CostService) ListCosts(ctx context.Context, expertID uint, offset, limit int) (*ListCostsOutput, error) {
	exists, err := s.expertRepo.ExistsByID(ctx, expertID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrExpertNotFound
	}

	costs, total, err := s.costRepo.ListByExpert(ctx, expertID, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.OperationalCostResponse, len(costs))
	for i, c := range costs {
		responses[i] = c.ToResponse()
	}

	return &ListCostsOutput{Costs: responses, Total: total}, nil
}

// UpdateCost applies a partial update to an operational cost
func (s *CostService) UpdateCost(ctx context.Context, id uint, input *CostUpdateInput) (*models.OperationalCostResponse, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	cost, err := s.costRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCostNotFound
		}
		return nil, err
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		cost.Amount = *input.Amount
	}
	if input.Category != nil {
		cost.Category = *input.Category
	}
	if input.Description != nil {
		cost.Description = *input.Description
	}
	if input.CostDate != nil {
		cost.CostDate = *input.CostDate
	}
	if input.IsRecurring != nil {
		cost.IsRecurring = *input.IsRecurring
	}
	if input.RecurringFrequency != nil {
		cost.RecurringFrequency = input.RecurringFrequency
	}
	if input.ExternalReference != nil {
		cost.ExternalReference = input.ExternalReference
	}
	if input.Notes != nil {
		cost.Notes = input.Notes
	}

	if err := s.costRepo.Update(ctx, cost); err != nil {
		return nil, err
	}

	return cost.ToResponse(), nil
}

// DeleteCost deletes an operational cost
func (s *CostService) DeleteCost(ctx context.Context, id uint) error {
	_, err := s.costRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCostNotFound
		}
		return err
	}
	return s.costRepo.Delete(ctx, id)
}
