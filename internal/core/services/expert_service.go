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

// DefaultRevenueSplit is the expert's default share of net profit, in percent
var DefaultRevenueSplit = decimal.NewFromFloat(50.00)

var splitUpperBound = decimal.NewFromInt(100)

// ExpertService handles expert partnership business logic
type ExpertService struct {
	expertRepo repositories.ExpertRepository
	userRepo   repositories.UserRepository
}

// NewExpertService creates a new expert service
func NewExpertService(
	expertRepo repositories.ExpertRepository,
	userRepo repositories.UserRepository,
) *ExpertService {
	return &ExpertService{
		expertRepo: expertRepo,
		userRepo:   userRepo,
	}
}

// ExpertCreateInput represents input for creating an expert
type ExpertCreateInput struct {
	BusinessName           string                 `json:"business_name" validate:"required,max=200"`
	ExpertName             string                 `json:"expert_name" validate:"required,max=100"`
	Email                  string                 `json:"email" validate:"required,max=255,email_format"`
	Phone                  *string                `json:"phone" validate:"omitempty,max=20"`
	BusinessDescription    *string                `json:"business_description" validate:"omitempty,max=1000"`
	Website                *string                `json:"website" validate:"omitempty,max=255"`
	RevenueSplitPercentage *decimal.Decimal       `json:"revenue_split_percentage"`
	SocialMedia            map[string]interface{} `json:"social_media"`
	Subdomain              *string                `json:"subdomain" validate:"omitempty,max=50"`
	OwnerID                *uint                  `json:"owner_id"`
}

// ExpertUpdateInput represents partial update input. Only non-nil fields
// are applied; omitted fields are left untouched.
type ExpertUpdateInput struct {
	BusinessName           *string                 `json:"business_name" validate:"omitempty,max=200"`
	ExpertName             *string                 `json:"expert_name" validate:"omitempty,max=100"`
	Email                  *string                 `json:"email" validate:"omitempty,max=255,email_format"`
	Phone                  *string                 `json:"phone" validate:"omitempty,max=20"`
	Status                 *domain.ExpertStatus    `json:"status" validate:"omitempty,oneof=active inactive pending suspended"`
	BusinessDescription    *string                 `json:"business_description" validate:"omitempty,max=1000"`
	Website                *string                 `json:"website" validate:"omitempty,max=255"`
	RevenueSplitPercentage *decimal.Decimal        `json:"revenue_split_percentage"`
	SocialMedia            *map[string]interface{} `json:"social_media"`
	Subdomain              *string                 `json:"subdomain" validate:"omitempty,max=50"`
	BrandingConfig         *map[string]interface{} `json:"branding_config"`
}

// ListExpertsOutput represents list experts output
type ListExpertsOutput struct {
	Experts []*models.ExpertResponse `json:"experts"`
	Total   int64                    `json:"total"`
}

// CreateExpert creates a new expert partnership. creatorID is the
// authenticated admin/manager creating the record.
func (s *ExpertService) CreateExpert(ctx context.Context, creatorID uint, input *ExpertCreateInput) (*models.ExpertResponse, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	split := DefaultRevenueSplit
	if input.RevenueSplitPercentage != nil {
		split = *input.RevenueSplitPercentage
	}
	if err := validateSplit(split); err != nil {
		return nil, err
	}

	creatorExists, err := s.userRepo.ExistsByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if !creatorExists {
		return nil, domain.ErrCreatorNotFound
	}

	if input.OwnerID != nil {
		if err := s.checkOwner(ctx, *input.OwnerID, 0); err != nil {
			return nil, err
		}
	}

	if input.Subdomain != nil {
		taken, err := s.expertRepo.ExistsBySubdomain(ctx, *input.Subdomain)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrSubdomainTaken
		}
	}

	social := models.JSONMap(input.SocialMedia)
	if social == nil {
		social = models.JSONMap{}
	}

	expert := &models.Expert{
		BusinessName:           input.BusinessName,
		ExpertName:             input.ExpertName,
		Email:                  input.Email,
		Phone:                  input.Phone,
		Status:                 domain.ExpertStatusPending,
		PartnershipStartDate:   time.Now().UTC(),
		RevenueSplitPercentage: split,
		BusinessDescription:    input.BusinessDescription,
		Website:                input.Website,
		SocialMedia:            social,
		Subdomain:              input.Subdomain,
		BrandingConfig:         models.JSONMap{},
		OwnerID:                input.OwnerID,
		CreatedByID:            creatorID,
	}

	if err := s.expertRepo.Create(ctx, expert); err != nil {
		return nil, err
	}

	return expert.ToResponse(), nil
}

// GetExpert gets an expert by ID
func (s *ExpertService) GetExpert(ctx context.Context, id uint) (*models.ExpertResponse, error) {
	expert, err := s.expertRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExpertNotFound
		}
		return nil, err
	}
	return expert.ToResponse(), nil
}

// GetExpertBySubdomain gets an expert by its tenant subdomain
func (s *ExpertService) GetExpertBySubdomain(ctx context.Context, subdomain string) (*models.ExpertResponse, error) {
	expert, err := s.expertRepo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExpertNotFound
		}
		return nil, err
	}
	return expert.ToResponse(), nil
}

// ListExperts lists experts with optional status filter and pagination
func (s *ExpertService) ListExperts(ctx context.Context, status domain.ExpertStatus, offset, limit int) (*ListExpertsOutput, error) {
	if status != "" && !status.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	experts, total, err := s.expertRepo.List(ctx, status, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ExpertResponse, len(experts))
	for i, e := range experts {
		responses[i] = e.ToResponse()
	}

	return &ListExpertsOutput{Experts: responses, Total: total}, nil
}

// UpdateExpert applies a partial update to an expert. Status changes are
// checked against the allowed lifecycle transitions.
func (s *ExpertService) UpdateExpert(ctx context.Context, id uint, input *ExpertUpdateInput) (*models.ExpertResponse, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	expert, err := s.expertRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExpertNotFound
		}
		return nil, err
	}

	if input.Status != nil && !expert.Status.CanTransitionTo(*input.Status) {
		return nil, domain.ErrStatusTransition
	}

	if input.RevenueSplitPercentage != nil {
		if err := validateSplit(*input.RevenueSplitPercentage); err != nil {
			return nil, err
		}
		expert.RevenueSplitPercentage = *input.RevenueSplitPercentage
	}

	if input.Subdomain != nil && (expert.Subdomain == nil || *input.Subdomain != *expert.Subdomain) {
		taken, err := s.expertRepo.ExistsBySubdomain(ctx, *input.Subdomain)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrSubdomainTaken
		}
		expert.Subdomain = input.Subdomain
	}

	if input.BusinessName != nil {
		expert.BusinessName = *input.BusinessName
	}
	if input.ExpertName != nil {
		expert.ExpertName = *input.ExpertName
	}
	if input.Email != nil {
		expert.Email = *input.Email
	}
	if input.Phone != nil {
		expert.Phone = input.Phone
	}
	if input.Status != nil {
		expert.Status = *input.Status
	}
	if input.BusinessDescription != nil {
		expert.BusinessDescription = input.BusinessDescription
	}
	if input.Website != nil {
		expert.Website = input.Website
	}
	if input.SocialMedia != nil {
		expert.SocialMedia = models.JSONMap(*input.SocialMedia)
	}
	if input.BrandingConfig != nil {
		expert.BrandingConfig = models.JSONMap(*input.BrandingConfig)
	}

	if err := s.expertRepo.Update(ctx, expert); err != nil {
		return nil, err
	}

	return expert.ToResponse(), nil
}

// DeleteExpert soft deletes an expert. Historical sales, costs and
// reports keep their foreign keys and remain queryable.
func (s *ExpertService) DeleteExpert(ctx context.Context, id uint) error {
	_, err := s.expertRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExpertNotFound
		}
		return err
	}
	return s.expertRepo.Delete(ctx, id)
}

// checkOwner verifies that the owner user exists and does not already
// own another expert business (1:1 relationship).
func (s *ExpertService) checkOwner(ctx context.Context, ownerID uint, selfID uint) error {
	exists, err := s.userRepo.ExistsByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrOwnerNotFound
	}

	current, err := s.expertRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if current.ID != selfID {
		return domain.ErrOwnerAlreadyBound
	}
	return nil
}

func validateSplit(split decimal.Decimal) error {
	if split.IsNegative() || split.GreaterThan(splitUpperBound) {
		return domain.ErrSplitOutOfRange
	}
	return nil
}
