package services

import (
	"context"
	"errors"
	"time"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/adapters/persistence/repositories"
	"og-partnerhub/internal/core/domain"
	"og-partnerhub/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService handles sale transaction business logic
type SaleService struct {
	saleRepo   repositories.SaleRepository
	expertRepo repositories.ExpertRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repositories.SaleRepository,
	expertRepo repositories.ExpertRepository,
) *SaleService {
	return &SaleService{
		saleRepo:   saleRepo,
		expertRepo: expertRepo,
	}
}

// SaleCreateInput represents input for recording a sale transaction
type SaleCreateInput struct {
	ExpertID        uint                   `json:"expert_id" validate:"required"`
	TransactionType domain.TransactionType `json:"transaction_type" validate:"omitempty,oneof=sale refund adjustment"`
	GrossAmount     decimal.Decimal        `json:"gross_amount" validate:"required"`
	NetAmount       decimal.Decimal        `json:"net_amount" validate:"required"`
	ProductName     *string                `json:"product_name" validate:"omitempty,max=200"`
	ProductCategory *string                `json:"product_category" validate:"omitempty,max=100"`
	Quantity        *int                   `json:"quantity" validate:"omitempty,min=1"`
	CustomerID      *string                `json:"customer_id" validate:"omitempty,max=100"`
	CustomerCountry *string                `json:"customer_country" validate:"omitempty,len=2|len=3"`
	SaleDate        *time.Time             `json:"sale_date"`
}

// ListSalesOutput represents list sales output
type ListSalesOutput struct {
	Sales []*models.SaleResponse `json:"sales"`
	Total int64                  `json:"total"`
}

// CreateSale records a sale transaction for an expert. Customer references
// are anonymized when the caller does not supply one.
func (s *SaleService) CreateSale(ctx context.Context, input *SaleCreateInput) (*models.SaleResponse, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	exists, err := s.expertRepo.ExistsByID(ctx, input.ExpertID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrExpertMissing
	}

	txType := input.TransactionType
	if txType == "" {
		txType = domain.TransactionTypeSale
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	saleDate := time.Now().UTC()
	if input.SaleDate != nil {
		saleDate = *input.SaleDate
	}

	customerID := input.CustomerID
	if customerID == nil {
		anon := "anon-" + uuid.NewString()
		customerID = &anon
	}

	sale := &models.Sale{
		ExpertID:        input.ExpertID,
		TransactionType: txType,
		GrossAmount:     input.GrossAmount,
		NetAmount:       input.NetAmount,
		ProductName:     input.ProductName,
		ProductCategory: input.ProductCategory,
		Quantity:        quantity,
		CustomerID:      customerID,
		CustomerCountry: input.CustomerCountry,
		SaleDate:        saleDate,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return sale.ToResponse(), nil
}

// GetSale gets a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uint) (*models.SaleResponse, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return sale.ToResponse(), nil
}

// ListSales lists an expert's sales with pagination
func (s *SaleService) ListSales(ctx context.Context, expertID uint, offset, limit int) (*ListSalesOutput, error) {
	exists, err := s.expertRepo.ExistsByID(ctx, expertID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrExpertNotFound
	}

	sales, total, err := s.saleRepo.ListByExpert(ctx, expertID, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = sale.ToResponse()
	}

	return &ListSalesOutput{Sales: responses, Total: total}, nil
}

// DeleteSale deletes a sale record. Sales are immutable once recorded;
// corrections go through refund or adjustment transactions instead, so
// deletion is reserved for admins removing bad imports.
func (s *SaleService) DeleteSale(ctx context.Context, id uint) error {
	_, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSaleNotFound
		}
		return err
	}
	return s.saleRepo.Delete(ctx, id)
}
