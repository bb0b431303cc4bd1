package repositories

import (
	"context"
	"time"

	"og-partnerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// saleRepository implements SaleRepository interface
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

// Create creates a new sale
func (r *saleRepository) Create(ctx context.Context, sale *models.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// GetByID gets a sale by ID with the expert preloaded
func (r *saleRepository) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.WithContext(ctx).Preload("Expert").Where("id = ?", id).First(&sale).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// Delete deletes a sale
func (r *saleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Sale{}, id).Error
}

// ListByExpert lists sales of an expert with pagination, newest first
func (r *saleRepository) ListByExpert(ctx context.Context, expertID uint, offset, limit int) ([]*models.Sale, int64, error) {
	var sales []*models.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Sale{}).Where("expert_id = ?", expertID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("sale_date DESC").Offset(offset).Limit(limit).Find(&sales).Error; err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}

// ListByExpertPeriod lists all sales of an expert within [from, to).
// Used by report generation and summaries.
func (r *saleRepository) ListByExpertPeriod(ctx context.Context, expertID uint, from, to time.Time) ([]*models.Sale, error) {
	var sales []*models.Sale
	err := r.db.WithContext(ctx).
		Where("expert_id = ? AND sale_date >= ? AND sale_date < ?", expertID, from, to).
		Order("sale_date").
		Find(&sales).Error
	return sales, err
}
