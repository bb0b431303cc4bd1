package repositories

import (
	"context"
	"time"

	"og-partnerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// costRepository implements OperationalCostRepository interface
type costRepository struct {
	db *gorm.DB
}

// NewOperationalCostRepository creates a new operational cost repository
func NewOperationalCostRepository(db *gorm.DB) OperationalCostRepository {
	return &costRepository{db: db}
}

// Create creates a new operational cost
func (r *costRepository) Create(ctx context.Context, cost *models.OperationalCost) error {
	return r.db.WithContext(ctx).Create(cost).Error
}

// GetByID gets an operational cost by ID with relations preloaded
func (r *costRepository) GetByID(ctx context.Context, id uint) (*models.OperationalCost, error) {
	var cost models.OperationalCost
	err := r.db.WithContext(ctx).
		Preload("Expert").
		Preload("CreatedBy").
		Where("id = ?", id).
		First(&cost).Error
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

// Update updates an operational cost
func (r *costRepository) Update(ctx context.Context, cost *models.OperationalCost) error {
	return r.db.WithContext(ctx).Save(cost).Error
}

// Delete deletes an operational cost
func (r *costRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.OperationalCost{}, id).Error
}

// ListByExpert lists costs of an expert with pagination, newest first
func (r *costRepository) ListByExpert(ctx context.Context, expertID uint, offset, limit int) ([]*models.OperationalCost, int64, error) {
	var costs []*models.OperationalCost
	var total int64

	query := r.db.WithContext(ctx).Model(&models.OperationalCost{}).Where("expert_id = ?", expertID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("cost_date DESC").Offset(offset).Limit(limit).Find(&costs).Error; err != nil {
		return nil, 0, err
	}

	return costs, total, nil
}

// ListByExpertPeriod lists all costs of an expert within [from, to).
// Used by report generation and summaries.
func (r *costRepository) ListByExpertPeriod(ctx context.Context, expertID uint, from, to time.Time) ([]*models.OperationalCost, error) {
	var costs []*models.OperationalCost
	err := r.db.WithContext(ctx).
		Where("expert_id = ? AND cost_date >= ? AND cost_date < ?", expertID, from, to).
		Order("cost_date").
		Find(&costs).Error
	return costs, err
}

// ListRecurring lists recurring costs with the given frequency label.
// Used by the scheduled recurring-cost materialization job.
func (r *costRepository) ListRecurring(ctx context.Context, frequency string) ([]*models.OperationalCost, error) {
	var costs []*models.OperationalCost
	err := r.db.WithContext(ctx).
		Where("is_recurring = ? AND recurring_frequency = ?", true, frequency).
		Find(&costs).Error
	return costs, err
}
