package repositories

import (
	"context"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/core/domain"

	"gorm.io/gorm"
)

// expertRepository implements ExpertRepository interface
type expertRepository struct {
	db *gorm.DB
}

// NewExpertRepository creates a new expert repository
func NewExpertRepository(db *gorm.DB) ExpertRepository {
	return &expertRepository{db: db}
}

// Create creates a new expert
func (r *expertRepository) Create(ctx context.Context, expert *models.Expert) error {
	return r.db.WithContext(ctx).Create(expert).Error
}

// GetByID gets an expert by ID with owner and creator preloaded
func (r *expertRepository) GetByID(ctx context.Context, id uint) (*models.Expert, error) {
	var expert models.Expert
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("CreatedBy").
		Where("id = ?", id).
		First(&expert).Error
	if err != nil {
		return nil, err
	}
	return &expert, nil
}

// GetBySubdomain gets an expert by its tenant subdomain
func (r *expertRepository) GetBySubdomain(ctx context.Context, subdomain string) (*models.Expert, error) {
	var expert models.Expert
	err := r.db.WithContext(ctx).Where("subdomain = ?", subdomain).First(&expert).Error
	if err != nil {
		return nil, err
	}
	return &expert, nil
}

// GetByOwnerID gets the expert business owned by a user
func (r *expertRepository) GetByOwnerID(ctx context.Context, ownerID uint) (*models.Expert, error) {
	var expert models.Expert
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&expert).Error
	if err != nil {
		return nil, err
	}
	return &expert, nil
}

// Update updates an expert
func (r *expertRepository) Update(ctx context.Context, expert *models.Expert) error {
	return r.db.WithContext(ctx).Save(expert).Error
}

// Delete soft deletes an expert
func (r *expertRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Expert{}, id).Error
}

// List lists experts with optional status filter and pagination
func (r *expertRepository) List(ctx context.Context, status domain.ExpertStatus, offset, limit int) ([]*models.Expert, int64, error) {
	var experts []*models.Expert
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Expert{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Owner").Preload("CreatedBy").
		Order("id").Offset(offset).Limit(limit).Find(&experts).Error; err != nil {
		return nil, 0, err
	}

	return experts, total, nil
}

// ListAll lists every expert without pagination. Used by platform summaries.
func (r *expertRepository) ListAll(ctx context.Context) ([]*models.Expert, error) {
	var experts []*models.Expert
	err := r.db.WithContext(ctx).Order("id").Find(&experts).Error
	return experts, err
}

// ListByStatus lists all experts in a given status without pagination.
// Used by scheduled report generation.
func (r *expertRepository) ListByStatus(ctx context.Context, status domain.ExpertStatus) ([]*models.Expert, error) {
	var experts []*models.Expert
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&experts).Error
	return experts, err
}

// ExistsByID checks if an expert exists
func (r *expertRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Expert{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsBySubdomain checks if a subdomain is already in use
func (r *expertRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Expert{}).Where("subdomain = ?", subdomain).Count(&count).Error
	return count > 0, err
}

// CountTotal counts all experts
func (r *expertRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Expert{}).Count(&count).Error
	return count, err
}

// CountByStatus counts experts in a given status
func (r *expertRepository) CountByStatus(ctx context.Context, status domain.ExpertStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Expert{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
