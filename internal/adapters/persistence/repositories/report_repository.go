package repositories

import (
	"context"
	"time"

	"og-partnerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// reportRepository implements FinancialReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewFinancialReportRepository creates a new financial report repository
func NewFinancialReportRepository(db *gorm.DB) FinancialReportRepository {
	return &reportRepository{db: db}
}

// Create creates a new financial report
func (r *reportRepository) Create(ctx context.Context, report *models.FinancialReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// GetByID gets a report by ID with the expert preloaded
func (r *reportRepository) GetByID(ctx context.Context, id uint) (*models.FinancialReport, error) {
	var report models.FinancialReport
	err := r.db.WithContext(ctx).Preload("Expert").Where("id = ?", id).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByExpertPeriod gets a report covering exactly the given period, if any
func (r *reportRepository) GetByExpertPeriod(ctx context.Context, expertID uint, periodStart, periodEnd time.Time) (*models.FinancialReport, error) {
	var report models.FinancialReport
	err := r.db.WithContext(ctx).
		Where("expert_id = ? AND period_start = ? AND period_end = ?", expertID, periodStart, periodEnd).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Update updates a financial report
func (r *reportRepository) Update(ctx context.Context, report *models.FinancialReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

// Delete deletes a financial report
func (r *reportRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.FinancialReport{}, id).Error
}

// ListByExpert lists reports of an expert with pagination, newest period first
func (r *reportRepository) ListByExpert(ctx context.Context, expertID uint, offset, limit int) ([]*models.FinancialReport, int64, error) {
	var reports []*models.FinancialReport
	var total int64

	query := r.db.WithContext(ctx).Model(&models.FinancialReport{}).Where("expert_id = ?", expertID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("period_start DESC").Offset(offset).Limit(limit).Find(&reports).Error; err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}
