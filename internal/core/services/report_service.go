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

// ReportService handles financial report generation and lifecycle
type ReportService struct {
	reportRepo repositories.FinancialReportRepository
	expertRepo repositories.ExpertRepository
	saleRepo   repositories.SaleRepository
	costRepo   repositories.OperationalCostRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repositories.FinancialReportRepository,
	expertRepo repositories.ExpertRepository,
	saleRepo repositories.SaleRepository,
	costRepo repositories.OperationalCostRepository,
) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		expertRepo: expertRepo,
		saleRepo:   saleRepo,
		costRepo:   costRepo,
	}
}

// GenerateReportInput represents input for generating a financial report
type GenerateReportInput struct {
	ExpertID    uint              `json:"expert_id" validate:"required"`
	PeriodStart time.Time         `json:"period_start" validate:"required"`
	PeriodEnd   time.Time         `json:"period_end" validate:"required"`
	ReportType  domain.ReportType `json:"report_type" validate:"required,oneof=monthly quarterly yearly"`
}

// ListReportsOutput represents list reports output
type ListReportsOutput struct {
	Reports []*models.FinancialReportResponse `json:"reports"`
	Total   int64                             `json:"total"`
}

// ReportMetrics holds the computed financial metrics for a period
type ReportMetrics struct {
	GrossRevenue     decimal.Decimal
	TotalCosts       decimal.Decimal
	NetProfit        decimal.Decimal
	ExpertShare      decimal.Decimal
	OgShare          decimal.Decimal
	TotalSalesCount  int
	AverageSaleValue decimal.Decimal
	CostBreakdown    models.DecimalMap
}

// ComputeMetrics derives period metrics from raw sales and costs.
//
// Gross revenue sums net amounts: refunds carry negative amounts and
// subtract naturally. The expert share is the split percentage of net
// profit rounded to cents, and the platform share is the remainder, so
// the two always add up to net profit exactly.
func ComputeMetrics(split decimal.Decimal, sales []*models.Sale, costs []*models.OperationalCost) *ReportMetrics {
	gross := decimal.Zero
	for _, sale := range sales {
		gross = gross.Add(sale.NetAmount)
	}

	totalCosts := decimal.Zero
	breakdown := models.DecimalMap{}
	for _, cat := range domain.AllCostCategories() {
		breakdown[cat.String()] = decimal.Zero
	}
	for _, cost := range costs {
		totalCosts = totalCosts.Add(cost.Amount)
		breakdown[cost.Category.String()] = breakdown[cost.Category.String()].Add(cost.Amount)
	}

	net := gross.Sub(totalCosts)
	expertShare := net.Mul(split).Div(decimal.NewFromInt(100)).Round(2)
	ogShare := net.Sub(expertShare)

	avg := decimal.Zero
	if len(sales) > 0 {
		avg = gross.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
	}

	return &ReportMetrics{
		GrossRevenue:     gross,
		TotalCosts:       totalCosts,
		NetProfit:        net,
		ExpertShare:      expertShare,
		OgShare:          ogShare,
		TotalSalesCount:  len(sales),
		AverageSaleValue: avg,
		CostBreakdown:    breakdown,
	}
}

// GenerateReport computes and stores a financial report for an expert's
// period. Regenerating an existing draft report replaces its metrics;
// finalized reports cannot be regenerated.
func (s *ReportService) GenerateReport(ctx context.Context, input *GenerateReportInput) (*models.FinancialReportResponse, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if !input.PeriodEnd.After(input.PeriodStart) {
		return nil, domain.ErrInvalidPeriod
	}

	expert, err := s.expertRepo.GetByID(ctx, input.ExpertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExpertNotFound
		}
		return nil, err
	}

	sales, err := s.saleRepo.ListByExpertPeriod(ctx, input.ExpertID, input.PeriodStart, input.PeriodEnd)
	if err != nil {
		return nil, err
	}
	costs, err := s.costRepo.ListByExpertPeriod(ctx, input.ExpertID, input.PeriodStart, input.PeriodEnd)
	if err != nil {
		return nil, err
	}

	metrics := ComputeMetrics(expert.RevenueSplitPercentage, sales, costs)

	existing, err := s.reportRepo.GetByExpertPeriod(ctx, input.ExpertID, input.PeriodStart, input.PeriodEnd)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.IsFinalized {
			return nil, domain.ErrReportFinalized
		}
		applyMetrics(existing, metrics)
		existing.ReportType = input.ReportType
		existing.GeneratedAt = time.Now().UTC()
		if err := s.reportRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		existing.Expert = expert
		return existing.ToResponse(), nil
	}

	report := &models.FinancialReport{
		ExpertID:    input.ExpertID,
		PeriodStart: input.PeriodStart,
		PeriodEnd:   input.PeriodEnd,
		ReportType:  input.ReportType,
		GeneratedAt: time.Now().UTC(),
		IsFinalized: false,
	}
	applyMetrics(report, metrics)

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	report.Expert = expert
	return report.ToResponse(), nil
}

// GetReport gets a financial report by ID
func (s *ReportService) GetReport(ctx context.Context, id uint) (*models.FinancialReportResponse, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return report.ToResponse(), nil
}

// ListReports lists an expert's financial reports with pagination
func (s *ReportService) ListReports(ctx context.Context, expertID uint, offset, limit int) (*ListReportsOutput, error) {
	exists, err := s.expertRepo.ExistsByID(ctx, expertID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrExpertNotFound
	}

	reports, total, err := s.reportRepo.ListByExpert(ctx, expertID, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.FinancialReportResponse, len(reports))
	for i, r := range reports {
		responses[i] = r.ToResponse()
	}

	return &ListReportsOutput{Reports: responses, Total: total}, nil
}

// FinalizeReport marks a report as finalized. Finalized reports are
// immutable and serve as the payout record for the period.
func (s *ReportService) FinalizeReport(ctx context.Context, id uint) (*models.FinancialReportResponse, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}

	if report.IsFinalized {
		return nil, domain.ErrReportFinalized
	}

	report.IsFinalized = true
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	return report.ToResponse(), nil
}

// DeleteReport deletes a draft report. Finalized reports cannot be deleted.
func (s *ReportService) DeleteReport(ctx context.Context, id uint) error {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReportNotFound
		}
		return err
	}

	if report.IsFinalized {
		return domain.ErrReportFinalized
	}

	return s.reportRepo.Delete(ctx, id)
}

func applyMetrics(report *models.FinancialReport, m *ReportMetrics) {
	report.GrossRevenue = m.GrossRevenue
	report.TotalCosts = m.TotalCosts
	report.NetProfit = m.NetProfit
	report.OgShare = m.OgShare
	report.ExpertShare = m.ExpertShare
	report.TotalSalesCount = m.TotalSalesCount
	report.AverageSaleValue = m.AverageSaleValue
	report.CostBreakdown = m.CostBreakdown
}
