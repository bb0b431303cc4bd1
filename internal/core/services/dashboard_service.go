package services

import (
	"context"
	"errors"
	"time"

	"og-partnerhub/internal/adapters/persistence/repositories"
	"og-partnerhub/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardService aggregates financial summaries for dashboards
type DashboardService struct {
	expertRepo repositories.ExpertRepository
	saleRepo   repositories.SaleRepository
	costRepo   repositories.OperationalCostRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	expertRepo repositories.ExpertRepository,
	saleRepo repositories.SaleRepository,
	costRepo repositories.OperationalCostRepository,
) *DashboardService {
	return &DashboardService{
		expertRepo: expertRepo,
		saleRepo:   saleRepo,
		costRepo:   costRepo,
	}
}

// ExpertSummary represents a per-expert financial summary over a period
type ExpertSummary struct {
	ExpertID        uint            `json:"expert_id"`
	ExpertName      string          `json:"expert_name"`
	BusinessName    string          `json:"business_name"`
	GrossRevenue    decimal.Decimal `json:"gross_revenue"`
	TotalCosts      decimal.Decimal `json:"total_costs"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	ExpertShare     decimal.Decimal `json:"expert_share"`
	OgShare         decimal.Decimal `json:"og_share"`
	TotalSalesCount int             `json:"total_sales_count"`
}

// PlatformSummary represents the platform-wide financial summary
type PlatformSummary struct {
	PeriodStart      time.Time        `json:"period_start"`
	PeriodEnd        time.Time        `json:"period_end"`
	TotalExperts     int64            `json:"total_experts"`
	ActiveExperts    int64            `json:"active_experts"`
	GrossRevenue     decimal.Decimal  `json:"gross_revenue"`
	TotalCosts       decimal.Decimal  `json:"total_costs"`
	NetProfit        decimal.Decimal  `json:"net_profit"`
	TotalExpertShare decimal.Decimal  `json:"total_expert_share"`
	TotalOgShare     decimal.Decimal  `json:"total_og_share"`
	TotalSalesCount  int              `json:"total_sales_count"`
	ExpertBreakdown  []*ExpertSummary `json:"expert_breakdown"`
}

// GetExpertSummary computes an expert's live financial summary for a period
func (s *DashboardService) GetExpertSummary(ctx context.Context, expertID uint, from, to time.Time) (*ExpertSummary, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidPeriod
	}

	expert, err := s.expertRepo.GetByID(ctx, expertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExpertNotFound
		}
		return nil, err
	}

	sales, err := s.saleRepo.ListByExpertPeriod(ctx, expertID, from, to)
	if err != nil {
		return nil, err
	}
	costs, err := s.costRepo.ListByExpertPeriod(ctx, expertID, from, to)
	if err != nil {
		return nil, err
	}

	m := ComputeMetrics(expert.RevenueSplitPercentage, sales, costs)

	return &ExpertSummary{
		ExpertID:        expert.ID,
		ExpertName:      expert.ExpertName,
		BusinessName:    expert.BusinessName,
		GrossRevenue:    m.GrossRevenue,
		TotalCosts:      m.TotalCosts,
		NetProfit:       m.NetProfit,
		ExpertShare:     m.ExpertShare,
		OgShare:         m.OgShare,
		TotalSalesCount: m.TotalSalesCount,
	}, nil
}

// GetPlatformSummary computes the platform-wide summary for a period by
// aggregating per-expert summaries, so each expert's own split applies.
func (s *DashboardService) GetPlatformSummary(ctx context.Context, from, to time.Time) (*PlatformSummary, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidPeriod
	}

	experts, err := s.expertRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	totalExperts, err := s.expertRepo.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	activeExperts, err := s.expertRepo.CountByStatus(ctx, domain.ExpertStatusActive)
	if err != nil {
		return nil, err
	}

	summary := &PlatformSummary{
		PeriodStart:      from,
		PeriodEnd:        to,
		TotalExperts:     totalExperts,
		ActiveExperts:    activeExperts,
		GrossRevenue:     decimal.Zero,
		TotalCosts:       decimal.Zero,
		NetProfit:        decimal.Zero,
		TotalExpertShare: decimal.Zero,
		TotalOgShare:     decimal.Zero,
		ExpertBreakdown:  make([]*ExpertSummary, 0, len(experts)),
	}

	for _, expert := range experts {
		sales, err := s.saleRepo.ListByExpertPeriod(ctx, expert.ID, from, to)
		if err != nil {
			return nil, err
		}
		costs, err := s.costRepo.ListByExpertPeriod(ctx, expert.ID, from, to)
		if err != nil {
			return nil, err
		}

		m := ComputeMetrics(expert.RevenueSplitPercentage, sales, costs)

		summary.GrossRevenue = summary.GrossRevenue.Add(m.GrossRevenue)
		summary.TotalCosts = summary.TotalCosts.Add(m.TotalCosts)
		summary.NetProfit = summary.NetProfit.Add(m.NetProfit)
		summary.TotalExpertShare = summary.TotalExpertShare.Add(m.ExpertShare)
		summary.TotalOgShare = summary.TotalOgShare.Add(m.OgShare)
		summary.TotalSalesCount += m.TotalSalesCount

		summary.ExpertBreakdown = append(summary.ExpertBreakdown, &ExpertSummary{
			ExpertID:        expert.ID,
			ExpertName:      expert.ExpertName,
			BusinessName:    expert.BusinessName,
			GrossRevenue:    m.GrossRevenue,
			TotalCosts:      m.TotalCosts,
			NetProfit:       m.NetProfit,
			ExpertShare:     m.ExpertShare,
			OgShare:         m.OgShare,
			TotalSalesCount: m.TotalSalesCount,
		})
	}

	return summary, nil
}
