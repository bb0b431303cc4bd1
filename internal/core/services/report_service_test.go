package services

import (
	"context"
	"testing"
	"time"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeMetrics(t *testing.T) {
	split := dec("70.00")

	sales := []*models.Sale{
		{TransactionType: domain.TransactionTypeSale, GrossAmount: dec("1000.00"), NetAmount: dec("900.00")},
	}
	costs := []*models.OperationalCost{
		{Category: domain.CostCategoryMarketing, Amount: dec("100.00")},
	}

	m := ComputeMetrics(split, sales, costs)

	assert.True(t, m.GrossRevenue.Equal(dec("900.00")), "gross revenue: %s", m.GrossRevenue)
	assert.True(t, m.TotalCosts.Equal(dec("100.00")), "total costs: %s", m.TotalCosts)
	assert.True(t, m.NetProfit.Equal(dec("800.00")), "net profit: %s", m.NetProfit)
	assert.True(t, m.ExpertShare.Equal(dec("560.00")), "expert share: %s", m.ExpertShare)
	assert.True(t, m.OgShare.Equal(dec("240.00")), "og share: %s", m.OgShare)
	assert.Equal(t, 1, m.TotalSalesCount)
	assert.True(t, m.AverageSaleValue.Equal(dec("900.00")))
	assert.True(t, m.CostBreakdown["marketing"].Equal(dec("100.00")))
	assert.True(t, m.CostBreakdown["technology"].IsZero())
}

func TestComputeMetricsRefundSubtracts(t *testing.T) {
	sales := []*models.Sale{
		{TransactionType: domain.TransactionTypeSale, GrossAmount: dec("500.00"), NetAmount: dec("450.00")},
		{TransactionType: domain.TransactionTypeRefund, GrossAmount: dec("-100.00"), NetAmount: dec("-90.00")},
	}

	m := ComputeMetrics(dec("50.00"), sales, nil)

	assert.True(t, m.GrossRevenue.Equal(dec("360.00")), "gross revenue: %s", m.GrossRevenue)
	assert.True(t, m.NetProfit.Equal(dec("360.00")))
	assert.True(t, m.ExpertShare.Equal(dec("180.00")))
	assert.True(t, m.OgShare.Equal(dec("180.00")))
}

func TestComputeMetricsSharesAlwaysSumToNet(t *testing.T) {
	// Splits that round awkwardly must never create or lose a cent.
	splits := []string{"33.33", "66.67", "12.50", "0.00", "100.00", "99.99"}
	sales := []*models.Sale{
		{NetAmount: dec("100.01")},
		{NetAmount: dec("0.33")},
	}
	costs := []*models.OperationalCost{
		{Category: domain.CostCategoryOther, Amount: dec("7.77")},
	}

	for _, s := range splits {
		m := ComputeMetrics(dec(s), sales, costs)
		sum := m.ExpertShare.Add(m.OgShare)
		assert.True(t, sum.Equal(m.NetProfit),
			"split %s: expert %s + og %s != net %s", s, m.ExpertShare, m.OgShare, m.NetProfit)
	}
}

func TestComputeMetricsEmptyPeriod(t *testing.T) {
	m := ComputeMetrics(dec("50.00"), nil, nil)

	assert.True(t, m.GrossRevenue.IsZero())
	assert.True(t, m.NetProfit.IsZero())
	assert.Equal(t, 0, m.TotalSalesCount)
	assert.True(t, m.AverageSaleValue.IsZero())
	// Every category present even with no costs
	assert.Len(t, m.CostBreakdown, len(domain.AllCostCategories()))
}

func newReportServiceFixture(t *testing.T) (*ReportService, *fakeExpertRepo, *fakeSaleRepo, *fakeCostRepo, *fakeReportRepo, *models.Expert) {
	t.Helper()

	expertRepo := newFakeExpertRepo()
	saleRepo := newFakeSaleRepo()
	costRepo := newFakeCostRepo()
	reportRepo := newFakeReportRepo()

	expert := &models.Expert{
		BusinessName:           "Atlas Fitness",
		ExpertName:             "Jordan Reed",
		Email:                  "jordan@atlasfit.example",
		Status:                 domain.ExpertStatusActive,
		RevenueSplitPercentage: dec("70.00"),
		CreatedByID:            1,
	}
	require.NoError(t, expertRepo.Create(context.Background(), expert))

	svc := NewReportService(reportRepo, expertRepo, saleRepo, costRepo)
	return svc, expertRepo, saleRepo, costRepo, reportRepo, expert
}

func TestGenerateReport(t *testing.T) {
	svc, _, saleRepo, costRepo, _, expert := newReportServiceFixture(t)
	ctx := context.Background()

	periodStart := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, saleRepo.Create(ctx, &models.Sale{
		ExpertID:    expert.ID,
		GrossAmount: dec("1000.00"),
		NetAmount:   dec("900.00"),
		SaleDate:    time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, costRepo.Create(ctx, &models.OperationalCost{
		ExpertID:    expert.ID,
		CreatedByID: 1,
		Category:    domain.CostCategoryMarketing,
		Description: "July ad spend",
		Amount:      dec("100.00"),
		CostDate:    time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
	}))

	report, err := svc.GenerateReport(ctx, &GenerateReportInput{
		ExpertID:    expert.ID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		ReportType:  domain.ReportTypeMonthly,
	})
	require.NoError(t, err)

	assert.True(t, report.GrossRevenue.Equal(dec("900.00")))
	assert.True(t, report.TotalCosts.Equal(dec("100.00")))
	assert.True(t, report.NetProfit.Equal(dec("800.00")))
	assert.True(t, report.ExpertShare.Equal(dec("560.00")))
	assert.True(t, report.OgShare.Equal(dec("240.00")))
	assert.False(t, report.IsFinalized)
	assert.Equal(t, "Jordan Reed", report.ExpertName)
}

func TestGenerateReportInvalidPeriod(t *testing.T) {
	svc, _, _, _, _, expert := newReportServiceFixture(t)

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.GenerateReport(context.Background(), &GenerateReportInput{
		ExpertID:    expert.ID,
		PeriodStart: start,
		PeriodEnd:   start,
		ReportType:  domain.ReportTypeMonthly,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestGenerateReportUnknownExpert(t *testing.T) {
	svc, _, _, _, _, _ := newReportServiceFixture(t)

	_, err := svc.GenerateReport(context.Background(), &GenerateReportInput{
		ExpertID:    999,
		PeriodStart: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		ReportType:  domain.ReportTypeMonthly,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegenerateReplacesDraftButNotFinalized(t *testing.T) {
	svc, _, saleRepo, _, _, expert := newReportServiceFixture(t)
	ctx := context.Background()

	input := &GenerateReportInput{
		ExpertID:    expert.ID,
		PeriodStart: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		ReportType:  domain.ReportTypeMonthly,
	}

	first, err := svc.GenerateReport(ctx, input)
	require.NoError(t, err)
	assert.True(t, first.GrossRevenue.IsZero())

	// New sale arrives, regeneration picks it up in the same row
	require.NoError(t, saleRepo.Create(ctx, &models.Sale{
		ExpertID:  expert.ID,
		NetAmount: dec("200.00"),
		SaleDate:  time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
	}))

	second, err := svc.GenerateReport(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.GrossRevenue.Equal(dec("200.00")))

	_, err = svc.FinalizeReport(ctx, second.ID)
	require.NoError(t, err)

	_, err = svc.GenerateReport(ctx, input)
	assert.ErrorIs(t, err, domain.ErrReportFinalized)
}

func TestFinalizeReportTwice(t *testing.T) {
	svc, _, _, _, _, expert := newReportServiceFixture(t)
	ctx := context.Background()

	report, err := svc.GenerateReport(ctx, &GenerateReportInput{
		ExpertID:    expert.ID,
		PeriodStart: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		ReportType:  domain.ReportTypeMonthly,
	})
	require.NoError(t, err)

	finalized, err := svc.FinalizeReport(ctx, report.ID)
	require.NoError(t, err)
	assert.True(t, finalized.IsFinalized)

	_, err = svc.FinalizeReport(ctx, report.ID)
	assert.ErrorIs(t, err, domain.ErrReportFinalized)

	err = svc.DeleteReport(ctx, report.ID)
	assert.ErrorIs(t, err, domain.ErrReportFinalized)
}
