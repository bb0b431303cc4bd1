package services

import (
	"context"
	"errors"
	"log"
	"time"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/adapters/persistence/repositories"
	"og-partnerhub/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled background jobs:
//   - materialize recurring operational costs into concrete entries
//   - generate previous-month draft reports for active experts
type CronService struct {
	cron          *cron.Cron
	expertRepo    repositories.ExpertRepository
	costRepo      repositories.OperationalCostRepository
	reportService *ReportService
}

// NewCronService creates a new cron service
func NewCronService(
	expertRepo repositories.ExpertRepository,
	costRepo repositories.OperationalCostRepository,
	reportService *ReportService,
) *CronService {
	return &CronService{
		cron:          cron.New(),
		expertRepo:    expertRepo,
		costRepo:      costRepo,
		reportService: reportService,
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	// Monthly recurring costs: 1st of month at 01:00
	if _, err := s.cron.AddFunc("0 1 1 * *", func() {
		s.materializeRecurringCosts("monthly")
	}); err != nil {
		log.Printf("❌ Cron registration error (monthly costs): %v", err)
	}

	// Weekly recurring costs: every Monday at 01:00
	if _, err := s.cron.AddFunc("0 1 * * MON", func() {
		s.materializeRecurringCosts("weekly")
	}); err != nil {
		log.Printf("❌ Cron registration error (weekly costs): %v", err)
	}

	// Previous-month draft reports: 1st of month at 02:00
	if _, err := s.cron.AddFunc("0 2 1 * *", func() {
		s.generateMonthlyReports()
	}); err != nil {
		log.Printf("❌ Cron registration error (monthly reports): %v", err)
	}

	s.cron.Start()
	log.Println("🚀 CronService started")
}

// Stop gracefully stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

// materializeRecurringCosts clones recurring cost templates into
// dated, non-recurring entries so period queries pick them up.
func (s *CronService) materializeRecurringCosts(frequency string) {
	ctx := context.Background()
	now := time.Now().UTC()

	templates, err := s.costRepo.ListRecurring(ctx, frequency)
	if err != nil {
		log.Printf("❌ Recurring cost query error: %v", err)
		return
	}

	created := 0
	for _, tpl := range templates {
		entry := &models.OperationalCost{
			ExpertID:          tpl.ExpertID,
			CreatedByID:       tpl.CreatedByID,
			Category:          tpl.Category,
			Description:       tpl.Description,
			Amount:            tpl.Amount,
			CostDate:          now,
			IsRecurring:       false,
			ExternalReference: tpl.ExternalReference,
			Notes:             tpl.Notes,
		}
		if err := s.costRepo.Create(ctx, entry); err != nil {
			log.Printf("❌ Recurring cost materialization error (cost %d): %v", tpl.ID, err)
			continue
		}
		created++
	}

	if created > 0 {
		log.Printf("💸 Materialized %d %s recurring costs", created, frequency)
	}
}

// generateMonthlyReports creates a draft monthly report for the previous
// calendar month for every active expert. Finalized reports are skipped.
func (s *CronService) generateMonthlyReports() {
	ctx := context.Background()
	now := time.Now().UTC()

	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	periodEnd := periodStart.AddDate(0, 1, 0)

	experts, err := s.expertRepo.ListByStatus(ctx, domain.ExpertStatusActive)
	if err != nil {
		log.Printf("❌ Monthly report expert query error: %v", err)
		return
	}

	generated := 0
	for _, expert := range experts {
		_, err := s.reportService.GenerateReport(ctx, &GenerateReportInput{
			ExpertID:    expert.ID,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			ReportType:  domain.ReportTypeMonthly,
		})
		if err != nil {
			if errors.Is(err, domain.ErrReportFinalized) {
				continue
			}
			log.Printf("❌ Monthly report generation error (expert %d): %v", expert.ID, err)
			continue
		}
		generated++
	}

	if generated > 0 {
		log.Printf("📊 Generated %d draft monthly reports for %s", generated, periodStart.Format("2006-01"))
	}
}
