package services

import (
	"context"
	"time"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/core/domain"

	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
	// experts created by user ID, for delete restriction checks
	createdExperts map[uint]int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:          make(map[uint]*models.User),
		nextID:         1,
		createdExperts: make(map[uint]int64),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	var all []*models.User
	for _, u := range r.users {
		all = append(all, u)
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id uint) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) CountCreatedExperts(_ context.Context, userID uint) (int64, error) {
	return r.createdExperts[userID], nil
}

type fakeExpertRepo struct {
	experts map[uint]*models.Expert
	nextID  uint
}

func newFakeExpertRepo() *fakeExpertRepo {
	return &fakeExpertRepo{experts: make(map[uint]*models.Expert), nextID: 1}
}

func (r *fakeExpertRepo) Create(_ context.Context, expert *models.Expert) error {
	expert.ID = r.nextID
	r.nextID++
	expert.CreatedAt = time.Now()
	expert.UpdatedAt = time.Now()
	r.experts[expert.ID] = expert
	return nil
}

func (r *fakeExpertRepo) GetByID(_ context.Context, id uint) (*models.Expert, error) {
	e, ok := r.experts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeExpertRepo) GetBySubdomain(_ context.Context, subdomain string) (*models.Expert, error) {
	for _, e := range r.experts {
		if e.Subdomain != nil && *e.Subdomain == subdomain {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeExpertRepo) GetByOwnerID(_ context.Context, ownerID uint) (*models.Expert, error) {
	for _, e := range r.experts {
		if e.OwnerID != nil && *e.OwnerID == ownerID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeExpertRepo) Update(_ context.Context, expert *models.Expert) error {
	r.experts[expert.ID] = expert
	return nil
}

func (r *fakeExpertRepo) Delete(_ context.Context, id uint) error {
	delete(r.experts, id)
	return nil
}

func (r *fakeExpertRepo) List(_ context.Context, status domain.ExpertStatus, offset, limit int) ([]*models.Expert, int64, error) {
	var all []*models.Expert
	for _, e := range r.experts {
		if status == "" || e.Status == status {
			all = append(all, e)
		}
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeExpertRepo) ListAll(_ context.Context) ([]*models.Expert, error) {
	var all []*models.Expert
	for _, e := range r.experts {
		all = append(all, e)
	}
	return all, nil
}

func (r *fakeExpertRepo) ListByStatus(_ context.Context, status domain.ExpertStatus) ([]*models.Expert, error) {
	var out []*models.Expert
	for _, e := range r.experts {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpertRepo) ExistsByID(_ context.Context, id uint) (bool, error) {
	_, ok := r.experts[id]
	return ok, nil
}

func (r *fakeExpertRepo) ExistsBySubdomain(_ context.Context, subdomain string) (bool, error) {
	for _, e := range r.experts {
		if e.Subdomain != nil && *e.Subdomain == subdomain {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeExpertRepo) CountTotal(_ context.Context) (int64, error) {
	return int64(len(r.experts)), nil
}

func (r *fakeExpertRepo) CountByStatus(_ context.Context, status domain.ExpertStatus) (int64, error) {
	var n int64
	for _, e := range r.experts {
		if e.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeSaleRepo struct {
	sales  map[uint]*models.Sale
	nextID uint
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uint]*models.Sale), nextID: 1}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *models.Sale) error {
	sale.ID = r.nextID
	r.nextID++
	sale.CreatedAt = time.Now()
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id uint) (*models.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id uint) error {
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) ListByExpert(_ context.Context, expertID uint, offset, limit int) ([]*models.Sale, int64, error) {
	var all []*models.Sale
	for _, s := range r.sales {
		if s.ExpertID == expertID {
			all = append(all, s)
		}
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeSaleRepo) ListByExpertPeriod(_ context.Context, expertID uint, from, to time.Time) ([]*models.Sale, error) {
	var out []*models.Sale
	for _, s := range r.sales {
		if s.ExpertID == expertID && !s.SaleDate.Before(from) && s.SaleDate.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeCostRepo struct {
	costs  map[uint]*models.OperationalCost
	nextID uint
}

func newFakeCostRepo() *fakeCostRepo {
	return &fakeCostRepo{costs: make(map[uint]*models.OperationalCost), nextID: 1}
}

func (r *fakeCostRepo) Create(_ context.Context, cost *models.OperationalCost) error {
	cost.ID = r.nextID
	r.nextID++
	cost.CreatedAt = time.Now()
	cost.UpdatedAt = time.Now()
	r.costs[cost.ID] = cost
	return nil
}

func (r *fakeCostRepo) GetByID(_ context.Context, id uint) (*models.OperationalCost, error) {
	c, ok := r.costs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCostRepo) Update(_ context.Context, cost *models.OperationalCost) error {
	r.costs[cost.ID] = cost
	return nil
}

func (r *fakeCostRepo) Delete(_ context.Context, id uint) error {
	delete(r.costs, id)
	return nil
}

func (r *fakeCostRepo) ListByExpert(_ context.Context, expertID uint, offset, limit int) ([]*models.OperationalCost, int64, error) {
	var all []*models.OperationalCost
	for _, c := range r.costs {
		if c.ExpertID == expertID {
			all = append(all, c)
		}
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeCostRepo) ListByExpertPeriod(_ context.Context, expertID uint, from, to time.Time) ([]*models.OperationalCost, error) {
	var out []*models.OperationalCost
	for _, c := range r.costs {
		if c.ExpertID == expertID && !c.CostDate.Before(from) && c.CostDate.Before(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCostRepo) ListRecurring(_ context.Context, frequency string) ([]*models.OperationalCost, error) {
	var out []*models.OperationalCost
	for _, c := range r.costs {
		if c.IsRecurring && c.RecurringFrequency != nil && *c.RecurringFrequency == frequency {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeReportRepo struct {
	reports map[uint]*models.FinancialReport
	nextID  uint
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uint]*models.FinancialReport), nextID: 1}
}

func (r *fakeReportRepo) Create(_ context.Context, report *models.FinancialReport) error {
	report.ID = r.nextID
	r.nextID++
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReportRepo) GetByID(_ context.Context, id uint) (*models.FinancialReport, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rep, nil
}

func (r *fakeReportRepo) GetByExpertPeriod(_ context.Context, expertID uint, periodStart, periodEnd time.Time) (*models.FinancialReport, error) {
	for _, rep := range r.reports {
		if rep.ExpertID == expertID && rep.PeriodStart.Equal(periodStart) && rep.PeriodEnd.Equal(periodEnd) {
			return rep, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeReportRepo) Update(_ context.Context, report *models.FinancialReport) error {
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReportRepo) Delete(_ context.Context, id uint) error {
	delete(r.reports, id)
	return nil
}

func (r *fakeReportRepo) ListByExpert(_ context.Context, expertID uint, offset, limit int) ([]*models.FinancialReport, int64, error) {
	var all []*models.FinancialReport
	for _, rep := range r.reports {
		if rep.ExpertID == expertID {
			all = append(all, rep)
		}
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}
