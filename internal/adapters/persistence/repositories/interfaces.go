package repositories

import (
	"context"
	"time"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	CountCreatedExperts(ctx context.Context, userID uint) (int64, error)
}

// ExpertRepository defines expert repository interface
type ExpertRepository interface {
	Create(ctx context.Context, expert *models.Expert) error
	GetByID(ctx context.Context, id uint) (*models.Expert, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Expert, error)
	GetByOwnerID(ctx context.Context, ownerID uint) (*models.Expert, error)
	Update(ctx context.Context, expert *models.Expert) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, status domain.ExpertStatus, offset, limit int) ([]*models.Expert, int64, error)
	ListAll(ctx context.Context) ([]*models.Expert, error)
	ListByStatus(ctx context.Context, status domain.ExpertStatus) ([]*models.Expert, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error)
	CountTotal(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.ExpertStatus) (int64, error)
}

// SaleRepository defines sale repository interface
type SaleRepository interface {
	Create(ctx context.Context, sale *models.Sale) error
	GetByID(ctx context.Context, id uint) (*models.Sale, error)
	Delete(ctx context.Context, id uint) error
	ListByExpert(ctx context.Context, expertID uint, offset, limit int) ([]*models.Sale, int64, error)
	ListByExpertPeriod(ctx context.Context, expertID uint, from, to time.Time) ([]*models.Sale, error)
}

// OperationalCostRepository defines operational cost repository interface
type OperationalCostRepository interface {
	Create(ctx context.Context, cost *models.OperationalCost) error
	GetByID(ctx context.Context, id uint) (*models.OperationalCost, error)
	Update(ctx context.Context, cost *models.OperationalCost) error
	Delete(ctx context.Context, id uint) error
	ListByExpert(ctx context.Context, expertID uint, offset, limit int) ([]*models.OperationalCost, int64, error)
	ListByExpertPeriod(ctx context.Context, expertID uint, from, to time.Time) ([]*models.OperationalCost, error)
	ListRecurring(ctx context.Context, frequency string) ([]*models.OperationalCost, error)
}

// FinancialReportRepository defines financial report repository interface
type FinancialReportRepository interface {
	Create(ctx context.Context, report *models.FinancialReport) error
	GetByID(ctx context.Context, id uint) (*models.FinancialReport, error)
	GetByExpertPeriod(ctx context.Context, expertID uint, periodStart, periodEnd time.Time) (*models.FinancialReport, error)
	Update(ctx context.Context, report *models.FinancialReport) error
	Delete(ctx context.Context, id uint) error
	ListByExpert(ctx context.Context, expertID uint, offset, limit int) ([]*models.FinancialReport, int64, error)
}
