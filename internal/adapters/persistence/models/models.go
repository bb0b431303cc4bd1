package models

import (
	"time"

	"og-partnerhub/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================
// Users
// ============================================================

// User represents the users table
type User struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Email        string          `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string          `gorm:"size:255;not null" json:"-"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Role         domain.UserRole `gorm:"size:20;default:'expert'" json:"role"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	Permissions  JSONMap         `gorm:"type:json" json:"permissions"` // module-based permissions for managers
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relations
	ExpertBusiness *Expert           `gorm:"foreignKey:OwnerID" json:"expert_business,omitempty"`
	CreatedExperts []Expert          `gorm:"foreignKey:CreatedByID" json:"created_experts,omitempty"`
	CreatedCosts   []OperationalCost `gorm:"foreignKey:CreatedByID" json:"created_costs,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint            `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      domain.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Permissions JSONMap `json:"permissions"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		IsActive:    u.IsActive,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ============================================================
// Experts
// ============================================================

// Expert represents the experts table
type Expert struct {
	ID                     uint                `gorm:"primaryKey" json:"id"`
	BusinessName           string              `gorm:"size:200;not null" json:"business_name"`
	ExpertName             string              `gorm:"size:100;not null" json:"expert_name"`
	Email                  string              `gorm:"size:255;not null" json:"email"`
	Phone                  *string             `gorm:"size:20" json:"phone"`
	Status                 domain.ExpertStatus `gorm:"size:20;default:'pending'" json:"status"`
	PartnershipStartDate   time.Time           `gorm:"not null" json:"partnership_start_date"`
	RevenueSplitPercentage decimal.Decimal     `gorm:"type:decimal(5,2);default:50.00" json:"revenue_split_percentage"` // expert's share of net profit

	// Contact and business info
	BusinessDescription *string `gorm:"size:1000" json:"business_description"`
	Website             *string `gorm:"size:255" json:"website"`
	SocialMedia         JSONMap `gorm:"type:json" json:"social_media"` // {platform: url}

	// Multi-tenant configuration
	Subdomain      *string `gorm:"size:50;uniqueIndex" json:"subdomain"` // for dedicated panels
	BrandingConfig JSONMap `gorm:"type:json" json:"branding_config"`    // colors, logos, etc.

	// Foreign keys
	OwnerID     *uint `json:"owner_id"`
	CreatedByID uint  `gorm:"not null" json:"created_by_id"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Owner            *User             `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedBy        *User             `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Sales            []Sale            `gorm:"foreignKey:ExpertID" json:"sales,omitempty"`
	OperationalCosts []OperationalCost `gorm:"foreignKey:ExpertID" json:"operational_costs,omitempty"`
	FinancialReports []FinancialReport `gorm:"foreignKey:ExpertID" json:"financial_reports,omitempty"`
}

func (Expert) TableName() string {
	return "experts"
}

// ExpertResponse DTO
type ExpertResponse struct {
	ID                     uint                `json:"id"`
	BusinessName           string              `json:"business_name"`
	ExpertName             string              `json:"expert_name"`
	Email                  string              `json:"email"`
	Phone                  *string             `json:"phone"`
	Status                 domain.ExpertStatus `json:"status"`
	PartnershipStartDate   time.Time           `json:"partnership_start_date"`
	RevenueSplitPercentage decimal.Decimal     `json:"revenue_split_percentage"`
	BusinessDescription    *string             `json:"business_description"`
	Website                *string             `json:"website"`
	SocialMedia            JSONMap             `json:"social_media"`
	Subdomain              *string             `json:"subdomain"`
	BrandingConfig         JSONMap             `json:"branding_config"`
	OwnerID                *uint               `json:"owner_id"`
	OwnerName              string              `json:"owner_name,omitempty"`
	CreatedByID            uint                `json:"created_by_id"`
	CreatedByName          string              `json:"created_by_name,omitempty"`
	CreatedAt              time.Time           `json:"created_at"`
	UpdatedAt              time.Time           `json:"updated_at"`
}

func (e *Expert) ToResponse() *ExpertResponse {
	resp := &ExpertResponse{
		ID:                     e.ID,
		BusinessName:           e.BusinessName,
		ExpertName:             e.ExpertName,
		Email:                  e.Email,
		Phone:                  e.Phone,
		Status:                 e.Status,
		PartnershipStartDate:   e.PartnershipStartDate,
		RevenueSplitPercentage: e.RevenueSplitPercentage,
		BusinessDescription:    e.BusinessDescription,
		Website:                e.Website,
		SocialMedia:            e.SocialMedia,
		Subdomain:              e.Subdomain,
		BrandingConfig:         e.BrandingConfig,
		OwnerID:                e.OwnerID,
		CreatedByID:            e.CreatedByID,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}

	if e.Owner != nil {
		resp.OwnerName = e.Owner.Name
	}
	if e.CreatedBy != nil {
		resp.CreatedByName = e.CreatedBy.Name
	}

	return resp
}

// ============================================================
// Sales
// ============================================================

// Sale represents the sales table
type Sale struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ExpertID uint `gorm:"not null;index" json:"expert_id"`

	// Transaction details
	TransactionType domain.TransactionType `gorm:"size:20;default:'sale'" json:"transaction_type"`
	GrossAmount     decimal.Decimal        `gorm:"type:decimal(12,2);not null" json:"gross_amount"`
	NetAmount       decimal.Decimal        `gorm:"type:decimal(12,2);not null" json:"net_amount"` // after platform fees

	// Product/service details
	ProductName     *string `gorm:"size:200" json:"product_name"`
	ProductCategory *string `gorm:"size:100" json:"product_category"`
	Quantity        int     `gorm:"default:1" json:"quantity"`

	// Customer info (anonymized reference, never PII)
	CustomerID      *string `gorm:"size:100" json:"customer_id"`
	CustomerCountry *string `gorm:"size:3" json:"customer_country"` // ISO country code

	// Timestamps
	SaleDate  time.Time `gorm:"not null;index" json:"sale_date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relation
	Expert *Expert `gorm:"foreignKey:ExpertID" json:"expert,omitempty"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleResponse DTO
type SaleResponse struct {
	ID              uint                   `json:"id"`
	ExpertID        uint                   `json:"expert_id"`
	ExpertName      string                 `json:"expert_name,omitempty"`
	TransactionType domain.TransactionType `json:"transaction_type"`
	GrossAmount     decimal.Decimal        `json:"gross_amount"`
	NetAmount       decimal.Decimal        `json:"net_amount"`
	ProductName     *string                `json:"product_name"`
	ProductCategory *string                `json:"product_category"`
	Quantity        int                    `json:"quantity"`
	CustomerID      *string                `json:"customer_id"`
	CustomerCountry *string                `json:"customer_country"`
	SaleDate        time.Time              `json:"sale_date"`
	CreatedAt       time.Time              `json:"created_at"`
}

func (s *Sale) ToResponse() *SaleResponse {
	resp := &SaleResponse{
		ID:              s.ID,
		ExpertID:        s.ExpertID,
		TransactionType: s.TransactionType,
		GrossAmount:     s.GrossAmount,
		NetAmount:       s.NetAmount,
		ProductName:     s.ProductName,
		ProductCategory: s.ProductCategory,
		Quantity:        s.Quantity,
		CustomerID:      s.CustomerID,
		CustomerCountry: s.CustomerCountry,
		SaleDate:        s.SaleDate,
		CreatedAt:       s.CreatedAt,
	}

	if s.Expert != nil {
		resp.ExpertName = s.Expert.ExpertName
	}

	return resp
}

// ============================================================
// Operational Costs
// ============================================================

// OperationalCost represents the operational_costs table
type OperationalCost struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	ExpertID    uint `gorm:"not null;index" json:"expert_id"`
	CreatedByID uint `gorm:"not null" json:"created_by_id"`

	// Cost details
	Category    domain.CostCategory `gorm:"size:20;not null" json:"category"`
	Description string              `gorm:"size:500;not null" json:"description"`
	Amount      decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"amount"`

	// Period information
	CostDate           time.Time `gorm:"not null;index" json:"cost_date"`
	IsRecurring        bool      `gorm:"default:false" json:"is_recurring"`
	RecurringFrequency *string   `gorm:"size:20" json:"recurring_frequency"` // monthly, weekly, etc.

	// Additional metadata
	ExternalReference *string `gorm:"size:100" json:"external_reference"` // invoice number, etc.
	Notes             *string `gorm:"size:1000" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Expert    *Expert `gorm:"foreignKey:ExpertID" json:"expert,omitempty"`
	CreatedBy *User   `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (OperationalCost) TableName() string {
	return "operational_costs"
}

// OperationalCostResponse DTO
type OperationalCostResponse struct {
	ID                 uint                `json:"id"`
	ExpertID           uint                `json:"expert_id"`
	ExpertName         string              `json:"expert_name,omitempty"`
	CreatedByID        uint                `json:"created_by_id"`
	CreatedByName      string              `json:"created_by_name,omitempty"`
	Category           domain.CostCategory `json:"category"`
	Description        string              `json:"description"`
	Amount             decimal.Decimal     `json:"amount"`
	CostDate           time.Time           `json:"cost_date"`
	IsRecurring        bool                `json:"is_recurring"`
	RecurringFrequency *string             `json:"recurring_frequency"`
	ExternalReference  *string             `json:"external_reference"`
	Notes              *string             `json:"notes"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func (c *OperationalCost) ToResponse() *OperationalCostResponse {
	resp := &OperationalCostResponse{
		ID:                 c.ID,
		ExpertID:           c.ExpertID,
		CreatedByID:        c.CreatedByID,
		Category:           c.Category,
		Description:        c.Description,
		Amount:             c.Amount,
		CostDate:           c.CostDate,
		IsRecurring:        c.IsRecurring,
		RecurringFrequency: c.RecurringFrequency,
		ExternalReference:  c.ExternalReference,
		Notes:              c.Notes,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}

	if c.Expert != nil {
		resp.ExpertName = c.Expert.ExpertName
	}
	if c.CreatedBy != nil {
		resp.CreatedByName = c.CreatedBy.Name
	}

	return resp
}

// ============================================================
// Financial Reports
// ============================================================

// FinancialReport represents the financial_reports table
type FinancialReport struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ExpertID uint `gorm:"not null;index" json:"expert_id"`

	// Report period
	PeriodStart time.Time         `gorm:"not null" json:"period_start"`
	PeriodEnd   time.Time         `gorm:"not null" json:"period_end"`
	ReportType  domain.ReportType `gorm:"size:50;not null" json:"report_type"`

	// Financial metrics
	GrossRevenue decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"gross_revenue"`
	TotalCosts   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_costs"`
	NetProfit    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"net_profit"`
	OgShare      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"og_share"`
	ExpertShare  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"expert_share"`

	// Additional metrics
	TotalSalesCount  int             `gorm:"default:0" json:"total_sales_count"`
	AverageSaleValue decimal.Decimal `gorm:"type:decimal(12,2);default:0.00" json:"average_sale_value"`

	// Cost breakdown by category
	CostBreakdown DecimalMap `gorm:"type:json" json:"cost_breakdown"`

	// Metadata
	GeneratedAt time.Time `gorm:"not null" json:"generated_at"`
	IsFinalized bool      `gorm:"default:false" json:"is_finalized"`

	// Relation
	Expert *Expert `gorm:"foreignKey:ExpertID" json:"expert,omitempty"`
}

func (FinancialReport) TableName() string {
	return "financial_reports"
}

// FinancialReportResponse DTO
type FinancialReportResponse struct {
	ID               uint              `json:"id"`
	ExpertID         uint              `json:"expert_id"`
	ExpertName       string            `json:"expert_name,omitempty"`
	BusinessName     string            `json:"business_name,omitempty"`
	PeriodStart      time.Time         `json:"period_start"`
	PeriodEnd        time.Time         `json:"period_end"`
	ReportType       domain.ReportType `json:"report_type"`
	GrossRevenue     decimal.Decimal   `json:"gross_revenue"`
	TotalCosts       decimal.Decimal   `json:"total_costs"`
	NetProfit        decimal.Decimal   `json:"net_profit"`
	OgShare          decimal.Decimal   `json:"og_share"`
	ExpertShare      decimal.Decimal   `json:"expert_share"`
	TotalSalesCount  int               `json:"total_sales_count"`
	AverageSaleValue decimal.Decimal   `json:"average_sale_value"`
	CostBreakdown    DecimalMap        `json:"cost_breakdown"`
	GeneratedAt      time.Time         `json:"generated_at"`
	IsFinalized      bool              `json:"is_finalized"`
}

func (r *FinancialReport) ToResponse() *FinancialReportResponse {
	resp := &FinancialReportResponse{
		ID:               r.ID,
		ExpertID:         r.ExpertID,
		PeriodStart:      r.PeriodStart,
		PeriodEnd:        r.PeriodEnd,
		ReportType:       r.ReportType,
		GrossRevenue:     r.GrossRevenue,
		TotalCosts:       r.TotalCosts,
		NetProfit:        r.NetProfit,
		OgShare:          r.OgShare,
		ExpertShare:      r.ExpertShare,
		TotalSalesCount:  r.TotalSalesCount,
		AverageSaleValue: r.AverageSaleValue,
		CostBreakdown:    r.CostBreakdown,
		GeneratedAt:      r.GeneratedAt,
		IsFinalized:      r.IsFinalized,
	}

	if r.Expert != nil {
		resp.ExpertName = r.Expert.ExpertName
		resp.BusinessName = r.Expert.BusinessName
	}

	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Expert{},
		&Sale{},
		&OperationalCost{},
		&FinancialReport{},
	)
}
