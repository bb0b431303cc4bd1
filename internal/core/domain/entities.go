package domain

// UserRole represents a user's role in the system
type UserRole string

const (
	RoleAdmin   UserRole = "admin"   // OG team lead - full access
	RoleManager UserRole = "manager" // OG team with module-scoped permissions
	RoleExpert  UserRole = "expert"  // Expert partner with own business panel
)

// IsValid checks if the role is a known UserRole
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleExpert:
		return true
	}
	return false
}

func (r UserRole) String() string {
	return string(r)
}

// ExpertStatus represents the lifecycle status of an expert partnership
type ExpertStatus string

const (
	ExpertStatusActive    ExpertStatus = "active"
	ExpertStatusInactive  ExpertStatus = "inactive"
	ExpertStatusPending   ExpertStatus = "pending"
	ExpertStatusSuspended ExpertStatus = "suspended"
)

// IsValid checks if the status is a known ExpertStatus
func (s ExpertStatus) IsValid() bool {
	switch s {
	case ExpertStatusActive, ExpertStatusInactive, ExpertStatusPending, ExpertStatusSuspended:
		return true
	}
	return false
}

func (s ExpertStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the lifecycle transition s -> next is allowed.
// Allowed transitions:
//
//	pending   -> active | inactive
//	active    -> inactive | suspended
//	inactive  -> active
//	suspended -> active | inactive
func (s ExpertStatus) CanTransitionTo(next ExpertStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case ExpertStatusPending:
		return next == ExpertStatusActive || next == ExpertStatusInactive
	case ExpertStatusActive:
		return next == ExpertStatusInactive || next == ExpertStatusSuspended
	case ExpertStatusInactive:
		return next == ExpertStatusActive
	case ExpertStatusSuspended:
		return next == ExpertStatusActive || next == ExpertStatusInactive
	}
	return false
}

// CostCategory represents the category of an operational cost
type CostCategory string

const (
	CostCategoryMarketing  CostCategory = "marketing"
	CostCategoryOperations CostCategory = "operations"
	CostCategoryTechnology CostCategory = "technology"
	CostCategorySupport    CostCategory = "support"
	CostCategoryOther      CostCategory = "other"
)

// IsValid checks if the category is a known CostCategory
func (c CostCategory) IsValid() bool {
	switch c {
	case CostCategoryMarketing, CostCategoryOperations, CostCategoryTechnology,
		CostCategorySupport, CostCategoryOther:
		return true
	}
	return false
}

func (c CostCategory) String() string {
	return string(c)
}

// AllCostCategories returns every known cost category.
// Used for the cost breakdown map in financial reports.
func AllCostCategories() []CostCategory {
	return []CostCategory{
		CostCategoryMarketing,
		CostCategoryOperations,
		CostCategoryTechnology,
		CostCategorySupport,
		CostCategoryOther,
	}
}

// TransactionType represents the type of a sale transaction
type TransactionType string

const (
	TransactionTypeSale       TransactionType = "sale"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeAdjustment TransactionType = "adjustment"
)

// IsValid checks if the type is a known TransactionType
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeSale, TransactionTypeRefund, TransactionTypeAdjustment:
		return true
	}
	return false
}

func (t TransactionType) String() string {
	return string(t)
}

// ReportType represents the period granularity of a financial report
type ReportType string

const (
	ReportTypeMonthly   ReportType = "monthly"
	ReportTypeQuarterly ReportType = "quarterly"
	ReportTypeYearly    ReportType = "yearly"
)

// IsValid checks if the type is a known ReportType
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeMonthly, ReportTypeQuarterly, ReportTypeYearly:
		return true
	}
	return false
}

func (t ReportType) String() string {
	return string(t)
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
