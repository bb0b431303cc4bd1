package domain

import "errors"

// Error kinds. Every specific error below wraps one of these so callers
// can classify with errors.Is.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrConflict             = errors.New("uniqueness conflict")
	ErrReferentialIntegrity = errors.New("referenced resource does not exist")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("token invalid")
)

// User errors
var (
	ErrUserNotFound   = wrap(ErrNotFound, "user not found")
	ErrEmailTaken     = wrap(ErrConflict, "email already registered")
	ErrUserReferenced = wrap(ErrReferentialIntegrity, "user is referenced as creator and cannot be deleted")
)

// Expert errors
var (
	ErrExpertNotFound    = wrap(ErrNotFound, "expert not found")
	ErrSubdomainTaken    = wrap(ErrConflict, "subdomain already in use")
	ErrOwnerNotFound     = wrap(ErrReferentialIntegrity, "owner user not found")
	ErrCreatorNotFound   = wrap(ErrReferentialIntegrity, "creator user not found")
	ErrStatusTransition  = wrap(ErrInvalidInput, "status transition not allowed")
	ErrSplitOutOfRange   = wrap(ErrInvalidInput, "revenue split percentage must be between 0 and 100")
	ErrOwnerAlreadyBound = wrap(ErrConflict, "user already owns an expert business")
)

// Sale and cost errors
var (
	ErrSaleNotFound  = wrap(ErrNotFound, "sale not found")
	ErrCostNotFound  = wrap(ErrNotFound, "operational cost not found")
	ErrExpertMissing = wrap(ErrReferentialIntegrity, "referenced expert does not exist")
	ErrUserMissing   = wrap(ErrReferentialIntegrity, "referenced user does not exist")
)

// Report errors
var (
	ErrReportNotFound  = wrap(ErrNotFound, "financial report not found")
	ErrReportFinalized = wrap(ErrConflict, "financial report is finalized and cannot be modified")
	ErrInvalidPeriod   = wrap(ErrInvalidInput, "report period end must be after period start")
)

type wrappedError struct {
	kind error
	msg  string
}

func (e *wrappedError) Error() string { return e.msg }
func (e *wrappedError) Unwrap() error { return e.kind }

func wrap(kind error, msg string) error {
	return &wrappedError{kind: kind, msg: msg}
}
