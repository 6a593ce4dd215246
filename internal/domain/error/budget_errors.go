// Package error defines domain-specific errors for the PocketVision Ledger application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the
	// same (user, category, month) bucket.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category and month")

	// ErrInvalidLimitAmount is returned when the limit amount is zero or negative.
	ErrInvalidLimitAmount = errors.New("invalid limit amount")

	// ErrInvalidMonthYear is returned when the month does not match yyyy-MM.
	ErrInvalidMonthYear = errors.New("invalid month format (expected yyyy-MM)")

	// ErrNotAuthorizedToModifyBudget is returned when user is not authorized to modify a budget.
	ErrNotAuthorizedToModifyBudget = errors.New("not authorized to modify budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidLimitAmount BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidMonthYear   BudgetErrorCode = "BGT-010002"
	ErrCodeMissingBudgetFields BudgetErrorCode = "BGT-010003"

	// Conflict errors (02XXXX)
	ErrCodeBudgetAlreadyExists BudgetErrorCode = "BGT-020001"

	// Lookup/authorization errors (03XXXX)
	ErrCodeBudgetNotFound      BudgetErrorCode = "BGT-030001"
	ErrCodeNotAuthorizedBudget BudgetErrorCode = "BGT-030002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
