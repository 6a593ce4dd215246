// Package error defines domain-specific errors for the PocketVision Ledger application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNotAuthorizedToModifyExpense is returned when user is not authorized to modify an expense.
	ErrNotAuthorizedToModifyExpense = errors.New("not authorized to modify expense")

	// ErrInvalidExpenseAmount is returned when the amount is zero, negative, or above the sanity ceiling.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrMissingExpenseCategory is returned when no category is provided for an expense.
	ErrMissingExpenseCategory = errors.New("expense category is required")

	// ErrMissingExpenseDate is returned when no expense date is provided.
	ErrMissingExpenseDate = errors.New("expense date is required")

	// ErrExpenseNoteTooLong is returned when the note exceeds the maximum length.
	ErrExpenseNoteTooLong = errors.New("note too long")

	// ErrInvalidPaymentMethod is returned when the payment method is not a known value.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrEmptySearchKeyword is returned when a search is attempted with a blank keyword.
	ErrEmptySearchKeyword = errors.New("search keyword is required")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010001"
	ErrCodeMissingExpenseCategory ExpenseErrorCode = "EXP-010002"
	ErrCodeMissingExpenseDate     ExpenseErrorCode = "EXP-010003"
	ErrCodeExpenseNoteTooLong     ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidPaymentMethod   ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010006"
	ErrCodeEmptySearchKeyword     ExpenseErrorCode = "EXP-010007"

	// Lookup/authorization errors (02XXXX)
	ErrCodeExpenseNotFound       ExpenseErrorCode = "EXP-020001"
	ErrCodeNotAuthorizedExpense  ExpenseErrorCode = "EXP-020002"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
