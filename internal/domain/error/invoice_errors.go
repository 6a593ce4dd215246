// Package error defines domain-specific errors for the PocketVision Ledger application.
package error

import "errors"

// Invoice domain errors.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found in the system.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrNotAuthorizedToModifyInvoice is returned when user is not authorized to modify an invoice.
	ErrNotAuthorizedToModifyInvoice = errors.New("not authorized to modify invoice")

	// ErrUnreadableInvoice is returned when the AI extraction lacks the fields
	// needed to identify the purchase (seller name plus total or address).
	ErrUnreadableInvoice = errors.New("invoice image is unreadable or missing key fields")

	// ErrInvoiceMissingCategory is returned when converting an invoice that has
	// no category assigned yet.
	ErrInvoiceMissingCategory = errors.New("invoice has no category assigned")

	// ErrExtractionFailed is returned when the AI service call or its response
	// parsing fails.
	ErrExtractionFailed = errors.New("invoice extraction failed")
)

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnreadableInvoice      InvoiceErrorCode = "INV-010001"
	ErrCodeInvoiceMissingCategory InvoiceErrorCode = "INV-010002"
	ErrCodeMissingInvoiceFields   InvoiceErrorCode = "INV-010003"

	// Lookup/authorization errors (02XXXX)
	ErrCodeInvoiceNotFound      InvoiceErrorCode = "INV-020001"
	ErrCodeNotAuthorizedInvoice InvoiceErrorCode = "INV-020002"

	// External service errors (03XXXX)
	ErrCodeExtractionFailed InvoiceErrorCode = "INV-030001"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError with the given code and message.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
