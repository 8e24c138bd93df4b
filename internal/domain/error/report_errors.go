// Package error defines domain-specific errors for the ledger reports application.
package error

import "errors"

// Report domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidRange is returned when end_date is before start_date.
	ErrInvalidRange = errors.New("end_date must be greater than or equal to start_date")

	// ErrInvalidDateFormat is returned when a date cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidCategoryID is returned when a category id cannot be parsed.
	ErrInvalidCategoryID = errors.New("invalid category id")

	// ErrRateLimited is returned when a client exceeds the request quota.
	ErrRateLimited = errors.New("too many requests")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Range validation errors (01XXXX)
	ErrCodeMissingStartDate  ReportErrorCode = "RPT-010001"
	ErrCodeMissingEndDate    ReportErrorCode = "RPT-010002"
	ErrCodeInvalidRange      ReportErrorCode = "RPT-010003"
	ErrCodeInvalidDateFormat ReportErrorCode = "RPT-010004"

	// Category drill-down errors (02XXXX)
	ErrCodeUnknownCategory   ReportErrorCode = "RPT-020001"
	ErrCodeInvalidCategoryID ReportErrorCode = "RPT-020002"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited ReportErrorCode = "RPT-030001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsInvalidRange reports whether err is a range validation failure.
func IsInvalidRange(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrMissingStartDate) ||
		errors.Is(err, ErrMissingEndDate)
}

// IsUnknownCategory reports whether err is a drill-down into a missing category.
func IsUnknownCategory(err error) bool {
	var reportErr *ReportError
	return errors.As(err, &reportErr) && reportErr.Code == ErrCodeUnknownCategory
}
