// Package errors provides custom error types for the Globetrotter API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput    = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInvalidArgument = &AppError{Code: "INVALID_ARGUMENT", Message: "Malformed argument", StatusCode: http.StatusBadRequest}
	ErrMissingField    = &AppError{Code: "MISSING_FIELD", Message: "Required field is missing", StatusCode: http.StatusBadRequest}
	ErrNotFound        = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer  = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Date window errors. InvalidRange means a single entity's own dates are
// inverted; OutOfWindow means a child's dates escape the parent window;
// RangeConflict means a proposed parent window would strand existing children.
var (
	ErrInvalidRange  = &AppError{Code: "INVALID_RANGE", Message: "Start date must be before end date", StatusCode: http.StatusBadRequest}
	ErrOutOfWindow   = &AppError{Code: "OUT_OF_WINDOW", Message: "Destination dates must fall within the trip date range", StatusCode: http.StatusBadRequest}
	ErrRangeConflict = &AppError{Code: "RANGE_CONFLICT", Message: "Cannot update dates: some destinations fall outside the new date range", StatusCode: http.StatusConflict}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Trip errors.
var (
	ErrTripNotFound = &AppError{Code: "TRIP_NOT_FOUND", Message: "Trip not found", StatusCode: http.StatusNotFound}
)

// Destination errors.
var (
	ErrDestinationNotFound = &AppError{Code: "DESTINATION_NOT_FOUND", Message: "Destination not found", StatusCode: http.StatusNotFound}

	// ErrPartialReorder signals that a bulk reorder failed partway through,
	// leaving a mixed order_index state. Callers must re-fetch the
	// authoritative order rather than assume the request applied.
	ErrPartialReorder = &AppError{Code: "PARTIAL_REORDER", Message: "Reorder partially applied; re-fetch destinations for the authoritative order", StatusCode: http.StatusInternalServerError}
)

// Activity errors.
var (
	ErrActivityNotFound = &AppError{Code: "ACTIVITY_NOT_FOUND", Message: "Activity not found", StatusCode: http.StatusNotFound}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)
