package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound         = errors.New("student not found")
	ErrRollNumberAlreadyExists = errors.New("roll number already exists")
)

// Staff errors
var (
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Event errors
var (
	ErrEventNotFound = errors.New("event not found")
)

// Achievement errors
var (
	ErrAchievementNotFound = errors.New("achievement not found")
)

// Project errors
var (
	ErrProjectNotFound = errors.New("project not found")
)

// Record errors for the flat back-office entities
var (
	ErrSalaryTemplateNotFound     = errors.New("salary template not found")
	ErrTransportFormNotFound      = errors.New("transport form not found")
	ErrLeaveRequestNotFound       = errors.New("leave request not found")
	ErrEnquiryNotFound            = errors.New("enquiry not found")
	ErrSupportTicketNotFound      = errors.New("support ticket not found")
	ErrDisciplinaryActionNotFound = errors.New("disciplinary action not found")
)

// CustomError carries an underlying sentinel plus request-specific context.
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the sentinel for errors.Is.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithCode attaches an error code.
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithDetails attaches context details.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError wraps ErrValidationFailed with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError wraps ErrResourceNotFound with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError wraps ErrConflict with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError wraps ErrPermissionDenied with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}
