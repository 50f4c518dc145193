package apperrors

import "errors"

// Common errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrDuplicateID     = errors.New("student with this ID already exists")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrCourseFull     = errors.New("course is full")
)

// Registration errors
var (
	ErrNotRegistered     = errors.New("student is not registered for this course")
	ErrAlreadyRegistered = errors.New("student is already registered for this course")
)

// NewValidationError creates a custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Code:    "VAL_001",
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// DetailsOf returns the details attached to err, if any
func DetailsOf(err error) map[string]interface{} {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Details
	}
	return nil
}

// CodeOf returns the error code attached to err, or an empty string
func CodeOf(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Code
	}
	return ""
}
