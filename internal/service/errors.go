package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
	Field   string // offending request field, validation errors only
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeValidationFailed      = "validation_failed"
	ErrCodeConfigurationMissing  = "configuration_missing"
	ErrCodeCommunicationFailure  = "communication_failure"
	ErrCodeConfigurationExists   = "configuration_exists"
	ErrCodeConfigurationNotFound = "configuration_not_found"
	ErrCodeTransactionNotFound   = "transaction_not_found"
	ErrCodeInternalError         = "internal_error"
)

func validationError(field, message string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeValidationFailed,
		Field:   field,
		Message: message,
	}
}

func internalError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: message,
		Err:     err,
	}
}
