package errors

import "fmt"

// Error codes
const (
	CodePlannerError = "PLANNER_ERROR"
	CodeAPIError     = "API_ERROR"
	CodeValidation   = "VALIDATION_ERROR"
	CodeCache        = "CACHE_ERROR"
	CodeStorage      = "STORAGE_ERROR"
	CodeService      = "SERVICE_ERROR"
)

type PlannerError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *PlannerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PlannerError) Unwrap() error {
	return e.Cause
}

func NewPlannerError(message, code string, statusCode int, context map[string]any) *PlannerError {
	return &PlannerError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *PlannerError) WithCause(cause error) *PlannerError {
	e.Cause = cause
	return e
}

type APIError struct {
	*PlannerError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		PlannerError: &PlannerError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

type ValidationError struct {
	*PlannerError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		PlannerError: &PlannerError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type CacheError struct {
	*PlannerError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		PlannerError: &PlannerError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type StorageError struct {
	*PlannerError
	Table     string
	Operation string
}

func NewStorageError(message, table, operation string, cause error) *StorageError {
	return &StorageError{
		PlannerError: &PlannerError{
			Message:    message,
			Code:       CodeStorage,
			StatusCode: 500,
			Context: map[string]any{
				"table":     table,
				"operation": operation,
			},
			Cause: cause,
		},
		Table:     table,
		Operation: operation,
	}
}

type ServiceError struct {
	*PlannerError
	Service   string
	Operation string
}

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		PlannerError: &PlannerError{
			Message:    message,
			Code:       CodeService,
			StatusCode: 500,
			Context: map[string]any{
				"service":   service,
				"operation": operation,
			},
			Cause: cause,
		},
		Service:   service,
		Operation: operation,
	}
}
