package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode defines standardized error codes for the API
type ErrorCode string

// Error code constants
const (
	// Authentication and authorization error codes
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeTokenExpired       ErrorCode = "AUTH_002"
	ErrorCodeTokenInvalid       ErrorCode = "AUTH_003"
	ErrorCodePermissionDenied   ErrorCode = "AUTH_008"

	// Resource error codes
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeResourceExists   ErrorCode = "RES_002"

	// Validation error codes
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidFormat    ErrorCode = "VAL_002"

	// Server error codes
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail contains detailed error information
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"RES_001"`
	Message string    `json:"message" example:"resource not found"`
	Fields  []string  `json:"fields,omitempty"`
}

// NewErrorDetail creates an error detail with the given code and message.
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithFields attaches the offending field names to a validation error.
func (e *ErrorDetail) WithFields(fields ...string) *ErrorDetail {
	e.Fields = append(e.Fields, fields...)
	return e
}

// HandleValidationError converts validator errors into a single error detail
// listing every failed field.
func HandleValidationError(err error) *ErrorDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewErrorDetail(ErrorCodeValidationFailed, err.Error())
	}

	fields := make([]string, 0, len(validationErrors))
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldErr.Field())
		messages = append(messages, describeFieldError(fieldErr))
	}

	detail := NewErrorDetail(ErrorCodeValidationFailed, strings.Join(messages, "; "))
	return detail.WithFields(fields...)
}

func describeFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fieldErr.Field(), fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fieldErr.Field(), fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed validation on %s", fieldErr.Field(), fieldErr.Tag())
	}
}
