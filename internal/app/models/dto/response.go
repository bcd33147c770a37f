package dto

import "time"

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// SuccessResponse wraps a payload in the standard envelope.
func SuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// ErrorResponse wraps an error detail in the standard envelope.
func ErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// MessageResponse is used for operations that only report an outcome message.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed"`
}
