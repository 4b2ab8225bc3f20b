package models

// APIError is the standardized error response body, carrying an
// application-specific error code next to the human-readable message.
// @Description APIError is the standardized error response format, with an application-specific error code, a human-readable message, and optional details.
type APIError struct {
	Code    string      `json:"code"`              // Application-specific error code (e.g., "VALIDATION_ERROR")
	Message string      `json:"message"`           // Human-readable message describing the error
	Details interface{} `json:"details,omitempty"` // Optional additional error details
}

// Predefined application-specific error codes
const (
	// Generic errors
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorCodeUnknown             = "UNKNOWN_ERROR"

	// Input validation and data errors
	ErrorCodeValidation    = "VALIDATION_ERROR" // Required columns missing, malformed values
	ErrorCodeInvalidUpload = "INVALID_UPLOAD"   // Missing file part, wrong extension
	ErrorCodeEmptyTable    = "EMPTY_TABLE"      // Extract parsed but contains no rows

	// Resource-specific errors
	ErrorCodeNotFound          = "NOT_FOUND"
	ErrorCodeDimensionNotFound = "DIMENSION_NOT_FOUND" // A dimension table is empty
	ErrorCodeFactTableNotFound = "FACT_TABLE_NOT_FOUND"

	// Storage errors
	ErrorCodePersistence = "PERSISTENCE_ERROR"
)
