package dto

import "net/http"

// Error codes surfaced by the API. Domain error codes map onto these 1:1;
// anything unknown is treated as internal.
const (
	ErrCodeValidation        = "VALIDATION"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeAlreadyExists     = "ALREADY_EXISTS"
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodePersistence       = "PERSISTENCE"
	ErrCodeInternal          = "INTERNAL"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,
	ErrCodeNotFound:    http.StatusNotFound,

	ErrCodeAlreadyExists: http.StatusConflict,

	// Input parse failures inside domain constructors
	ErrCodeInvalidInput: http.StatusBadRequest,
	"INVALID_ID":        http.StatusBadRequest,
	"INVALID_NAME":      http.StatusBadRequest,
	"INVALID_GROUP":     http.StatusBadRequest,
	"INVALID_QUANTITY":  http.StatusBadRequest,
	"INVALID_BUYER":     http.StatusBadRequest,

	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,

	ErrCodePersistence: http.StatusInternalServerError,
	ErrCodeInternal:    http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes are internal errors.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
