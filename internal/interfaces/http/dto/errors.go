package dto

import "net/http"

// Error codes surfaced to clients. Domain errors carry these codes
// directly; the map below decides the HTTP status.
const (
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeAlreadyExists      = "ALREADY_EXISTS"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeNoAddress          = "NO_ADDRESS"
	ErrCodeInvalidState       = "INVALID_STATE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Duplicates surface as 400, not 409: clients get one "invalid or
// duplicate" bucket for bad writes.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeInvalidInput:   http.StatusBadRequest,
	ErrCodeAlreadyExists:  http.StatusBadRequest,
	ErrCodeDuplicateEmail: http.StatusBadRequest,
	ErrCodeEmptyCart:      http.StatusBadRequest,
	ErrCodeNoAddress:      http.StatusBadRequest,
	ErrCodeInvalidState:   http.StatusBadRequest,

	ErrCodeNotFound: http.StatusNotFound,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes fall back to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
