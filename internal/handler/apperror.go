package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrMissingToken     = &AppError{http.StatusUnauthorized, "MISSING_TOKEN", "Authorization header required"}
	ErrInvalidToken     = &AppError{http.StatusUnauthorized, "INVALID_TOKEN", "Token is invalid or expired"}
	ErrInvalidRequest   = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request"}
	ErrValidationFailed = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed"}
	ErrResourceNotFound = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError    = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrClientNotFound    = &AppError{http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found"}
	ErrInvalidDateRange  = &AppError{http.StatusBadRequest, "INVALID_DATE_RANGE", "Period end must not be before period start"}
	ErrInvalidCurrency   = &AppError{http.StatusBadRequest, "INVALID_CURRENCY", "Invalid currency"}
	ErrCurrencyMismatch  = &AppError{http.StatusUnprocessableEntity, "CURRENCY_MISMATCH", "Currency does not match the client account"}
	ErrSourceUnavailable = &AppError{http.StatusServiceUnavailable, "SOURCE_UNAVAILABLE", "A document source is unavailable, try again later"}
)
