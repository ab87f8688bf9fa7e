package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound is returned when a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrFoodItemInUse is returned when a food item delete is rejected
	// because at least one meal entry still references it.
	ErrFoodItemInUse = errors.New("food item is in use by saved meals")
)

// ValidationError carries every violated constraint of one entity, in field
// declaration order. Callers must not retry without changing the input.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// StoreFailure wraps an underlying persistence error that is not part of the
// expected taxonomy. It is surfaced to the caller and never retried here.
func StoreFailure(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ErrorResponse is the JSON body controllers send for any failed operation.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code"`
	Detail []string `json:"detail,omitempty"`
}

// HTTPStatus maps the error taxonomy to an HTTP status code.
func HTTPStatus(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrFoodItemInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ToResponse converts any service error into a response body. Store failures
// are masked with a generic message so internals never leak to clients.
func ToResponse(err error) ErrorResponse {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ErrorResponse{Error: "validation failed", Code: "VALIDATION_FAILED", Detail: ve.Messages}
	case errors.Is(err, ErrNotFound):
		return ErrorResponse{Error: err.Error(), Code: "NOT_FOUND"}
	case errors.Is(err, ErrFoodItemInUse):
		return ErrorResponse{Error: err.Error(), Code: "IN_USE"}
	default:
		return ErrorResponse{Error: "internal server error", Code: "STORE_FAILURE"}
	}
}
