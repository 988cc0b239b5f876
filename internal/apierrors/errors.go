// Package apierrors converts domain errors into fixed client-facing responses.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dtroode/myflix-server/internal/model"
	"github.com/dtroode/myflix-server/internal/validator"
)

// APIError is an error safe to return to a client.
type APIError struct {
	Status  int
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NewErrInvalidCredentials never tells which half of the pair was wrong.
func NewErrInvalidCredentials() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "incorrect username or password"}
}

func NewErrIdentityIsTaken(field model.IdentityField) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf("%s already exists", field)}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "authorization token is required"}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "invalid authorization token"}
}

func NewErrExpiredAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "authorization token expired"}
}

func NewErrPermissionDenied() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "permission denied"}
}

func NewErrNotFound(resource string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: resource + " not found"}
}

func NewErrBadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func NewErrInternalServerError() *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: "internal server error"}
}

// FromError maps err to an APIError. Unknown errors become a generic 500
// with no detail of the cause.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return &APIError{Status: http.StatusBadRequest, Message: "validation failed", Details: validationErr.Errors}
	}

	var dupErr *model.DuplicateIdentityError
	if errors.As(err, &dupErr) {
		return NewErrIdentityIsTaken(dupErr.Field)
	}

	var notFoundErr *model.NotFoundError
	if errors.As(err, &notFoundErr) {
		return NewErrNotFound(notFoundErr.Resource)
	}

	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return NewErrInvalidCredentials()
	case errors.Is(err, model.ErrMissingToken):
		return NewErrMissingAuthorizationToken()
	case errors.Is(err, model.ErrExpiredToken):
		return NewErrExpiredAuthorizationToken()
	case errors.Is(err, model.ErrInvalidToken):
		return NewErrInvalidAuthorizationToken()
	case errors.Is(err, model.ErrForbidden):
		return NewErrPermissionDenied()
	case errors.Is(err, model.ErrAlreadyInList):
		return NewErrBadRequest(model.ErrAlreadyInList.Error())
	case errors.Is(err, model.ErrNotInList):
		return NewErrBadRequest(model.ErrNotInList.Error())
	case errors.Is(err, model.ErrNotFound):
		return NewErrNotFound("resource")
	default:
		return NewErrInternalServerError()
	}
}
