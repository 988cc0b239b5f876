package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by stores when the requested entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials covers both an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for malformed, badly signed or orphaned tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingToken is an ErrInvalidToken raised when no bearer token was presented.
	ErrMissingToken = fmt.Errorf("missing authorization token: %w", ErrInvalidToken)
	// ErrExpiredToken is returned for well-signed tokens past their expiry.
	ErrExpiredToken = errors.New("token expired")
	// ErrForbidden is returned when the caller does not own the target resource.
	ErrForbidden = errors.New("permission denied")
	// ErrDuplicateIdentity is matched by every *DuplicateIdentityError.
	ErrDuplicateIdentity = errors.New("duplicate identity")
	// ErrAlreadyInList is returned when adding a movie that is already listed.
	ErrAlreadyInList = errors.New("movie already in the list")
	// ErrNotInList is returned when removing a movie that is not listed.
	ErrNotInList = errors.New("movie not in the list")
)

// IdentityField names a unique identity attribute.
type IdentityField string

const (
	FieldUsername IdentityField = "Username"
	FieldEmail    IdentityField = "Email"
)

// DuplicateIdentityError reports which unique field collided.
type DuplicateIdentityError struct {
	Field IdentityField
}

// NewDuplicateIdentityError creates a DuplicateIdentityError for field.
func NewDuplicateIdentityError(field IdentityField) *DuplicateIdentityError {
	return &DuplicateIdentityError{Field: field}
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("%s already exists", strings.ToLower(string(e.Field)))
}

// Is makes errors.Is(err, ErrDuplicateIdentity) hold.
func (e *DuplicateIdentityError) Is(target error) bool {
	return target == ErrDuplicateIdentity
}

// NotFoundError reports which kind of resource is absent.
type NotFoundError struct {
	Resource string
}

// NewNotFoundError creates a NotFoundError for resource.
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
