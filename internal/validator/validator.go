// Package validator checks request payload shapes before they reach services.
package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the accepted layout for calendar dates.
const DateLayout = "2006-01-02"

var (
	minBirthday = time.Date(1920, 1, 1, 0, 0, 0, 0, time.UTC)
	maxBirthday = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Validator wraps the go-playground validator with custom rules.
// It satisfies echo.Validator.
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules.
func New() *Validator {
	validate := validator.New()

	registerCustomValidators(validate)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns a *ValidationError on failure.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			return NewValidationError(errs)
		}
		return err
	}
	return nil
}

// ValidationError holds one user-friendly message per failed field.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, e.Errors[field])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// NewValidationError creates a ValidationError from validator.ValidationErrors.
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	messages := make(map[string]string, len(errs))

	for _, err := range errs {
		field := err.Field()

		switch err.Tag() {
		case "required":
			messages[field] = fmt.Sprintf("%s is required", field)
		case "email", "domain_email":
			messages[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "alphanum":
			messages[field] = fmt.Sprintf("%s must only contain alpha-numeric characters", field)
		case "min":
			messages[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			messages[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "birthday":
			messages[field] = fmt.Sprintf("%s must be an ISO date between %s and %s",
				field, minBirthday.Format(DateLayout), maxBirthday.Format(DateLayout))
		default:
			messages[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: messages}
}

// ParseDate parses an ISO date or RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func registerCustomValidators(validate *validator.Validate) {
	// birthday: ISO date within the accepted range.
	validate.RegisterValidation("birthday", func(fl validator.FieldLevel) bool {
		t, err := ParseDate(fl.Field().String())
		if err != nil {
			return false
		}
		return !t.Before(minBirthday) && !t.After(maxBirthday)
	})

	// domain_email: the domain part has at least two segments.
	validate.RegisterValidation("domain_email", func(fl validator.FieldLevel) bool {
		email := fl.Field().String()
		at := strings.LastIndex(email, "@")
		if at < 0 {
			return false
		}
		segments := strings.Split(email[at+1:], ".")
		if len(segments) < 2 {
			return false
		}
		for _, s := range segments {
			if s == "" {
				return false
			}
		}
		return true
	})
}
