package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ValidationError reports a single failed field check.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("field %q (value %v): %s", e.Field, e.Value, e.Message)
}

// ValidationRule checks one field value. Returning nil means pass.
type ValidationRule func(fieldName string, value any) *ValidationError

// Validator accumulates failures across chained Field calls so a
// request can report every bad field at once.
type Validator struct {
	errors []ValidationError
}

func NewValidator() *Validator {
	return &Validator{}
}

// Field applies each rule to value and records failures.
func (v *Validator) Field(fieldName string, value any, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errors = append(v.errors, *err)
		}
	}
	return v
}

func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// ErrorMessage joins every recorded failure into one string.
func (v *Validator) ErrorMessage() string {
	if len(v.errors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(v.errors))
	for _, err := range v.errors {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

// ValidateAndReturnError converts accumulated failures into a gRPC
// InvalidArgument error, or nil when everything passed.
func ValidateAndReturnError(validator *Validator) error {
	if validator.HasErrors() {
		return InvalidArgumentError(validator.ErrorMessage())
	}
	return nil
}

// Required fails on nil, blank strings and nil or blank *string.
func Required(fieldName string, value any) *ValidationError {
	fail := func() *ValidationError {
		return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
	}
	switch v := value.(type) {
	case nil:
		return fail()
	case string:
		if strings.TrimSpace(v) == "" {
			return fail()
		}
	case *string:
		if v == nil || strings.TrimSpace(*v) == "" {
			return fail()
		}
	}
	return nil
}

// UUID fails unless the value is a string that parses as a UUID.
func UUID(fieldName string, value any) *ValidationError {
	str, ok := value.(string)
	if !ok {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a string"}
	}
	if _, err := uuid.Parse(str); err != nil {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a valid UUID"}
	}
	return nil
}

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// CurrencyCode fails unless the value is a 3-letter ISO 4217 code.
func CurrencyCode(fieldName string, value any) *ValidationError {
	str, ok := value.(string)
	if !ok {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a string"}
	}
	if !currencyRegex.MatchString(str) {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be 3 uppercase letters (ISO 4217)"}
	}
	return nil
}
