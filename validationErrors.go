package rulevalidation

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors

// Errors groups the failure by field. Messages of a field with more than
// one failed check are joined with "; " in arrival order.
func (f *ValidationFailure) Errors() ValidationErrors {
	byField := map[string][]string{}
	for _, e := range f.entries {
		byField[e.Field] = append(byField[e.Field], e.Message)
	}
	errs := ValidationErrors{}
	for field, messages := range byField {
		errs[field] = errors.New(strings.Join(messages, "; "))
	}
	return errs
}
