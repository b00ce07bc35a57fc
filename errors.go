package rulevalidation

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
)

var (
	// ErrUnknownRule is wrapped by a ConfigurationError for a rule name that
	// is not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidParams is wrapped by a ConfigurationError for rule parameters
	// that the rule rejects.
	ErrInvalidParams = errors.New("invalid rule parameters")
)

// ConfigurationError reports a broken rule set. It is returned before any
// check runs and never depends on the input data.
type ConfigurationError struct {
	Field string
	Rule  string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("rulevalidation: field %q: rule %q: %v", e.Field, e.Rule, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ErrorEntry is a single failed check.
type ErrorEntry struct {
	Field   string
	Rule    string
	Message string
}

// ValidationFailure carries every failed check of one validation call, in
// the order the checks finished. That order is not stable between runs.
type ValidationFailure struct {
	entries []ErrorEntry
}

// NewValidationFailure returns a failure holding entries.
func NewValidationFailure(entries ...ErrorEntry) *ValidationFailure {
	return &ValidationFailure{entries: entries}
}

func (f *ValidationFailure) Error() string {
	if len(f.entries) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(f.entries))
	for i, e := range f.entries {
		parts[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StatusCode is the HTTP status a failure maps to.
func (f *ValidationFailure) StatusCode() int {
	return http.StatusUnprocessableEntity
}

// Entries returns a copy of the failed checks in arrival order.
func (f *ValidationFailure) Entries() []ErrorEntry {
	return slices.Clone(f.entries)
}

// Fields returns the sorted set of fields with at least one failed check.
func (f *ValidationFailure) Fields() []string {
	seen := make(map[string]struct{}, len(f.entries))
	for _, e := range f.entries {
		seen[e.Field] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Has reports whether field has a failed check.
func (f *ValidationFailure) Has(field string) bool {
	return slices.ContainsFunc(f.entries, func(e ErrorEntry) bool { return e.Field == field })
}

// Get returns the messages of field's failed checks.
func (f *ValidationFailure) Get(field string) []string {
	var messages []string
	for _, e := range f.entries {
		if e.Field == field {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// MarshalJSON encodes the failure as a list of single-key objects, one per
// failed check: [{"name":"name is required"},{"age":"age is required"}].
func (f *ValidationFailure) MarshalJSON() ([]byte, error) {
	payload := make([]map[string]string, len(f.entries))
	for i, e := range f.entries {
		payload[i] = map[string]string{e.Field: e.Message}
	}
	return json.Marshal(payload)
}

// IsValidationFailure reports whether err is or wraps a ValidationFailure.
func IsValidationFailure(err error) bool {
	var f *ValidationFailure
	return errors.As(err, &f)
}

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var c *ConfigurationError
	return errors.As(err, &c)
}
