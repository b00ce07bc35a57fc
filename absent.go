package rulevalidation

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi3"
)

var errNotPresent = errors.New("must be present")

// Present fails only when the key is missing from the record. An explicit
// empty value satisfies it.
var Present Rule = presentRule{}

// Nullable always passes. It documents that a field may be empty.
var Nullable Rule = nullableRule{}

type presentRule struct{}

func (presentRule) Validate(any, []string) error {
	return nil
}

func (presentRule) ValidateRecord(record map[string]any, field string, _ []string) error {
	if _, ok := record[field]; !ok {
		return errNotPresent
	}
	return nil
}

func (presentRule) Describe(_ string, _ []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, "must be present")
	return nil
}

type nullableRule struct{}

func (nullableRule) Validate(any, []string) error {
	return nil
}

func (nullableRule) Describe(_ string, _ []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Nullable = true
	return nil
}
