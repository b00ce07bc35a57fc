package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// NewSchemaRefForValue generates an OpenAPI schema for the Go type of value.
// It is used for response bodies, which are not described by rule sets.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return openapi3gen.NewGenerator().NewSchemaRefForValue(value, nil)
}

// failurePayload mirrors the JSON encoding of a validation failure.
type failurePayload []map[string]string

func failureSchema() (*openapi3.SchemaRef, error) {
	ref, err := NewSchemaRefForValue(failurePayload{})
	if err != nil {
		return nil, err
	}
	ref.Value.Description = "one object per failed check, keyed by field name"
	return ref, nil
}
