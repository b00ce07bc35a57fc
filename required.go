package rulevalidation

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// isEmpty reports whether value counts as absent for validation: nil, "",
// false, numeric zero (including a decoded json.Number zero), an empty
// slice or map, or a zero time. The string "0" is not empty.
func isEmpty(value any) bool {
	value, isNil := validation.Indirect(value)
	if isNil {
		return true
	}
	if n, ok := value.(json.Number); ok {
		return isZeroNumber(n)
	}
	return validation.IsEmpty(value)
}

func isZeroNumber(n json.Number) bool {
	if n == "" {
		return true
	}
	f, err := n.Float64()
	return err == nil && f == 0
}

type requiredRule struct {
	validation.RequiredRule
}

// Required fails when the value is missing or empty.
var Required Rule = requiredRule{validation.Required}

func (r requiredRule) Validate(value any, _ []string) error {
	if n, ok := value.(json.Number); ok && isZeroNumber(n) {
		return validation.ErrRequired
	}
	return r.RequiredRule.Validate(value)
}

func (r requiredRule) Describe(name string, _ []string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	schema.Required = append(schema.Required, name)
	return nil
}
