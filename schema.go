package rulevalidation

import (
	"maps"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema returns an OpenAPI object schema describing rules: one property per
// field, shaped by each rule's Describe. Unknown rules are reported as a
// *ConfigurationError, as Validate would.
func (v *Validator) Schema(rules RuleSet) (*openapi3.Schema, error) {
	checks, err := v.compile(rules)
	if err != nil {
		return nil, err
	}

	schema := openapi3.NewObjectSchema()
	for _, field := range slices.Sorted(maps.Keys(rules)) {
		schema.Properties[field] = openapi3.NewSchemaRef("", openapi3.NewSchema())
	}

	for _, c := range checks {
		ref := schema.Properties[c.field]
		if err := c.rule.Describe(c.field, c.spec.Params, schema, ref); err != nil {
			return nil, &ConfigurationError{Field: c.field, Rule: c.spec.Name, Err: err}
		}
	}
	return schema, nil
}

// SchemaRef is like Schema but wraps the result in a [openapi3.SchemaRef].
func (v *Validator) SchemaRef(rules RuleSet) (*openapi3.SchemaRef, error) {
	schema, err := v.Schema(rules)
	if err != nil {
		return nil, err
	}
	return openapi3.NewSchemaRef("", schema), nil
}
