package rulevalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Documentation-only rules. They always pass and only shape the schema;
// register them under a name to use them in rule strings, e.g.
//
//	v.Register("deprecated", rulevalidation.Deprecated, "")
//	v.Register("example", rulevalidation.Example, "")
var (
	// Deprecated marks the field as deprecated.
	Deprecated Rule = deprecated{}
	// Example sets the schema example to the rule's parameters, comma joined.
	Example Rule = example{}
	// Default sets the schema default to the rule's parameters, comma joined.
	Default Rule = defaulter{}
)

type deprecated struct{}

func (deprecated) Describe(_ string, _ []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Deprecated = true
	return nil
}

func (deprecated) Validate(any, []string) error {
	return nil
}

type example struct{}

func (example) Describe(_ string, params []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Example = strings.Join(params, ",")
	return nil
}

func (example) Validate(any, []string) error {
	return nil
}

type defaulter struct{}

func (defaulter) Describe(_ string, params []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Default = strings.Join(params, ",")
	return nil
}

func (defaulter) Validate(any, []string) error {
	return nil
}
