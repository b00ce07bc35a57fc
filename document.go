package rulevalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// RuleSet maps a field name to its rule expression, e.g. "required|digits:4".
	RuleSet map[string]string

	// RuleSpec is one parsed rule of an expression.
	RuleSpec struct {
		Name   string
		Params []string
	}

	// Rule is the interface that all validation rules must implement.
	// Validate returns a non-nil error when value violates the rule.
	Rule interface {
		Validate(value any, params []string) error
		Describe(name string, params []string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// RecordRule is implemented by rules that need the whole record rather
	// than a single value, e.g. to tell an absent key from an empty value.
	// When a rule implements it, ValidateRecord is used instead of Validate.
	RecordRule interface {
		ValidateRecord(record map[string]any, field string, params []string) error
	}

	// ParamChecker is implemented by rules whose parameters can be checked
	// once, when the rule expression is parsed.
	ParamChecker interface {
		CheckParams(params []string) error
	}

	// MessageValuer is implemented by rules that substitute something other
	// than their first parameter for :value in the message template.
	MessageValuer interface {
		MessageValue(params []string) string
	}
)
