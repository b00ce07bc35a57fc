package rulevalidation

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// CheckFunc reports whether value satisfies a custom rule.
	CheckFunc func(value any, params []string) bool

	// RuleFunc validates a value and returns an error if invalid.
	RuleFunc func(value any, params []string) error
)

var errCheckFailed = errors.New("check failed")

type custom struct {
	f    RuleFunc
	desc string
}

// Custom returns a rule that uses f for validation and desc for documentation.
// Unlike rules added with [Validator.Extend], f is called for empty values too.
func Custom(f RuleFunc, desc string) Rule {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (r custom) Describe(_ string, _ []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func (r custom) Validate(value any, params []string) error {
	return r.f(value, params)
}

// extension wraps a CheckFunc registered with Extend. Empty values are
// skipped, as with the built-in rules.
type extension struct {
	name  string
	check CheckFunc
}

func (r extension) Validate(value any, params []string) error {
	if isEmpty(value) {
		return nil
	}
	if !r.check(value, params) {
		return errCheckFailed
	}
	return nil
}

func (r extension) Describe(_ string, _ []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.name)
	return nil
}
