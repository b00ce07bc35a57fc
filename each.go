package rulevalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Each returns a rule that applies rule, with the same parameters, to every
// element of a slice, array or map value. Register it under a name to use
// it in rule strings:
//
//	v.Register("emails", rulevalidation.Each(rulevalidation.Email), ":attribute must contain only emails")
func Each(rule Rule) Rule {
	return eachRule{rule: rule}
}

type eachRule struct {
	rule Rule
}

func (r eachRule) Validate(value any, params []string) error {
	if isEmpty(value) {
		return nil
	}
	if err := isArray(reflectIndirect(value)); err != nil {
		return err
	}
	return validation.Each(validation.By(func(elem any) error {
		return r.rule.Validate(elem, params)
	})).Validate(value)
}

func (r eachRule) CheckParams(params []string) error {
	if pc, ok := r.rule.(ParamChecker); ok {
		return pc.CheckParams(params)
	}
	return nil
}

func (r eachRule) Describe(name string, params []string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	setType(ref, openapi3.TypeArray)
	if ref.Value.Items == nil {
		ref.Value.Items = openapi3.NewSchemaRef("", openapi3.NewSchema())
	}
	return r.rule.Describe(name, params, schema, ref.Value.Items)
}

func reflectIndirect(value any) any {
	value, _ = validation.Indirect(value)
	return value
}
