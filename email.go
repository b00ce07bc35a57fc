package rulevalidation

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type emailRule struct{}

// Email passes text that is a well-formed email address. No DNS lookup is
// made.
var Email Rule = emailRule{}

func (emailRule) Validate(value any, _ []string) error {
	if isEmpty(value) {
		return nil
	}
	value, _ = validation.Indirect(value)
	if reflect.ValueOf(value).Kind() != reflect.String {
		return is.ErrEmail
	}
	return is.EmailFormat.Validate(value)
}

func (emailRule) Describe(_ string, _ []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	setType(ref, openapi3.TypeString)
	ref.Value.Format = "email"
	return nil
}
