package rulevalidation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// inRule passes values whose text form is one of the rule's parameters.
type inRule struct{}

// In is the "in:a,b,c" rule.
var In Rule = inRule{}

func (inRule) CheckParams(params []string) error {
	if len(params) == 0 {
		return errors.New("expected at least 1 parameter")
	}
	return nil
}

func (inRule) Validate(value any, params []string) error {
	if isEmpty(value) {
		return nil
	}
	value, _ = validation.Indirect(value)
	allowed := make([]any, len(params))
	for i := range params {
		allowed[i] = params[i]
	}
	err := validation.In(allowed...).Validate(fmt.Sprint(value))
	if err != nil {
		return fmt.Errorf("%s got '%v'", err, value)
	}
	return nil
}

func (inRule) MessageValue(params []string) string {
	return strings.Join(params, ", ")
}

func (inRule) Describe(_ string, params []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = make([]any, len(params))
	for i := range params {
		ref.Value.Enum[i] = params[i]
	}
	return nil
}
