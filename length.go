package rulevalidation

import (
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errDigits = errors.New("has the wrong number of characters")

type digitsRule struct{}

// Digits passes values whose text form has exactly n characters. It counts
// characters, not numeric digits: "12ab" satisfies digits:4.
var Digits Rule = digitsRule{}

func (digitsRule) CheckParams(params []string) error {
	_, err := intParam(params)
	return err
}

func (digitsRule) Validate(value any, params []string) error {
	if isEmpty(value) {
		return nil
	}
	n, err := intParam(params)
	if err != nil {
		return err
	}
	value, _ = validation.Indirect(value)

	var s string
	switch v := value.(type) {
	case fmt.Stringer:
		s = v.String()
	default:
		switch reflect.ValueOf(value).Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Func, reflect.Chan:
			return errDigits
		}
		s = fmt.Sprint(value)
	}

	// ozzo treats zero bounds as unbounded; a non-empty value never has
	// zero characters.
	if n == 0 || utf8.RuneCountInString(s) == 0 {
		return errDigits
	}
	return validation.RuneLength(n, n).Validate(s)
}

func (digitsRule) Describe(_ string, params []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	n, err := intParam(params)
	if err != nil {
		return err
	}
	l := uint64(n)
	ref.Value.MinLength = l
	ref.Value.MaxLength = &l
	return nil
}
