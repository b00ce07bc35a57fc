package rulevalidation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errTooLong = errors.New("the length must be no more than the limit")

type sizeRule struct {
	min bool
}

var (
	// Min passes text with at least n characters and sequences with at least
	// n elements. Other values pass.
	Min Rule = sizeRule{min: true}
	// Max passes text with at most n characters and sequences with at most
	// n elements. Other values pass.
	Max Rule = sizeRule{min: false}
)

// intParam parses the first parameter of a rule as a non-negative integer.
// Further parameters are ignored.
func intParam(params []string) (int, error) {
	if len(params) == 0 {
		return 0, errors.New("expected 1 parameter, got 0")
	}
	n, err := strconv.Atoi(params[0])
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be an integer", params[0])
	}
	if n < 0 {
		return 0, fmt.Errorf("parameter %d must not be negative", n)
	}
	return n, nil
}

func (r sizeRule) CheckParams(params []string) error {
	_, err := intParam(params)
	return err
}

// Validate checks if the given value is valid or not.
func (r sizeRule) Validate(value any, params []string) error {
	if isEmpty(value) {
		return nil
	}
	n, err := intParam(params)
	if err != nil {
		return err
	}
	value, _ = validation.Indirect(value)

	switch reflect.ValueOf(value).Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
	default:
		return nil
	}

	if r.min {
		// ozzo reads RuneLength(0, 0) as "must be empty".
		if n == 0 {
			return nil
		}
		return validation.RuneLength(n, 0).Validate(value)
	}
	// ozzo treats a zero maximum as unbounded.
	if n == 0 {
		return errTooLong
	}
	return validation.RuneLength(0, n).Validate(value)
}

func (r sizeRule) Describe(_ string, params []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	n, err := intParam(params)
	if err != nil {
		return err
	}
	if r.min {
		appendDescription(ref, fmt.Sprintf("min length %d", n))
		return nil
	}
	appendDescription(ref, fmt.Sprintf("max length %d", n))
	return nil
}
