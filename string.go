package rulevalidation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errNotNumeric = validation.NewError("validation_is_numeric", "must be a number")
	errNotBool    = errors.New("must be a boolean")
	errNotArray   = errors.New("must be an array")
	errNotString  = errors.New("must be a string")
)

var (
	// Numeric passes numbers and strings that parse as a decimal number.
	Numeric Rule = typeRule{check: isNumeric, typ: openapi3.TypeNumber}
	// Bool passes booleans, 0 and 1, and the strings true/false, yes/no,
	// on/off and 1/0 in any case.
	Bool Rule = typeRule{check: isBool, typ: openapi3.TypeBoolean}
	// Array passes slices, arrays and maps.
	Array Rule = typeRule{check: isArray, typ: openapi3.TypeArray}
	// String passes textual values.
	String Rule = typeRule{check: isString, typ: openapi3.TypeString}
)

// typeRule checks the kind of a non-empty value.
type typeRule struct {
	check func(value any) error
	typ   string
}

func (r typeRule) Validate(value any, _ []string) error {
	if isEmpty(value) {
		return nil
	}
	value, _ = validation.Indirect(value)
	return r.check(value)
}

func (r typeRule) Describe(_ string, _ []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	setType(ref, r.typ)
	return nil
}

var numericString = validation.NewStringRuleWithError(func(s string) bool {
	if !govalidator.IsFloat(s) {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}, errNotNumeric)

func isNumeric(value any) error {
	if n, ok := value.(json.Number); ok {
		return numericString.Validate(n.String())
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.String:
		return numericString.Validate(rv.String())
	}
	return errNotNumeric
}

var boolStrings = map[string]bool{
	"1": true, "true": true, "on": true, "yes": true,
	"0": true, "false": true, "off": true, "no": true,
}

func isBool(value any) error {
	if n, ok := value.(json.Number); ok {
		value = n.String()
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := rv.Int(); i == 0 || i == 1 {
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i := rv.Uint(); i == 0 || i == 1 {
			return nil
		}
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); f == 0 || f == 1 {
			return nil
		}
	case reflect.String:
		if boolStrings[strings.ToLower(strings.TrimSpace(rv.String()))] {
			return nil
		}
	}
	return errNotBool
}

func isArray(value any) error {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return nil
	}
	return errNotArray
}

func isString(value any) error {
	if _, ok := value.(json.Number); ok {
		return errNotString
	}
	if reflect.ValueOf(value).Kind() != reflect.String {
		return errNotString
	}
	return nil
}
