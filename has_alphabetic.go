package rulevalidation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type hasAlphabetic struct{}

// HasAlphabetic passes text containing at least one alphabetic character.
// It is registered as "hasalpha", so "has_alpha" resolves to it as well.
var HasAlphabetic Rule = hasAlphabetic{}

var (
	alphabeticRegexp = regexp.MustCompile(`[^[:alpha:]]`)

	errNoAlphabetic = errors.New("must contain at least one alphabetic character")
)

func (hasAlphabetic) Describe(_ string, _ []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, "Must contain at least one alphabetic character.")
	return nil
}

func (hasAlphabetic) Validate(value any, _ []string) error {
	if isEmpty(value) {
		return nil
	}
	value, _ = validation.Indirect(value)
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return errNotString
	}

	v := strings.TrimSpace(rv.String())
	if v == "" {
		return nil
	}
	if alphabeticRegexp.ReplaceAllString(v, "") == "" {
		return errNoAlphabetic
	}
	return nil
}
