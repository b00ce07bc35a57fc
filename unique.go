package rulevalidation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errNotUnique = errors.New("not unique")

type distinctRule struct{}

// Distinct passes sequences without repeated elements. Elements are compared
// by value; those that are not comparable are compared by their %#v form.
var Distinct Rule = distinctRule{}

func (distinctRule) Describe(_ string, _ []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	setType(ref, openapi3.TypeArray)
	ref.Value.UniqueItems = true
	return nil
}

// Validate checks if the given value is valid or not.
func (distinctRule) Validate(value any, _ []string) error {
	if isEmpty(value) {
		return nil
	}
	value, _ = validation.Indirect(value)
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		m := make(map[any]struct{}, rv.Len())
		for i := range rv.Len() {
			elem := rv.Index(i).Interface()
			if elem != nil && !reflect.TypeOf(elem).Comparable() {
				elem = fmt.Sprintf("%#v", elem)
			}
			if _, ok := m[elem]; ok {
				return errNotUnique
			}
			m[elem] = struct{}{}
		}
	default:
		return errNotArray
	}
	return nil
}
