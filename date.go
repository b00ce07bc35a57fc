package rulevalidation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultDateLayout is the layout used by the date rule when none is given.
const DefaultDateLayout = "2006-01-02"

var errDate = errors.New("must be a valid date")

// DateRule passes text that parses under a Go time layout and formats back
// to the identical string, so "2024-02-30" and "2024-2-1" both fail
// "date:2006-01-02". The layout is the rule's parameters joined by commas,
// or the default layout when there are none.
type DateRule struct {
	layout string
}

// Date returns a date rule defaulting to layout.
func Date(layout string) *DateRule {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return &DateRule{layout: layout}
}

func (r *DateRule) layoutFor(params []string) string {
	if len(params) == 0 || (len(params) == 1 && params[0] == "") {
		return r.layout
	}
	return strings.Join(params, ",")
}

// Validate implements [Rule].
func (r *DateRule) Validate(value any, params []string) error {
	if isEmpty(value) {
		return nil
	}
	value, _ = validation.Indirect(value)
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return errDate
	}
	s := rv.String()
	layout := r.layoutFor(params)
	if err := validation.Date(layout).Validate(s); err != nil {
		return err
	}
	t, err := time.Parse(layout, s)
	if err != nil || t.Format(layout) != s {
		return errDate
	}
	return nil
}

// Describe implements [Rule] by setting the layout as the schema format.
func (r *DateRule) Describe(_ string, params []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	setType(ref, openapi3.TypeString)
	layout := r.layoutFor(params)
	if layout == DefaultDateLayout {
		ref.Value.Format = "date"
		return nil
	}
	ref.Value.Format = layout
	return nil
}
