package rulevalidation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// KeyIn ensures that the keys of a map value are among the rule's
// parameters, as in "keyin:a,b". It is not registered by default.
var KeyIn Rule = keyInRule{}

type keyInRule struct{}

func (keyInRule) CheckParams(params []string) error {
	if len(params) == 0 {
		return errors.New("expected at least 1 parameter")
	}
	return nil
}

func (keyInRule) Describe(_ string, params []string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, fmt.Sprintf("keys must be in (%s)", strings.Join(params, ",")))
	return nil
}

func (keyInRule) Validate(value any, params []string) error {
	if isEmpty(value) {
		return nil
	}
	validKeys := map[string]bool{}
	for _, p := range params {
		validKeys[p] = true
	}

	var jsonmap map[string]any
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, &jsonmap); err != nil {
		return errors.New("must be an object")
	}

	for k := range jsonmap {
		if !validKeys[k] {
			return fmt.Errorf("key '%s' not allowed", k)
		}
	}
	return nil
}

// MessageValue implements [MessageValuer].
func (keyInRule) MessageValue(params []string) string {
	return strings.Join(params, ", ")
}
