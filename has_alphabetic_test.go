package rulevalidation_test

import (
	"testing"

	v "github.com/Gobd/rulevalidation"
	"github.com/stretchr/testify/assert"
)

func TestHasAlphabetic(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		errStr string
	}{
		{
			name:   "alpha",
			in:     "1234-1234 \nabc",
			errStr: "",
		},
		{
			name:   "empty", // Allow when not required
			in:     "",
			errStr: "",
		},
		{
			name:   "whitespace",
			in:     "   ",
			errStr: "",
		},
		{
			name:   "non alpha",
			in:     "1234-1234 \n",
			errStr: "must contain at least one alphabetic character",
		},
		{
			name:   "wrong type",
			in:     1234,
			errStr: "must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.HasAlphabetic.Validate(tt.in, nil)
			var errStr string
			if err != nil {
				errStr = err.Error()
			}
			assert.Equal(t, tt.errStr, errStr)
		})
	}
}

func TestHasAlphabetic_RuleString(t *testing.T) {
	val := v.New()
	s := "42"
	for _, rules := range []string{"hasalpha", "has_alpha", "HasAlpha"} {
		_, err := val.Validate(map[string]any{"name": &s}, v.RuleSet{"name": rules})
		var failure *v.ValidationFailure
		if assert.ErrorAs(t, err, &failure, rules) {
			assert.Equal(t, []string{"name must contain at least one alphabetic character"}, failure.Get("name"))
		}
	}

	_, err := val.Validate(map[string]any{"name": "R2D2"}, v.RuleSet{"name": "has_alpha"})
	assert.NoError(t, err)
}
