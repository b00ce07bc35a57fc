package rulevalidation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	minTests := []struct {
		min         string
		value       any
		expectError bool
	}{
		{min: "3", value: "abc", expectError: false},
		{min: "3", value: "ab", expectError: true},
		{min: "3", value: "äöü", expectError: false}, // counts characters, not bytes
		{min: "2", value: []any{1}, expectError: true},
		{min: "2", value: []any{1, 2}, expectError: false},
		{min: "2", value: map[string]any{"a": 1}, expectError: true},
		{min: "5", value: 3, expectError: false}, // only text and sequences are measured
		{min: "5", value: nil, expectError: false}, // Skips empty
		{min: "5", value: "", expectError: false},
		{min: "0", value: "x", expectError: false},
		{min: "0", value: []any{1, 2, 3}, expectError: false},
	}
	for _, tt := range minTests {
		t.Run(fmt.Sprintf("min:%s,v:%v", tt.min, tt.value), func(t *testing.T) {
			err := Min.Validate(tt.value, []string{tt.min})
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}

	maxTests := []struct {
		max         string
		value       any
		expectError bool
	}{
		{max: "2", value: "ab", expectError: false},
		{max: "2", value: "abc", expectError: true},
		{max: "2", value: []string{"a", "b", "c"}, expectError: true},
		{max: "2", value: []string{"a"}, expectError: false},
		{max: "0", value: "a", expectError: true},
		{max: "0", value: "", expectError: false},
		{max: "1", value: 12345, expectError: false},
	}
	for _, tt := range maxTests {
		t.Run(fmt.Sprintf("max:%s,v:%v", tt.max, tt.value), func(t *testing.T) {
			err := Max.Validate(tt.value, []string{tt.max})
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}
}

func TestIntParam(t *testing.T) {
	n, err := intParam([]string{"12"})
	require.NoError(t, err)
	require.Equal(t, 12, n)

	n, err = intParam([]string{"2", "10"})
	require.NoError(t, err)
	require.Equal(t, 2, n, "extra parameters are ignored")

	for _, params := range [][]string{nil, {}, {"a"}, {"-1"}, {"", "2"}, {""}} {
		_, err := intParam(params)
		require.Error(t, err, "%q", params)
	}
}
