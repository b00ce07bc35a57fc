package rulevalidation_test

import (
	"fmt"
	"testing"

	v "github.com/Gobd/rulevalidation"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	r := v.Date("")
	tests := []struct {
		params      []string
		value       any
		expectError bool
	}{
		{nil, "2024-02-29", false},
		{nil, "2023-02-29", true},
		{nil, "2024-2-1", true}, // does not round-trip
		{nil, "2024-02-01T00:00:00Z", true},
		{nil, "yesterday", true},
		{nil, 20240201, true},
		{nil, "", false},
		{[]string{""}, "2024-02-01", false},
		{[]string{"15:04"}, "23:59", false},
		{[]string{"15:04"}, "24:00", true},
		{[]string{"Jan 2", " 2006"}, "Feb 1, 2024", false},
		{[]string{"02/01/2006"}, "31/12/2024", false},
		{[]string{"02/01/2006"}, "12/31/2024", true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v,v:%v", tt.params, tt.value), func(t *testing.T) {
			err := r.Validate(tt.value, tt.params)
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}
}

func TestDate_ThroughExpression(t *testing.T) {
	val := v.New()

	_, err := val.Validate(map[string]any{"at": "09:30"}, v.RuleSet{"at": "date:15:04"})
	require.NoError(t, err)

	_, err = val.Validate(map[string]any{"day": "Feb 1, 2024"}, v.RuleSet{"day": "date:Jan 2, 2006"})
	require.NoError(t, err)
}
