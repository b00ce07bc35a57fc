package rulevalidation

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		n           string
		value       any
		expectError bool
	}{
		{n: "4", value: "1234", expectError: false},
		{n: "4", value: "123", expectError: true},
		{n: "4", value: "12345", expectError: true},
		{n: "4", value: "12ab", expectError: false}, // character count, not digit check
		{n: "4", value: 1234, expectError: false},
		{n: "4", value: json.Number("1234"), expectError: false},
		{n: "4", value: 12.5, expectError: false},
		{n: "3", value: "日本語", expectError: false},
		{n: "1", value: "0", expectError: false}, // "0" is not empty
		{n: "4", value: []string{"1", "2", "3", "4"}, expectError: true},
		{n: "4", value: "", expectError: false},
		{n: "4", value: nil, expectError: false},
		{n: "0", value: "1", expectError: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("digits:%s,v:%v", tt.n, tt.value), func(t *testing.T) {
			err := Digits.Validate(tt.value, []string{tt.n})
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}
}
