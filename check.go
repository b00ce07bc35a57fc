package rulevalidation

import (
	"maps"
	"slices"
)

// MissingRules returns the sorted keys of inputs that no rule in rules
// covers, leaving out the names in exclude.
//
// Use in tests or handlers to catch fields a rule set forgot:
//
//	assert.Empty(t, v.MissingRules(payload, rules))
//	assert.Empty(t, v.MissingRules(payload, rules, "trace_id"))
func MissingRules(inputs map[string]any, rules RuleSet, exclude ...string) []string {
	var missing []string
	for _, key := range slices.Sorted(maps.Keys(inputs)) {
		if _, ok := rules[key]; ok {
			continue
		}
		if slices.Contains(exclude, key) {
			continue
		}
		missing = append(missing, key)
	}
	return missing
}
