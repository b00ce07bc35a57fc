package rulevalidation

import (
	"strings"
)

// ParseRules splits a rule expression such as "required|digits:4" into its
// rules. Each rule is name[:param[,param...]]; only the first colon
// separates the name, so parameters may contain colons. Empty segments are
// ignored. Names are returned normalized.
func ParseRules(expr string) []RuleSpec {
	var specs []RuleSpec
	for _, segment := range strings.Split(expr, "|") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		name, raw, hasParams := strings.Cut(segment, ":")
		spec := RuleSpec{Name: NormalizeName(name)}
		if hasParams {
			spec.Params = strings.Split(raw, ",")
		}
		specs = append(specs, spec)
	}
	return specs
}

// NormalizeName lower-cases name and strips underscores, so "is_numeric"
// and "IsNumeric" resolve to the same rule.
func NormalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
}
