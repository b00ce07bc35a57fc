// Package rulevalidation validates map records against pipe-delimited rule
// expressions and reports every violation in one aggregated error.
//
// Rules are declared per field:
//
//	rules := rulevalidation.RuleSet{
//	    "name":  "required|min:2",
//	    "email": "nullable|email",
//	    "code":  "digits:4",
//	}
//
// Then validated with a single call:
//
//	v := rulevalidation.New()
//	data, err := v.Validate(inputs, rules)
//
// Every (field, rule) pair is checked in its own goroutine against the same
// read-only snapshot of the record. Failing checks push one entry each into a
// call-scoped collector that is drained once all checks have finished, so the
// caller always sees every violation rather than the first one. The order of
// entries in a [ValidationFailure] follows arrival and is not stable between
// runs; compare failures by field set.
//
// An unknown rule name is a programming mistake and is reported as a
// [ConfigurationError] before any check is started.
//
// Custom rules are added with [Validator.Extend] or [WithExtension]:
//
//	v := rulevalidation.New(rulevalidation.WithExtension("even",
//	    func(value any, _ []string) bool { ... },
//	    ":attribute must be even",
//	))
//
// Sub-packages:
//   - openapi – OpenAPI documents describing rule sets, and a JSON docs handler
//   - transform – record normalizers applied before validation
package rulevalidation
