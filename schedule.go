package rulevalidation

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// check is one (field, rule) pair with its rule already resolved.
type check struct {
	field string
	spec  RuleSpec
	rule  Rule
}

// compile parses every expression of rules and resolves each rule name.
// Fields are visited in sorted order so the reported error is stable.
func (v *Validator) compile(rules RuleSet) ([]check, error) {
	var checks []check
	for _, field := range slices.Sorted(maps.Keys(rules)) {
		for _, spec := range ParseRules(rules[field]) {
			rule, ok := v.registry.Lookup(spec.Name)
			if !ok {
				return nil, &ConfigurationError{Field: field, Rule: spec.Name, Err: ErrUnknownRule}
			}
			if pc, ok := rule.(ParamChecker); ok {
				if err := pc.CheckParams(spec.Params); err != nil {
					return nil, &ConfigurationError{Field: field, Rule: spec.Name, Err: fmt.Errorf("%w: %v", ErrInvalidParams, err)}
				}
			}
			checks = append(checks, check{field: field, spec: spec, rule: rule})
		}
	}
	return checks, nil
}

// run starts one goroutine per check, waits for all of them, and returns the
// failed checks in arrival order. Checks not yet started when ctx is done are
// skipped; skipped reports how many.
func (v *Validator) run(ctx context.Context, record map[string]any, checks []check) (entries []ErrorEntry, skipped int) {
	agg := newAggregator(len(checks))
	var cancelled atomic.Int64

	var g errgroup.Group
	if v.concurrency > 0 {
		g.SetLimit(v.concurrency)
	}
	for _, c := range checks {
		g.Go(func() error {
			if ctx.Err() != nil {
				cancelled.Add(1)
				return nil
			}
			v.exec(record, c, agg)
			return nil
		})
	}
	// Goroutines never return errors; failures go to the aggregator.
	_ = g.Wait()

	return agg.drain(), int(cancelled.Load())
}

// exec evaluates a single check and pushes at most one entry.
func (v *Validator) exec(record map[string]any, c check, agg *aggregator) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("rule panicked",
				slog.String("field", c.field),
				slog.String("rule", c.spec.Name),
				slog.Any("panic", r),
			)
			agg.push(ErrorEntry{
				Field:   c.field,
				Rule:    c.spec.Name,
				Message: formatMessage(fallbackMessage, c.field, firstParam(c.spec.Params)),
			})
		}
	}()

	var err error
	if rr, ok := c.rule.(RecordRule); ok {
		err = rr.ValidateRecord(record, c.field, c.spec.Params)
	} else {
		err = c.rule.Validate(record[c.field], c.spec.Params)
	}
	if err == nil {
		return
	}

	v.logger.Debug("check failed",
		slog.String("field", c.field),
		slog.String("rule", c.spec.Name),
		slog.String("reason", err.Error()),
	)
	agg.push(ErrorEntry{
		Field:   c.field,
		Rule:    c.spec.Name,
		Message: v.message(c),
	})
}

// firstParam is the :value of the fallback message. It never calls into the
// rule, so it is safe inside the panic handler.
func firstParam(params []string) string {
	if len(params) > 0 {
		return params[0]
	}
	return ""
}

// message renders the entry message of a failed check, falling back to a
// generic message when the rule has no template.
func (v *Validator) message(c check) string {
	value := messageValue(c.rule, c.spec.Params)
	if msg, ok := v.Message(c.spec.Name, c.field, value); ok {
		return msg
	}
	v.logger.Warn("no message template registered for rule",
		slog.String("rule", c.spec.Name),
		slog.String("field", c.field),
	)
	return formatMessage(fallbackMessage, c.field, value)
}
