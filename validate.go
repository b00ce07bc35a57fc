package rulevalidation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
)

// Validator checks records against rule sets. Configure it with options at
// construction; after that it is safe for concurrent use as long as Extend
// and Register are not called while a validation is in flight.
type Validator struct {
	registry    *Registry
	logger      *slog.Logger
	concurrency int

	// late holds option steps that New runs after every other option.
	late []func(*Validator)
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithConcurrency caps the number of checks running at once. Zero or less
// starts one goroutine per check.
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		v.concurrency = max(n, 0)
	}
}

// WithDateLayout sets the layout the built-in date rule uses when no
// parameter is given. A date rule registered with WithRule or
// WithExtension is left alone, whatever the option order.
func WithDateLayout(layout string) Option {
	return func(v *Validator) {
		v.late = append(v.late, func(v *Validator) {
			if layout == "" {
				return
			}
			if rule, ok := v.registry.Lookup("date"); ok {
				if _, builtin := rule.(*DateRule); !builtin {
					return
				}
			}
			v.registry.replace("date", Date(layout))
		})
	}
}

// WithMessages overrides message templates of registered rules, including
// rules added by WithRule or WithExtension in any position of the option
// list. Templates for unknown rules are ignored.
func WithMessages(messages map[string]string) Option {
	return func(v *Validator) {
		v.late = append(v.late, func(v *Validator) {
			for name, msg := range messages {
				v.registry.SetMessage(name, msg)
			}
		})
	}
}

// WithRule registers rule under name.
func WithRule(name string, rule Rule, message string) Option {
	return func(v *Validator) {
		v.Register(name, rule, message)
	}
}

// WithExtension registers a custom check under name, as Extend does.
func WithExtension(name string, check CheckFunc, message string) Option {
	return func(v *Validator) {
		v.Extend(name, check, message)
	}
}

// New returns a Validator with the built-in rules registered.
func New(opts ...Option) *Validator {
	v := &Validator{
		registry: NewRegistry(DefaultDateLayout),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	for _, step := range v.late {
		step(v)
	}
	v.late = nil
	return v
}

// Registry returns the validator's rule registry.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Register adds or replaces a rule. Must not be called concurrently with
// Validate.
func (v *Validator) Register(name string, rule Rule, message string) {
	v.registry.Register(name, rule, message)
}

// Extend adds or replaces a rule backed by check. The check is skipped for
// empty values and a false result fails the field with message, where
// :attribute is the field name and :value the rule's first parameter.
// Must not be called concurrently with Validate.
func (v *Validator) Extend(name string, check CheckFunc, message string) {
	v.registry.Register(name, extension{name: NormalizeName(name), check: check}, message)
}

// Validate checks inputs against rules and returns inputs unchanged when
// every check passes. It returns a *ConfigurationError, before running any
// check, when rules name an unknown rule or pass it bad parameters, and a
// *ValidationFailure listing every failed check otherwise.
func (v *Validator) Validate(inputs map[string]any, rules RuleSet) (map[string]any, error) {
	return v.ValidateCtx(context.Background(), inputs, rules)
}

// ValidateCtx is like Validate but stops starting new checks once ctx is
// done. Checks already running finish; if any check was skipped the context
// error is returned instead of a partial result.
func (v *Validator) ValidateCtx(ctx context.Context, inputs map[string]any, rules RuleSet) (map[string]any, error) {
	v.logger.Debug("parsing rules", slog.Int("fields", len(rules)))
	checks, err := v.compile(rules)
	if err != nil {
		v.logger.Debug("rule set rejected", slog.Any("error", err))
		return nil, err
	}

	// Checks read this copy only, so callers touching inputs afterwards
	// cannot race with them.
	snapshot := maps.Clone(inputs)
	if snapshot == nil {
		snapshot = map[string]any{}
	}

	v.logger.Debug("scheduling checks", slog.Int("checks", len(checks)))
	entries, skipped := v.run(ctx, snapshot, checks)
	if skipped > 0 {
		return nil, fmt.Errorf("rulevalidation: %d of %d checks not run: %w", skipped, len(checks), ctx.Err())
	}

	v.logger.Debug("checks finished", slog.Int("checks", len(checks)), slog.Int("failed", len(entries)))
	if len(entries) > 0 {
		return nil, &ValidationFailure{entries: entries}
	}
	return inputs, nil
}

// UnmarshalAndValidate decodes the JSON object b, applies normalizers in
// order, then validates the result. Numbers are decoded as [json.Number].
func (v *Validator) UnmarshalAndValidate(b []byte, rules RuleSet, normalizers ...func(map[string]any)) (map[string]any, error) {
	return v.DecodeAndValidateCtx(context.Background(), bytes.NewReader(b), rules, normalizers...)
}

// DecodeAndValidate reads a JSON object from r using a streaming decoder,
// then normalizes and validates it. Use this instead of
// [Validator.UnmarshalAndValidate] when reading directly from an
// [io.Reader] such as an HTTP request body.
func (v *Validator) DecodeAndValidate(r io.Reader, rules RuleSet, normalizers ...func(map[string]any)) (map[string]any, error) {
	return v.DecodeAndValidateCtx(context.Background(), r, rules, normalizers...)
}

// DecodeAndValidateCtx is like DecodeAndValidate but passes ctx to
// ValidateCtx.
func (v *Validator) DecodeAndValidateCtx(ctx context.Context, r io.Reader, rules RuleSet, normalizers ...func(map[string]any)) (map[string]any, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	var record map[string]any
	if err := decoder.Decode(&record); err != nil {
		return nil, err
	}
	if record == nil {
		record = map[string]any{}
	}
	for _, normalize := range normalizers {
		normalize(record)
	}
	return v.ValidateCtx(ctx, record, rules)
}
