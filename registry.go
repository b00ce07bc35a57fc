package rulevalidation

import (
	"maps"
	"slices"
)

type registryEntry struct {
	rule    Rule
	message string
}

// Registry maps normalized rule names to rules and their message templates.
// It is not safe for concurrent mutation; register rules before the
// registry is used by an in-flight validation.
type Registry struct {
	entries map[string]registryEntry
}

// NewRegistry returns a registry seeded with the built-in rules, dates
// defaulting to layout.
func NewRegistry(layout string) *Registry {
	r := &Registry{entries: make(map[string]registryEntry)}
	for name, rule := range builtinRules(layout) {
		r.Register(name, rule, defaultMessages[name])
	}
	return r
}

func builtinRules(layout string) map[string]Rule {
	return map[string]Rule{
		"required": Required,
		"present":  Present,
		"nullable": Nullable,
		"numeric":  Numeric,
		"bool":     Bool,
		"array":    Array,
		"string":   String,
		"digits":   Digits,
		"min":      Min,
		"max":      Max,
		"date":     Date(layout),
		"email":    Email,
		"in":       In,
		"hasalpha": HasAlphabetic,
		"distinct": Distinct,
	}
}

// Register inserts or overwrites the rule stored under name.
func (r *Registry) Register(name string, rule Rule, message string) {
	r.entries[NormalizeName(name)] = registryEntry{rule: rule, message: message}
}

// replace swaps the rule stored under name, keeping its message.
func (r *Registry) replace(name string, rule Rule) {
	key := NormalizeName(name)
	e := r.entries[key]
	e.rule = rule
	r.entries[key] = e
}

// SetMessage replaces the message template of an already registered rule.
// It reports false if no rule is registered under name.
func (r *Registry) SetMessage(name, message string) bool {
	key := NormalizeName(name)
	e, ok := r.entries[key]
	if !ok {
		return false
	}
	e.message = message
	r.entries[key] = e
	return true
}

// Lookup returns the rule registered under name.
func (r *Registry) Lookup(name string) (Rule, bool) {
	e, ok := r.entries[NormalizeName(name)]
	return e.rule, ok
}

// Message returns the message template registered for name.
func (r *Registry) Message(name string) (string, bool) {
	e, ok := r.entries[NormalizeName(name)]
	if !ok || e.message == "" {
		return "", false
	}
	return e.message, true
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.entries))
}
