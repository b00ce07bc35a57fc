package rulevalidation

import "strings"

// fallbackMessage is used when a failing rule has no template, and for
// checks that panicked.
const fallbackMessage = ":attribute is invalid"

var defaultMessages = map[string]string{
	"array":    ":attribute must be an array",
	"string":   ":attribute must be a string",
	"bool":     ":attribute must be a boolean",
	"numeric":  ":attribute must be a number",
	"required": ":attribute is required",
	"max":      ":attribute must not be more than :value",
	"min":      ":attribute must not be less than :value",
	"digits":   ":attribute must contain :value digits",
	"date":     ":attribute must be a valid date",
	"email":    ":attribute must be a valid email",
	"present":  ":attribute must be present",
	"in":       ":attribute must be one of :value",
	"hasalpha": ":attribute must contain at least one alphabetic character",
	"distinct": ":attribute must not contain duplicate items",
}

// formatMessage substitutes :attribute and :value literally.
func formatMessage(template, attribute, value string) string {
	message := strings.ReplaceAll(template, ":attribute", attribute)
	return strings.ReplaceAll(message, ":value", value)
}

// Message renders the template registered for rule. It reports false when
// the rule has no template.
func (v *Validator) Message(rule, attribute, value string) (string, bool) {
	template, ok := v.registry.Message(rule)
	if !ok || template == "" {
		return "", false
	}
	return formatMessage(template, attribute, value), true
}

// messageValue returns the :value substitution for a rule and its params.
func messageValue(rule Rule, params []string) string {
	if mv, ok := rule.(MessageValuer); ok {
		return mv.MessageValue(params)
	}
	return firstParam(params)
}
