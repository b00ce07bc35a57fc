package transform

import (
	"strings"
)

// TrimSpace runs [strings.TrimSpace] on every string value in the record,
// including values of nested maps and slices.
func TrimSpace(record map[string]any) {
	stringFunc(record, strings.TrimSpace)
}

// ToLower runs [strings.ToLower] on every string value in the record.
func ToLower(record map[string]any) {
	stringFunc(record, strings.ToLower)
}

// StringFunc returns a normalizer applying f to every string value.
func StringFunc(f func(string) string) func(map[string]any) {
	return func(record map[string]any) {
		stringFunc(record, f)
	}
}

// Only returns a normalizer applying fn to the listed top-level keys only.
func Only(fn func(map[string]any), keys ...string) func(map[string]any) {
	return func(record map[string]any) {
		sub := make(map[string]any, len(keys))
		for _, k := range keys {
			if v, ok := record[k]; ok {
				sub[k] = v
			}
		}
		fn(sub)
		for k, v := range sub {
			record[k] = v
		}
	}
}

// Multi returns a normalizer running fns on the record sequentially.
func Multi(fns ...func(map[string]any)) func(map[string]any) {
	return func(record map[string]any) {
		for _, f := range fns {
			f(record)
		}
	}
}

func stringFunc(record map[string]any, f func(string) string) {
	for k, v := range record {
		record[k] = apply(v, f)
	}
}

func apply(v any, f func(string) string) any {
	switch val := v.(type) {
	case string:
		return f(val)
	case *string:
		if val != nil {
			*val = f(*val)
		}
		return val
	case map[string]any:
		stringFunc(val, f)
		return val
	case []any:
		for i := range val {
			val[i] = apply(val[i], f)
		}
		return val
	case []string:
		for i := range val {
			val[i] = f(val[i])
		}
		return val
	default:
		// Other types are left untouched; their concrete shape is unknown.
		return v
	}
}
