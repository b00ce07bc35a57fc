package transform_test

import (
	"strings"
	"testing"

	"github.com/Gobd/rulevalidation/transform"
	"github.com/stretchr/testify/assert"
)

func TestTrimSpace(t *testing.T) {
	s := "  ptr  "
	record := map[string]any{
		"name":   "  Alice ",
		"ptr":    &s,
		"nested": map[string]any{"city": " Oslo "},
		"tags":   []any{" a ", 1, " b"},
		"codes":  []string{" x ", "y "},
		"age":    30,
		"nil":    nil,
	}
	transform.TrimSpace(record)

	assert.Equal(t, "Alice", record["name"])
	assert.Equal(t, "ptr", s)
	assert.Equal(t, map[string]any{"city": "Oslo"}, record["nested"])
	assert.Equal(t, []any{"a", 1, "b"}, record["tags"])
	assert.Equal(t, []string{"x", "y"}, record["codes"])
	assert.Equal(t, 30, record["age"])
	assert.Nil(t, record["nil"])
}

func TestToLower(t *testing.T) {
	record := map[string]any{"email": "Bob@Example.COM"}
	transform.ToLower(record)
	assert.Equal(t, "bob@example.com", record["email"])
}

func TestStringFunc(t *testing.T) {
	record := map[string]any{"a": "x", "b": []any{"y"}}
	transform.StringFunc(strings.ToUpper)(record)
	assert.Equal(t, map[string]any{"a": "X", "b": []any{"Y"}}, record)
}

func TestOnly(t *testing.T) {
	record := map[string]any{"status": " Draft ", "title": " Keep "}
	transform.Only(transform.TrimSpace, "status", "missing")(record)

	assert.Equal(t, "Draft", record["status"])
	assert.Equal(t, " Keep ", record["title"])
	assert.NotContains(t, record, "missing")
}

func TestMulti(t *testing.T) {
	record := map[string]any{"email": "  Bob@Example.COM "}
	transform.Multi(transform.TrimSpace, transform.ToLower)(record)
	assert.Equal(t, "bob@example.com", record["email"])
}

func TestNilRecord(t *testing.T) {
	assert.NotPanics(t, func() {
		transform.TrimSpace(nil)
		transform.Multi(transform.ToLower)(nil)
	})
}
