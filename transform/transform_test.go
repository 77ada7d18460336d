package transform_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gobd/formvalidation/transform"
	"github.com/stretchr/testify/assert"
)

func TestTrimSpace(t *testing.T) {
	name := "  ptr  "
	data := map[string]any{
		"name":   "  bob ",
		"ptr":    &name,
		"nested": map[string]any{"city": " Oslo "},
		"labels": map[string]string{"a": " x "},
		"list":   []any{" a ", 1, map[string]any{"b": " b "}},
		"tags":   []string{" t1", "t2 "},
		"count":  json.Number(" 42 "),
		"age":    3,
	}

	transform.TrimSpace(data)

	assert.Equal(t, "bob", data["name"])
	assert.Equal(t, "ptr", name)
	assert.Equal(t, map[string]any{"city": "Oslo"}, data["nested"])
	assert.Equal(t, map[string]string{"a": "x"}, data["labels"])
	assert.Equal(t, []any{"a", 1, map[string]any{"b": "b"}}, data["list"])
	assert.Equal(t, []string{"t1", "t2"}, data["tags"])
	assert.Equal(t, json.Number(" 42 "), data["count"])
	assert.Equal(t, 3, data["age"])
}

func TestToLower(t *testing.T) {
	data := map[string]any{"email": "Bob@Example.COM"}
	transform.ToLower(data)
	assert.Equal(t, "bob@example.com", data["email"])
}

func TestStringFunc(t *testing.T) {
	data := map[string]any{"a": "x", "b": []any{"y"}}
	transform.StringFunc(strings.ToUpper)(data)
	assert.Equal(t, map[string]any{"a": "X", "b": []any{"Y"}}, data)
}

func TestFields(t *testing.T) {
	data := map[string]any{"email": " A@B.CO ", "password": " Secret "}

	transform.Fields(transform.TrimSpace, "email", "missing")(data)

	assert.Equal(t, "A@B.CO", data["email"])
	assert.Equal(t, " Secret ", data["password"])
	_, ok := data["missing"]
	assert.False(t, ok)
}

func TestMulti(t *testing.T) {
	data := map[string]any{"email": "  Bob@Example.COM "}
	transform.Multi(data, transform.TrimSpace, transform.ToLower)
	assert.Equal(t, "bob@example.com", data["email"])

	transform.Multi(nil)
}
