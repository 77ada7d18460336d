package formvalidation_test

import (
	"encoding/json"
	"strings"
	"testing"

	v "github.com/Gobd/formvalidation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadRuleSpec_YAMLOrder(t *testing.T) {
	spec, err := v.LoadRuleSpec(strings.NewReader(`
zip: required|regex:/^\d{5}$/
name: required|max:20
age: nullable|int
`))
	require.NoError(t, err)
	assert.Equal(t, v.RuleSpec{
		v.Field("zip", `required|regex:/^\d{5}$/`),
		v.Field("name", "required|max:20"),
		v.Field("age", "nullable|int"),
	}, spec)
}

func TestLoadRuleSpec_JSON(t *testing.T) {
	spec, err := v.LoadRuleSpec(strings.NewReader(`{"b": "required", "a": "email"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, spec.Fields())
}

func TestLoadRuleSpec_Empty(t *testing.T) {
	spec, err := v.LoadRuleSpec(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, spec)
	assert.NotNil(t, spec)
}

func TestLoadRuleSpec_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "number", doc: "age: 5"},
		{name: "bool", doc: "flag: true"},
		{name: "null", doc: "name: ~"},
		{name: "sequence value", doc: "tags: [required, string]"},
		{name: "mapping value", doc: "name: {rules: required}"},
		{name: "top level sequence", doc: "- required"},
		{name: "duplicate field", doc: "name: required\nname: string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.LoadRuleSpec(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, v.ErrInvalidRuleSpec)
			assert.True(t, v.IsConfigurationError(err))
		})
	}
}

func TestLoadRuleSpec_QuotedScalar(t *testing.T) {
	spec, err := v.LoadRuleSpec(strings.NewReader(`code: "1234"`))
	require.NoError(t, err)
	rules, ok := spec.Lookup("code")
	require.True(t, ok)
	assert.Equal(t, "1234", rules)
}

func TestRuleSpec_EmbeddedInConfig(t *testing.T) {
	var cfg struct {
		Name  string      `yaml:"name"`
		Rules v.RuleSpec `yaml:"rules"`
	}
	err := yaml.Unmarshal([]byte(`
name: signup
rules:
  password: required|min:8
  email: required|email
`), &cfg)
	require.NoError(t, err)
	assert.Equal(t, "signup", cfg.Name)
	assert.Equal(t, []string{"password", "email"}, cfg.Rules.Fields())
}

func TestRuleSpecFromMap(t *testing.T) {
	spec := v.RuleSpecFromMap(map[string]string{"b": "required", "a": "email", "c": ""})
	assert.Equal(t, v.RuleSpec{
		v.Field("a", "email"),
		v.Field("b", "required"),
		v.Field("c", ""),
	}, spec)
	assert.Empty(t, v.RuleSpecFromMap(nil))
}

func TestParseRuleSpec(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"name": "required", "email": "email"}`), &raw))

	spec, err := v.ParseRuleSpec(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"email", "name"}, spec.Fields())

	_, err = v.ParseRuleSpec(map[string]any{"name": "required", "age": 5})
	require.ErrorIs(t, err, v.ErrInvalidRuleSpec)
	var ce *v.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "age", ce.Field)

	_, err = v.ParseRuleSpec(map[string]any{"tags": []any{"required"}})
	require.ErrorIs(t, err, v.ErrInvalidRuleSpec)
}

func TestRuleSpec_Lookup(t *testing.T) {
	spec := v.RuleSpec{v.Field("name", "required"), v.Field("email", "email")}

	rules, ok := spec.Lookup("email")
	assert.True(t, ok)
	assert.Equal(t, "email", rules)

	_, ok = spec.Lookup("age")
	assert.False(t, ok)
}
