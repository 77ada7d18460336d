package formvalidation

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldRule binds a field name to its pipe-delimited rule string.
type FieldRule struct {
	Field string
	Rules string
}

// RuleSpec is an ordered list of field rules. Fields are validated, and
// reported, in declaration order.
type RuleSpec []FieldRule

// Field creates a FieldRule binding name to rules, e.g. Field("age", "required|int").
func Field(name, rules string) FieldRule {
	return FieldRule{
		Field: name,
		Rules: rules,
	}
}

// RuleSpecFromMap converts m to a RuleSpec ordered by field name.
func RuleSpecFromMap(m map[string]string) RuleSpec {
	spec := make(RuleSpec, 0, len(m))
	for field, rules := range m {
		spec = append(spec, Field(field, rules))
	}
	sort.Slice(spec, func(i, j int) bool { return spec[i].Field < spec[j].Field })
	return spec
}

// ParseRuleSpec converts dynamically typed rules, such as a decoded JSON
// object, to a RuleSpec ordered by field name. Every value must be a string.
func ParseRuleSpec(m map[string]any) (RuleSpec, error) {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	spec := make(RuleSpec, 0, len(m))
	for _, field := range fields {
		rules, ok := m[field].(string)
		if !ok {
			return nil, configErr(field, "", fmt.Errorf("%w: got %T", ErrInvalidRuleSpec, m[field]))
		}
		spec = append(spec, Field(field, rules))
	}
	return spec, nil
}

// LoadRuleSpec reads a YAML or JSON mapping of field names to rule strings.
// Declaration order is preserved. An empty document yields an empty spec.
func LoadRuleSpec(r io.Reader) (RuleSpec, error) {
	var spec RuleSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return RuleSpec{}, nil
		}
		return nil, err
	}
	return spec, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] so a RuleSpec can be embedded
// in configuration files while keeping field order.
func (s *RuleSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return configErr("", "", fmt.Errorf("%w: expected a mapping at line %d", ErrInvalidRuleSpec, node.Line))
	}

	spec := make(RuleSpec, 0, len(node.Content)/2)
	seen := map[string]bool{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if seen[key.Value] {
			return configErr(key.Value, "", fmt.Errorf("%w: duplicate field at line %d", ErrInvalidRuleSpec, key.Line))
		}
		seen[key.Value] = true
		if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!str" {
			return configErr(key.Value, "", fmt.Errorf("%w: rules must be a string at line %d", ErrInvalidRuleSpec, val.Line))
		}
		spec = append(spec, Field(key.Value, val.Value))
	}
	*s = spec
	return nil
}

// Fields returns the field names in declaration order.
func (s RuleSpec) Fields() []string {
	fields := make([]string, len(s))
	for i := range s {
		fields[i] = s[i].Field
	}
	return fields
}

// Lookup returns the rule string declared for field.
func (s RuleSpec) Lookup(field string) (string, bool) {
	for _, fr := range s {
		if fr.Field == field {
			return fr.Rules, true
		}
	}
	return "", false
}

// token is one rule invocation parsed from a rule string.
type token struct {
	name  string
	param string
}

// parseRules splits a rule string on "|" and each rule on its first ":".
// Empty rules are skipped.
func parseRules(rules string) []token {
	var toks []token
	for _, raw := range strings.Split(rules, "|") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, param, _ := strings.Cut(raw, ":")
		toks = append(toks, token{name: name, param: param})
	}
	return toks
}

// hasNullable reports whether a rule string contains a nullable rule.
func hasNullable(rules string) bool {
	for _, tok := range parseRules(rules) {
		if canonicalName(tok.name) == canonicalName(RuleNullable) {
			return true
		}
	}
	return false
}
