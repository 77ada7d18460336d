package formvalidation

import (
	"sort"
	"strings"
)

// Built-in rule names as they are written in a rule string.
const (
	RuleRequired = "required"
	RuleNullable = "nullable"
	RuleIn       = "in"
	RuleNumeric  = "numeric"
	RuleInt      = "int"
	RuleSize     = "size"
	RuleMin      = "min"
	RuleMax      = "max"
	RuleEmail    = "email"
	RuleMobile   = "mobile"
	RuleRegex    = "regex"
	RuleURL      = "url"
	RuleString   = "string"
	RuleDate     = "date"
)

// RuleSet is the standard [Catalog]: a fixed table from canonical rule name
// to rule, built once by [NewRuleSet] and read-only afterwards.
type RuleSet struct {
	rules map[string]Rule
}

// RuleSetOption customizes a [RuleSet] built by [NewRuleSet].
type RuleSetOption func(*RuleSet)

// DefaultRules holds the built-in rules. It is used when no catalog is given.
var DefaultRules = NewRuleSet()

// NewRuleSet returns a RuleSet with every built-in rule, then applies opts.
func NewRuleSet(opts ...RuleSetOption) *RuleSet {
	s := &RuleSet{rules: map[string]Rule{}}
	for name, r := range builtinRules() {
		s.rules[canonicalName(name)] = r
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func builtinRules() map[string]Rule {
	return map[string]Rule{
		RuleRequired: Required,
		RuleNullable: Nullable,
		RuleIn:       In,
		RuleNumeric:  Numeric,
		RuleInt:      Int,
		RuleSize:     Size,
		RuleMin:      Min,
		RuleMax:      Max,
		RuleEmail:    Email,
		RuleMobile:   Mobile,
		RuleRegex:    Regex,
		RuleURL:      URL,
		RuleString:   String,
		RuleDate:     Date,
	}
}

// WithRule registers r under name, replacing any rule of the same name.
func WithRule(name string, r Rule) RuleSetOption {
	return func(s *RuleSet) {
		s.rules[canonicalName(name)] = r
	}
}

// WithLegacySize replaces size with [LegacySize], which passes when the
// length is NOT equal to the parameter.
func WithLegacySize() RuleSetOption {
	return WithRule(RuleSize, LegacySize)
}

// Lookup implements [Catalog].
func (s *RuleSet) Lookup(name string) (Rule, bool) {
	r, ok := s.rules[canonicalName(name)]
	return r, ok
}

// Names returns the canonical names of all registered rules, sorted.
func (s *RuleSet) Names() []string {
	names := make([]string, 0, len(s.rules))
	for name := range s.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// canonicalName uppercases the first byte of name.
func canonicalName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
