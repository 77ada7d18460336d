package formvalidation

import (
	"sort"
)

// checkFields fails with ErrMissingField for the first field, in declaration
// order, that has no nullable rule and no key in data.
func checkFields(data FieldMap, spec RuleSpec) error {
	for _, fr := range spec {
		if _, ok := data[fr.Field]; ok {
			continue
		}
		if !hasNullable(fr.Rules) {
			return configErr(fr.Field, "", ErrMissingField)
		}
	}
	return nil
}

// MissingRules returns the keys of data, sorted, that no rule in spec
// covers. Names in exclude are never reported.
//
// Use in tests to catch forgotten fields:
//
//	assert.Empty(t, v.MissingRules(sample, spec))
//	assert.Empty(t, v.MissingRules(sample, spec, "csrf_token"))
func MissingRules(data FieldMap, spec RuleSpec, exclude ...string) []string {
	covered := map[string]bool{}
	for _, fr := range spec {
		covered[fr.Field] = true
	}
	for _, e := range exclude {
		covered[e] = true
	}

	var missing []string
	for key := range data {
		if !covered[key] {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
