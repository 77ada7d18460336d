package formvalidation

import (
	"fmt"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
)

type sizeRule struct {
	inverted bool
}

// Size passes when the string or numeric value has exactly N characters.
var Size = sizeRule{}

// LegacySize passes when the length is NOT N. It keeps the behavior of older
// rule sets that relied on it; register it with [WithLegacySize].
var LegacySize = sizeRule{inverted: true}

func (r sizeRule) CheckParam(param string) error {
	_, err := parseLength(param)
	return err
}

func (r sizeRule) Check(value any, param string) bool {
	s, ok := stringify(value)
	if !ok {
		return false
	}
	n, err := parseLength(param)
	if err != nil {
		return false
	}
	return (utf8.RuneCountInString(s) == n) != r.inverted
}

func (r sizeRule) Describe(_, param string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	n, err := parseLength(param)
	if err != nil {
		return err
	}
	if r.inverted {
		appendDescription(ref, fmt.Sprintf("length other than %d", n))
		return nil
	}
	u := uint64(n)
	ref.Value.MinLength = u
	ref.Value.MaxLength = &u
	return nil
}
