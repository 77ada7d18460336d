package formvalidation

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type nullableRule struct{}

// Nullable always passes. Its presence in a rule string makes the field
// optional: when the field is absent or empty the whole chain is skipped.
var Nullable = nullableRule{}

func (nullableRule) Check(any, string) bool {
	return true
}

func (nullableRule) Describe(_, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Nullable = true
	return nil
}

// isAbsent reports whether value counts as missing for a nullable field:
// nil, a zero-length string, or an empty collection.
func isAbsent(value any) bool {
	value, isNil := validation.Indirect(value)
	if isNil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}
