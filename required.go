package formvalidation

import (
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule struct{}

// Required passes unless the value is nil, a whitespace-only string, or an
// empty slice, array or map. Zero numbers and false pass.
var Required = requiredRule{}

func (requiredRule) Check(value any, _ string) bool {
	value, isNil := validation.Indirect(value)
	if isNil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) != ""
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return true
}

func (requiredRule) Describe(name, _ string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	schema.Required = append(schema.Required, name)
	return nil
}
