package formvalidation

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type numericRule struct{}

// Numeric passes for numbers and for strings holding a decimal or
// exponent literal such as "42", "-1.5" or "2e10".
var Numeric = numericRule{}

func (numericRule) Check(value any, _ string) bool {
	value, isNil := validation.Indirect(value)
	if isNil {
		return false
	}
	switch v := value.(type) {
	case json.Number:
		return isNumericString(v.String())
	case string:
		return isNumericString(v)
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (numericRule) Describe(_, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeNumber}
	return nil
}

func isNumericString(s string) bool {
	s = strings.TrimSpace(s)
	if !govalidator.IsFloat(s) {
		return false
	}
	// "." and "e5" satisfy the float pattern but carry no digits.
	mantissa, _, _ := strings.Cut(strings.ToLower(s), "e")
	return strings.ContainsAny(mantissa, "0123456789")
}

type intRule struct{}

// Int passes for integer values, integral floats, and strings holding a
// base-10 integer literal without leading zeros.
var Int = intRule{}

func (intRule) Check(value any, _ string) bool {
	value, isNil := validation.Indirect(value)
	if isNil {
		return false
	}
	switch v := value.(type) {
	case json.Number:
		return isIntString(v.String())
	case string:
		return isIntString(v)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() <= math.MaxInt64
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
	}
	return false
}

func (intRule) Describe(_, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeInteger}
	return nil
}

func isIntString(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || !govalidator.IsInt(s) {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}
