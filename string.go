package formvalidation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type stringRule struct{}

// String passes when the dynamic type of the value is string.
var String = stringRule{}

func (stringRule) Check(value any, _ string) bool {
	value, isNil := validation.Indirect(value)
	if isNil {
		return false
	}
	_, ok := value.(string)
	return ok
}

func (stringRule) Describe(_, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeString}
	return nil
}

type regexRule struct{}

// Regex passes when the string or numeric value matches the pattern given as
// parameter. The pattern may be wrapped in slashes with trailing flags, as in
// "/^[a-z]+$/i".
var Regex = regexRule{}

func (regexRule) CheckParam(param string) error {
	_, err := compilePattern(param)
	return err
}

func (regexRule) Check(value any, param string) bool {
	s, ok := stringify(value)
	if !ok {
		return false
	}
	re, err := compilePattern(param)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

func (regexRule) Describe(_, param string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	re, err := compilePattern(param)
	if err != nil {
		return err
	}
	ref.Value.Pattern = re.String()
	return nil
}

// compilePattern compiles a bare Go pattern or a /body/flags pattern.
func compilePattern(param string) (*regexp.Regexp, error) {
	if param == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	end := strings.LastIndexByte(param, '/')
	if param[0] != '/' || end == 0 {
		return regexp.Compile(param)
	}

	var flags string
	for _, f := range param[end+1:] {
		switch f {
		case 'i', 'm', 's', 'U':
			flags += string(f)
		case 'u':
			// patterns are always UTF-8
		default:
			return nil, fmt.Errorf("unsupported pattern flag %q", f)
		}
	}
	body := param[1:end]
	if flags != "" {
		body = "(?" + flags + ")" + body
	}
	return regexp.Compile(body)
}

// stringify returns the text form of strings and numbers. Anything else,
// including nil, reports false.
func stringify(value any) (string, bool) {
	value, isNil := validation.Indirect(value)
	if isNil {
		return "", false
	}
	if n, ok := value.(json.Number); ok {
		return n.String(), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()), true
	}
	return "", false
}
