package formvalidation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
)

type thresholdRule struct {
	min bool
}

// Min passes when the string or numeric value has at least N characters.
var Min = thresholdRule{min: true}

// Max passes when the string or numeric value has at most N characters.
var Max = thresholdRule{min: false}

func (r thresholdRule) CheckParam(param string) error {
	_, err := parseLength(param)
	return err
}

func (r thresholdRule) Check(value any, param string) bool {
	s, ok := stringify(value)
	if !ok {
		return false
	}
	n, err := parseLength(param)
	if err != nil {
		return false
	}
	if r.min {
		return utf8.RuneCountInString(s) >= n
	}
	return utf8.RuneCountInString(s) <= n
}

func (r thresholdRule) Describe(_, param string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	n, err := parseLength(param)
	if err != nil {
		return err
	}
	u := uint64(n)
	if r.min {
		ref.Value.MinLength = u
	} else {
		ref.Value.MaxLength = &u
	}
	return nil
}

// parseLength parses a non-negative character count.
func parseLength(param string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil {
		return 0, fmt.Errorf("length %q is not an integer", param)
	}
	if n < 0 {
		return 0, fmt.Errorf("length %d is negative", n)
	}
	return n, nil
}
