package formvalidation

import (
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// dateLayouts are tried in order when a date rule has no layout parameter.
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"01/02/2006",
	"02-01-2006",
	"02.01.2006",
	"20060102",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

var defaultDateRules = func() []validation.DateRule {
	rules := make([]validation.DateRule, len(dateLayouts))
	for i, layout := range dateLayouts {
		rules[i] = validation.Date(layout)
	}
	return rules
}()

type dateRule struct{}

// Date passes for a non-zero time.Time, or a string or number that parses as
// a valid calendar date. The parameter, when set, is the only Go time layout
// accepted; otherwise a list of common layouts is tried.
var Date = dateRule{}

func (dateRule) Check(value any, param string) bool {
	value, isNil := validation.Indirect(value)
	if isNil {
		return false
	}
	if t, ok := value.(time.Time); ok {
		return !t.IsZero()
	}
	s, ok := stringify(value)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	rules := defaultDateRules
	if param != "" {
		rules = []validation.DateRule{validation.Date(param)}
	}
	for _, r := range rules {
		if r.Validate(s) == nil {
			return true
		}
	}
	return false
}

func (dateRule) Describe(_, param string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if param == "" {
		ref.Value.Format = "date"
		return nil
	}
	ref.Value.Format = param
	return nil
}
