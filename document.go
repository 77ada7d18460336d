package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// FieldMap is already-parsed request or form input keyed by field name.
	FieldMap map[string]any

	// Messages maps "field" or "field.rule" to a replacement error message.
	// A "field.rule" entry wins over a plain "field" entry.
	Messages map[string]string

	// Predicate reports whether value satisfies a rule given its parameter.
	Predicate func(value any, param string) bool

	// Rule is the interface that all rules in a [Catalog] implement.
	Rule interface {
		Check(value any, param string) bool
		Describe(name, param string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// ParamChecker is implemented by rules whose parameter can be validated
	// before any data is seen. A failing check aborts construction with
	// [ErrInvalidParam].
	ParamChecker interface {
		CheckParam(param string) error
	}

	// Catalog resolves rule names to rules. Names are matched with their
	// first letter upper-cased, so "min" and "Min" resolve to the same rule.
	Catalog interface {
		Lookup(name string) (Rule, bool)
	}
)
