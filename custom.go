package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type custom struct {
	f    Predicate
	desc string
}

// By wraps f into a Rule that uses desc for documentation. Register it with
// [WithRule] to make it available in rule strings.
func By(f Predicate, desc string) Rule {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (r custom) Check(value any, param string) bool {
	return r.f(value, param)
}

func (r custom) Describe(_, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}
