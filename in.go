package formvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

type inRule struct{}

// In passes when the string form of the value equals one of the
// comma-separated values of the parameter.
var In = inRule{}

func (inRule) Check(value any, param string) bool {
	s, ok := stringify(value)
	if !ok {
		return false
	}
	for _, want := range strings.Split(param, ",") {
		if s == want {
			return true
		}
	}
	return false
}

func (inRule) Describe(_, param string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	values := strings.Split(param, ",")
	ref.Value.Enum = make([]any, len(values))
	for i := range values {
		ref.Value.Enum[i] = values[i]
	}
	return nil
}
