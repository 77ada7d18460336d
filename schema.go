package formvalidation

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema generates an OpenAPI object schema for spec. Each field becomes a
// property carrying the constraints of its rules. A nil catalog means
// [DefaultRules].
func Schema(spec RuleSpec, catalog Catalog) (*openapi3.SchemaRef, error) {
	if catalog == nil {
		catalog = DefaultRules
	}
	plans, err := compile(spec, catalog)
	if err != nil {
		return nil, err
	}

	schema := openapi3.NewObjectSchema()
	for _, p := range plans {
		ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
		if err := describeCalls(p.field, p.calls, schema, ref); err != nil {
			return nil, err
		}
		schema.WithPropertyRef(p.field, ref)
	}
	return &openapi3.SchemaRef{Value: schema}, nil
}

func describeCalls(field string, calls []ruleCall, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, c := range calls {
		if err := c.rule.Describe(field, c.param, schema, ref); err != nil {
			return configErr(field, c.name, fmt.Errorf("%w: %w", ErrInvalidParam, err))
		}
	}
	return nil
}

// DescribeRules returns a human-readable summary of a rule string, such as
// "required, string, max length 20". A nil catalog means [DefaultRules].
func DescribeRules(field, rules string, catalog Catalog) (string, error) {
	if catalog == nil {
		catalog = DefaultRules
	}
	plans, err := compile(RuleSpec{Field(field, rules)}, catalog)
	if err != nil {
		return "", err
	}

	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
	if err := describeCalls(field, plans[0].calls, schema, ref); err != nil {
		return "", err
	}

	var parts []string

	if len(schema.Required) > 0 {
		parts = append(parts, "required")
	}
	if ref.Value.Nullable {
		parts = append(parts, "nullable")
	}
	if ref.Value.Type != nil {
		parts = append(parts, ref.Value.Type.Slice()...)
	}
	if ref.Value.Format != "" {
		parts = append(parts, "format "+ref.Value.Format)
	}
	if ref.Value.Pattern != "" {
		parts = append(parts, "pattern "+ref.Value.Pattern)
	}
	if ref.Value.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("min length %d", ref.Value.MinLength))
	}
	if ref.Value.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("max length %d", *ref.Value.MaxLength))
	}
	if len(ref.Value.Enum) > 0 {
		vals := make([]string, len(ref.Value.Enum))
		for i, v := range ref.Value.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if ref.Value.Description != "" {
		parts = append(parts, ref.Value.Description)
	}

	return strings.Join(parts, ", "), nil
}
