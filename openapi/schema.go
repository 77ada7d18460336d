package openapi

import (
	fv "github.com/Gobd/formvalidation"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// NewSchemaRefForSpec generates an OpenAPI object schema for a rule spec.
// A nil catalog means [formvalidation.DefaultRules].
func NewSchemaRefForSpec(spec fv.RuleSpec, catalog fv.Catalog) (*openapi3.SchemaRef, error) {
	return fv.Schema(spec, catalog)
}

// NewSchemaRefForValue generates an OpenAPI schema for a Go value, used for
// response bodies.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator()
	return g.NewSchemaRefForValue(value, nil)
}

// ErrorReportSchema describes the JSON form of [formvalidation.ErrorReport]:
// an object keyed by field whose values map rule names to messages.
func ErrorReportSchema() *openapi3.SchemaRef {
	byRule := openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema())
	report := openapi3.NewObjectSchema().WithAdditionalProperties(byRule)
	report.Description = "failed fields, each mapping rule name to message"
	return &openapi3.SchemaRef{Value: report}
}
