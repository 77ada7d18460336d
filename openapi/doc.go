// Package openapi generates OpenAPI 3 documents whose request bodies are
// described by [formvalidation.RuleSpec] values. Response bodies are plain Go
// values.
//
// Use [DocBase] to create a base document and register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete]:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:         orderRules,
//	    Response:        Order{},
//	    ValidationError: true,
//	})
package openapi
