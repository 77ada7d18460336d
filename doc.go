// Package formvalidation validates flat field maps against pipe-delimited
// rule strings and collects human-readable errors.
//
// Declare the rules per field, in the order they should be checked:
//
//	spec := formvalidation.RuleSpec{
//	    formvalidation.Field("name", "required|max:20"),
//	    formvalidation.Field("email", "required|email"),
//	    formvalidation.Field("phone", "nullable|mobile"),
//	}
//
// Then validate with a single call:
//
//	v, err := formvalidation.Make(data, spec, formvalidation.Messages{
//	    "email":    "please enter your email",
//	    "name.max": "name is too long",
//	})
//	if err != nil {
//	    // the rules or the data wiring are wrong: unknown rule, bad
//	    // parameter, or a missing non-nullable field
//	}
//	if v.Failed() {
//	    // v.Errors() maps each field to its failed rules and messages
//	}
//
// Built-in rules: required, nullable, in:a,b,c, numeric, int, size:n, min:n,
// max:n, email, mobile, regex:pattern, url, string and date[:layout]. Lengths
// count characters, not bytes. A field whose rules include nullable is
// skipped entirely when it is absent or empty.
//
// For HTTP handlers, [UnmarshalAndValidate] and [DecodeAndValidate] combine
// JSON decoding with validation in one step.
//
// Sub-packages:
//   - openapi – OpenAPI document generation from rule specs
//   - transform – string normalization of input maps before validation
package formvalidation
