package formvalidation

import (
	"regexp"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type emailRule struct{}

// Email passes for a non-empty string in email address format.
var Email = emailRule{}

func (emailRule) Check(value any, _ string) bool {
	s, ok := stringify(value)
	if !ok || s == "" {
		return false
	}
	return is.EmailFormat.Validate(s) == nil
}

func (emailRule) Describe(_, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = "email"
	return nil
}

type urlRule struct{}

// URL passes for an absolute URL with a scheme, such as "https://example.com/a?b=c".
var URL = urlRule{}

func (urlRule) Check(value any, _ string) bool {
	s, ok := stringify(value)
	if !ok || s == "" {
		return false
	}
	return govalidator.IsURL(s) && govalidator.IsRequestURL(s)
}

func (urlRule) Describe(_, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = "uri"
	return nil
}

var mobileRegexp = regexp.MustCompile(`^1[345789][0-9]{9}$`)

type mobileRule struct{}

// Mobile passes for an 11 digit mainland China mobile number: a leading 1,
// then one of 3, 4, 5, 7, 8 or 9, then nine digits.
var Mobile = mobileRule{}

func (mobileRule) Check(value any, _ string) bool {
	s, ok := stringify(value)
	if !ok {
		return false
	}
	return mobileRegexp.MatchString(s)
}

func (mobileRule) Describe(_, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = mobileRegexp.String()
	return nil
}
