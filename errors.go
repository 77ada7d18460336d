package formvalidation

import (
	"errors"
	"fmt"
)

// Configuration errors. They describe a programming mistake in the rule spec
// or the input wiring and are returned wrapped in a [*ConfigurationError].
var (
	// ErrMissingField is returned when a non-nullable field is absent from the data.
	ErrMissingField = errors.New("referenced field missing from input")

	// ErrUnknownRule is returned when a rule name is not in the catalog.
	ErrUnknownRule = errors.New("rule does not exist")

	// ErrInvalidRuleSpec is returned when a field's rules are not a string.
	ErrInvalidRuleSpec = errors.New("invalid rule specification")

	// ErrInvalidParam is returned when a rule parameter cannot be used.
	ErrInvalidParam = errors.New("invalid rule parameter")
)

// ConfigurationError aborts validation entirely. It is never recorded in an
// [ErrorReport].
type ConfigurationError struct {
	Field string
	Rule  string
	Err   error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Field != "" && e.Rule != "":
		return fmt.Sprintf("field %q rule %q: %s", e.Field, e.Rule, e.Err)
	case e.Field != "":
		return fmt.Sprintf("field %q: %s", e.Field, e.Err)
	case e.Rule != "":
		return fmt.Sprintf("rule %q: %s", e.Rule, e.Err)
	}
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is or wraps a [*ConfigurationError].
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

func configErr(field, rule string, err error) error {
	return &ConfigurationError{Field: field, Rule: rule, Err: err}
}
