package formvalidation

import (
	"fmt"

	"github.com/asaskevich/govalidator"
	"go.uber.org/zap"
)

// MessageFormatter builds the default message for a failed rule when no
// custom message applies.
type MessageFormatter func(field, rule string, value any) string

// Option configures a [Validator].
type Option func(*options)

type options struct {
	catalog    Catalog
	logger     *zap.Logger
	format     MessageFormatter
	transforms []func(map[string]any)
}

func newOptions(opts []Option) options {
	o := options{
		catalog: DefaultRules,
		logger:  zap.NewNop(),
		format:  DefaultMessage,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCatalog resolves rule names against c instead of [DefaultRules].
func WithCatalog(c Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithLogger sets the logger used for debug events. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMessageFormatter replaces [DefaultMessage].
func WithMessageFormatter(f MessageFormatter) Option {
	return func(o *options) {
		if f != nil {
			o.format = f
		}
	}
}

// WithTransform runs fns on the data, in order, before any check. They
// mutate the map in place; see the transform package for ready-made ones.
func WithTransform(fns ...func(map[string]any)) Option {
	return func(o *options) {
		o.transforms = append(o.transforms, fns...)
	}
}

// DefaultMessage names the field, the rule and the failing value.
func DefaultMessage(field, rule string, value any) string {
	return fmt.Sprintf("field %s failed rule %s; value: %s", field, rule, govalidator.ToString(value))
}
