package formvalidation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Validator checks one FieldMap against one RuleSpec. Build it with [New] or
// [Make]; it is not safe for concurrent use.
type Validator struct {
	data     FieldMap
	plans    []fieldPlan
	messages customMessages
	format   MessageFormatter
	logger   *zap.Logger
	errors   *ErrorReport
}

type fieldPlan struct {
	field    string
	nullable bool
	calls    []ruleCall
}

type ruleCall struct {
	name  string
	param string
	rule  Rule
}

// Make builds a Validator and runs it. It returns a [*ConfigurationError]
// when the spec is malformed or a non-nullable field is missing from data.
func Make(data FieldMap, spec RuleSpec, messages Messages, opts ...Option) (*Validator, error) {
	v, err := New(data, spec, messages, opts...)
	if err != nil {
		return nil, err
	}
	v.Run()
	return v, nil
}

// Validate is like Make but returns the failures as [ValidationErrors], or nil.
func Validate(data FieldMap, spec RuleSpec, messages Messages, opts ...Option) error {
	v, err := Make(data, spec, messages, opts...)
	if err != nil {
		return err
	}
	return v.Err()
}

// New builds a Validator without running it. Every field without a nullable
// rule must be present in data, and every rule must resolve in the catalog
// with a usable parameter.
func New(data FieldMap, spec RuleSpec, messages Messages, opts ...Option) (*Validator, error) {
	o := newOptions(opts)
	logger := o.logger.With(zap.String("component", "formvalidation"))

	if data == nil {
		data = FieldMap{}
	}
	for _, fn := range o.transforms {
		fn(data)
	}

	if err := checkFields(data, spec); err != nil {
		return nil, err
	}

	v := &Validator{
		data:     data,
		messages: parseMessages(messages, data, o.catalog, logger),
		format:   o.format,
		logger:   logger,
		errors:   newErrorReport(),
	}

	plans, err := compile(spec, o.catalog)
	if err != nil {
		return nil, err
	}
	v.plans = plans
	return v, nil
}

// compile resolves every rule of spec against catalog.
func compile(spec RuleSpec, catalog Catalog) ([]fieldPlan, error) {
	plans := make([]fieldPlan, 0, len(spec))
	for _, fr := range spec {
		p := fieldPlan{field: fr.Field}
		for _, tok := range parseRules(fr.Rules) {
			r, ok := catalog.Lookup(tok.name)
			if !ok {
				return nil, configErr(fr.Field, tok.name, ErrUnknownRule)
			}
			if pc, ok := r.(ParamChecker); ok {
				if err := pc.CheckParam(tok.param); err != nil {
					return nil, configErr(fr.Field, tok.name, fmt.Errorf("%w: %w", ErrInvalidParam, err))
				}
			}
			if canonicalName(tok.name) == canonicalName(RuleNullable) {
				p.nullable = true
			}
			p.calls = append(p.calls, ruleCall{name: tok.name, param: tok.param, rule: r})
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// Run validates every field in declaration order. Each call starts from an
// empty report, so running twice yields the same result.
func (v *Validator) Run() {
	v.errors = newErrorReport()
	for _, p := range v.plans {
		value, exists := v.data[p.field]
		if p.nullable && (!exists || isAbsent(value)) {
			v.logger.Debug("skipping empty nullable field", zap.String("field", p.field))
			continue
		}
		for _, c := range p.calls {
			if c.rule.Check(value, c.param) {
				continue
			}
			v.logger.Debug("rule failed", zap.String("field", p.field), zap.String("rule", c.name))
			v.addError(p.field, c.name, value)
		}
	}
}

func (v *Validator) addError(field, rule string, value any) {
	msg, perRule, ok := v.messages.lookup(field, rule)
	switch {
	case ok && perRule:
		v.errors.set(field, rule, msg)
	case ok:
		v.errors.replace(field, rule, msg)
	default:
		v.errors.set(field, rule, v.format(field, rule, value))
	}
}

// Failed reports whether any rule failed.
func (v *Validator) Failed() bool {
	return v.errors.Has()
}

// Passed reports whether every rule passed.
func (v *Validator) Passed() bool {
	return !v.Failed()
}

// Errors returns the report of the last run.
func (v *Validator) Errors() *ErrorReport {
	return v.errors
}

// Err returns the failures as [ValidationErrors], or nil.
func (v *Validator) Err() error {
	return v.errors.Err()
}

// Data returns the validated data, after any transforms.
func (v *Validator) Data() FieldMap {
	return v.data
}

// UnmarshalAndValidate decodes a JSON object from b, then validates it.
// Numbers are kept as [json.Number] so their text form is checked as sent.
func UnmarshalAndValidate(b []byte, spec RuleSpec, messages Messages, opts ...Option) (*Validator, error) {
	return DecodeAndValidate(bytes.NewReader(b), spec, messages, opts...)
}

// DecodeAndValidate reads a JSON object from r using a streaming decoder,
// then validates it. Use this instead of [UnmarshalAndValidate] when reading
// directly from an [io.Reader] such as an HTTP request body.
func DecodeAndValidate(r io.Reader, spec RuleSpec, messages Messages, opts ...Option) (*Validator, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	var data FieldMap
	if err := decoder.Decode(&data); err != nil {
		return nil, err
	}
	return Make(data, spec, messages, opts...)
}
