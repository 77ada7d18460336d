package formvalidation

import (
	"bytes"
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors

// RuleError is one failed rule of a field.
type RuleError struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ErrorReport maps each failed field to its failed rules, both in the order
// they were found. A field is only present once one of its rules failed.
type ErrorReport struct {
	fields  []string
	entries map[string][]RuleError
}

func newErrorReport() *ErrorReport {
	return &ErrorReport{entries: map[string][]RuleError{}}
}

// set records msg for rule on field, replacing an earlier message for the same rule.
func (r *ErrorReport) set(field, rule, msg string) {
	entry, seen := r.entries[field]
	if !seen {
		r.fields = append(r.fields, field)
	}
	for i := range entry {
		if entry[i].Rule == rule {
			entry[i].Message = msg
			return
		}
	}
	r.entries[field] = append(entry, RuleError{Rule: rule, Message: msg})
}

// replace makes msg the only message of field.
func (r *ErrorReport) replace(field, rule, msg string) {
	if _, seen := r.entries[field]; !seen {
		r.fields = append(r.fields, field)
	}
	r.entries[field] = []RuleError{{Rule: rule, Message: msg}}
}

// Has reports whether any field failed.
func (r *ErrorReport) Has() bool {
	return r != nil && len(r.fields) > 0
}

// Len returns the number of failed fields.
func (r *ErrorReport) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Fields returns the failed fields in order.
func (r *ErrorReport) Fields() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.fields...)
}

// Get returns the failed rules of field.
func (r *ErrorReport) Get(field string) []RuleError {
	if r == nil {
		return nil
	}
	return append([]RuleError(nil), r.entries[field]...)
}

// First returns the first message recorded for field, or "".
func (r *ErrorReport) First(field string) string {
	if r == nil || len(r.entries[field]) == 0 {
		return ""
	}
	return r.entries[field][0].Message
}

// Message returns the message recorded for rule on field.
func (r *ErrorReport) Message(field, rule string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, e := range r.entries[field] {
		if e.Rule == rule {
			return e.Message, true
		}
	}
	return "", false
}

// Map returns the report as field -> rule -> message.
func (r *ErrorReport) Map() map[string]map[string]string {
	m := map[string]map[string]string{}
	if r == nil {
		return m
	}
	for field, entry := range r.entries {
		m[field] = make(map[string]string, len(entry))
		for _, e := range entry {
			m[field][e.Rule] = e.Message
		}
	}
	return m
}

// MarshalJSON encodes the report as {"field": {"rule": "message"}}, keeping
// field and rule order.
func (r *ErrorReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(&buf, field); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, e := range r.entries[field] {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONKey(&buf, e.Rule); err != nil {
				return nil, err
			}
			b, err := json.Marshal(e.Message)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	b, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteByte(':')
	return nil
}

// Err converts the report to [ValidationErrors], or nil when nothing failed.
// Each field error is a [validation.Error] coded "validation_<rule>" after
// its first failed rule; several messages are joined with "; ".
func (r *ErrorReport) Err() error {
	if !r.Has() {
		return nil
	}
	errs := ValidationErrors{}
	for _, field := range r.fields {
		entry := r.entries[field]
		msgs := make([]string, len(entry))
		for i := range entry {
			msgs[i] = entry[i].Message
		}
		code := "validation_" + strings.ToLower(entry[0].Rule)
		errs[field] = validation.NewError(code, strings.Join(msgs, "; "))
	}
	return errs
}
