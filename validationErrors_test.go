package formvalidation

import (
	"encoding/json"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorReport_Set(t *testing.T) {
	r := newErrorReport()
	r.set("name", "required", "first")
	r.set("name", "max", "second")
	r.set("email", "email", "third")
	r.set("name", "required", "replaced")

	assert.Equal(t, []string{"name", "email"}, r.Fields())
	assert.Equal(t, []RuleError{
		{Rule: "required", Message: "replaced"},
		{Rule: "max", Message: "second"},
	}, r.Get("name"))
	assert.Equal(t, 2, r.Len())
}

func TestErrorReport_Replace(t *testing.T) {
	r := newErrorReport()
	r.set("age", "int", "not an int")
	r.set("age", "min", "too small")
	r.replace("age", "max", "invalid age")

	assert.Equal(t, []string{"age"}, r.Fields())
	assert.Equal(t, []RuleError{{Rule: "max", Message: "invalid age"}}, r.Get("age"))

	r.replace("zip", "regex", "bad zip")
	assert.Equal(t, []string{"age", "zip"}, r.Fields())
}

func TestErrorReport_Accessors(t *testing.T) {
	r := newErrorReport()
	r.set("name", "required", "missing")

	assert.True(t, r.Has())
	assert.Equal(t, "missing", r.First("name"))
	assert.Equal(t, "", r.First("email"))

	msg, ok := r.Message("name", "required")
	assert.True(t, ok)
	assert.Equal(t, "missing", msg)
	_, ok = r.Message("name", "max")
	assert.False(t, ok)

	assert.Equal(t, map[string]map[string]string{"name": {"required": "missing"}}, r.Map())

	// callers get copies
	r.Fields()[0] = "changed"
	r.Get("name")[0].Message = "changed"
	assert.Equal(t, []string{"name"}, r.Fields())
	assert.Equal(t, "missing", r.First("name"))
}

func TestErrorReport_Nil(t *testing.T) {
	var r *ErrorReport

	assert.False(t, r.Has())
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Fields())
	assert.Nil(t, r.Get("x"))
	assert.Equal(t, "", r.First("x"))
	_, ok := r.Message("x", "y")
	assert.False(t, ok)
	assert.Empty(t, r.Map())
	assert.NoError(t, r.Err())

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestErrorReport_MarshalJSON(t *testing.T) {
	r := newErrorReport()
	r.set("zeta", "required", `say "hi"`)
	r.set("alpha", "max", "a")
	r.set("alpha", "in", "b")

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":{"required":"say \"hi\""},"alpha":{"max":"a","in":"b"}}`, string(b))

	b, err = json.Marshal(newErrorReport())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestErrorReport_Err(t *testing.T) {
	r := newErrorReport()
	assert.NoError(t, r.Err())

	r.set("age", "Min", "too young")
	r.set("age", "int", "not a number")
	r.set("name", "required", "missing")

	err := r.Err()
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 2)

	var ve validation.Error
	require.True(t, errors.As(errs["age"], &ve))
	assert.Equal(t, "validation_min", ve.Code())
	assert.Equal(t, "too young; not a number", ve.Message())
	assert.Equal(t, "age: too young; not a number; name: missing.", err.Error())
}
