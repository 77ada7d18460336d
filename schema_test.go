package formvalidation_test

import (
	"testing"

	v "github.com/Gobd/formvalidation"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	spec := v.RuleSpec{
		v.Field("name", "required|string|min:1|max:100"),
		v.Field("email", "required|email"),
		v.Field("role", "nullable|in:admin,editor"),
		v.Field("age", "int"),
	}

	ref, err := v.Schema(spec, nil)
	require.NoError(t, err)
	require.NotNil(t, ref.Value)

	s := ref.Value
	assert.True(t, s.Type.Is(openapi3.TypeObject))
	assert.Equal(t, []string{"name", "email"}, s.Required)
	require.Len(t, s.Properties, 4)

	name := s.Properties["name"].Value
	assert.True(t, name.Type.Is(openapi3.TypeString))
	assert.Equal(t, uint64(1), name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, uint64(100), *name.MaxLength)

	assert.Equal(t, "email", s.Properties["email"].Value.Format)

	role := s.Properties["role"].Value
	assert.True(t, role.Nullable)
	assert.Equal(t, []any{"admin", "editor"}, role.Enum)

	assert.True(t, s.Properties["age"].Value.Type.Is(openapi3.TypeInteger))
}

func TestSchema_Empty(t *testing.T) {
	ref, err := v.Schema(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ref.Value.Properties)
	assert.Empty(t, ref.Value.Required)
}

func TestSchema_Errors(t *testing.T) {
	_, err := v.Schema(v.RuleSpec{v.Field("name", "required|bogus")}, nil)
	require.ErrorIs(t, err, v.ErrUnknownRule)
	assert.True(t, v.IsConfigurationError(err))

	_, err = v.Schema(v.RuleSpec{v.Field("name", "max:ten")}, nil)
	require.ErrorIs(t, err, v.ErrInvalidParam)

	_, err = v.Schema(v.RuleSpec{v.Field("zip", "regex:(")}, nil)
	require.ErrorIs(t, err, v.ErrInvalidParam)
}

func TestSchema_LegacySize(t *testing.T) {
	spec := v.RuleSpec{v.Field("code", "size:4")}

	ref, err := v.Schema(spec, v.NewRuleSet(v.WithLegacySize()))
	require.NoError(t, err)
	code := ref.Value.Properties["code"].Value
	assert.Nil(t, code.MaxLength)
	assert.Equal(t, "length other than 4", code.Description)

	ref, err = v.Schema(spec, nil)
	require.NoError(t, err)
	code = ref.Value.Properties["code"].Value
	require.NotNil(t, code.MaxLength)
	assert.Equal(t, uint64(4), *code.MaxLength)
	assert.Equal(t, uint64(4), code.MinLength)
}

func TestDescribeRules(t *testing.T) {
	tests := []struct {
		rules string
		want  string
	}{
		{rules: "required|string|max:20", want: "required, string, max length 20"},
		{rules: "nullable|in:a,b", want: "nullable, one of [a, b]"},
		{rules: "required|email", want: "required, format email"},
		{rules: "size:4", want: "min length 4, max length 4"},
		{rules: "numeric|min:1", want: "number, min length 1"},
		{rules: "mobile", want: "pattern ^1[345789][0-9]{9}$"},
		{rules: "date:2006-01-02", want: "format 2006-01-02"},
		{rules: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.rules, func(t *testing.T) {
			got, err := v.DescribeRules("f", tt.rules, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeRules_UnknownRule(t *testing.T) {
	_, err := v.DescribeRules("f", "required|bogus", nil)
	require.ErrorIs(t, err, v.ErrUnknownRule)
}
