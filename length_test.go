package formvalidation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	require.True(t, Size.Check("1234", "4"))
	require.True(t, Size.Check(1234, "4"))
	require.True(t, Size.Check("日本語", "3"))
	require.False(t, Size.Check("123", "4"))
	require.False(t, Size.Check("12345", "4"))
	require.False(t, Size.Check([]int{1, 2, 3, 4}, "4"))
	require.False(t, Size.Check(nil, "0"))
	require.Error(t, Size.CheckParam("four"))
}

func TestLegacySize(t *testing.T) {
	require.False(t, LegacySize.Check("1234", "4"))
	require.True(t, LegacySize.Check("123", "4"))
	require.True(t, LegacySize.Check("12345", "4"))
	require.False(t, LegacySize.Check([]int{1, 2, 3}, "4"))
	require.Error(t, LegacySize.CheckParam("four"))
}

func TestWithLegacySize(t *testing.T) {
	legacy := NewRuleSet(WithLegacySize())

	r, ok := legacy.Lookup(RuleSize)
	require.True(t, ok)
	require.Equal(t, LegacySize, r)

	r, ok = DefaultRules.Lookup(RuleSize)
	require.True(t, ok)
	require.Equal(t, Size, r)
}
