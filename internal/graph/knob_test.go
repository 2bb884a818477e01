package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnob_AnimationKeys(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	k := NewDoubleKnob("translate", "translate", 3)

	// --- Act / Assert ---
	require.Error(t, k.SetKeyAt(1, 0, 0, 0), "keys require the animated flag")

	k.SetAnimated()
	require.NoError(t, k.SetKeyAt(10, 1, 2, 3))
	require.NoError(t, k.SetKeyAt(1, 0, 0, 0))

	require.Equal(t, []int{1, 10}, k.KeyFrames(), "frames come back sorted")
	require.Equal(t, []float64{1, 2, 3}, k.ValueAt(10))
	require.Equal(t, []float64{0, 0, 0}, k.ValueAt(5), "between keys the earlier key holds")
	require.Equal(t, []float64{0, 0, 0}, k.ValueAt(-3), "before the first key the first key holds")
	require.Equal(t, []float64{1, 2, 3}, k.ValueAt(99))
}

func TestKnob_ClearAnimatedDropsKeys(t *testing.T) {
	t.Parallel()

	k := NewDoubleKnob("rotate", "rotate", 3)
	k.SetAnimated()
	require.NoError(t, k.SetKeyAt(1, 90, 0, 0))

	k.ClearAnimated()

	require.False(t, k.IsAnimated())
	require.Empty(t, k.KeyFrames())
}

func TestKnob_PerComponentExpressions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	k := NewColorKnob("manual", "manual balance")

	// --- Act ---
	k.SetExpressionAt(0, "parent.manual.r")
	k.SetExpressionAt(2, "parent.manual.b")

	// --- Assert ---
	require.True(t, k.HasExpression())
	require.Equal(t, "parent.manual.r", k.ExpressionAt(0))
	require.Equal(t, "parent.manual.b", k.ExpressionAt(2))
	require.Empty(t, k.ExpressionAt(1))
}

func TestKnob_WholeKnobExpressionCoversComponents(t *testing.T) {
	t.Parallel()

	k := NewDoubleKnob("which", "which", 1)
	k.SetExpression("parent.useMax")

	require.Equal(t, "parent.useMax", k.Expression())
	require.Equal(t, "parent.useMax", k.ExpressionAt(0),
		"component lookup falls back to the whole-knob expression")
}

func TestKnob_SetExpressionClearsAnimation(t *testing.T) {
	t.Parallel()

	k := NewDoubleKnob("value", "", 1)
	k.SetAnimated()
	require.NoError(t, k.SetKeyAt(1, 5))

	k.SetExpression("parent.gain")

	require.False(t, k.IsAnimated(), "an expression replaces animation")
}

func TestKnob_SetVectorGrows(t *testing.T) {
	t.Parallel()

	k := NewDoubleKnob("size", "", 1)
	k.SetVector(1, 2, 3, 4)
	require.Equal(t, []float64{1, 2, 3, 4}, k.Vector())
	require.Equal(t, 4, k.Components())
}

func TestKnob_Flags(t *testing.T) {
	t.Parallel()

	k := NewBoolKnob("useMax", "use max")
	require.True(t, k.HasFlag(FlagStartLine), "bool knobs start their own line by default")

	k.ClearFlag(FlagStartLine)
	require.False(t, k.HasFlag(FlagStartLine))

	k.SetFlag(FlagReadOnly | FlagDisabled)
	require.True(t, k.HasFlag(FlagReadOnly))
	require.True(t, k.HasFlag(FlagReadOnly|FlagDisabled))
	require.False(t, k.HasFlag(FlagReadOnly|FlagNoAnimation))
}
