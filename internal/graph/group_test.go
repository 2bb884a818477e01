package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildGroup_BasicShape(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g := New()

	// --- Act ---
	group, err := BuildGroup(g, "SpillSuppress", func(inner *Graph, grp *Node) error {
		inner.Add("Input", "Input1")
		inner.Add("Output", "Output1")
		return nil
	}, 0)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Group", group.Class())
	require.Equal(t, "SpillSuppress", group.Name())
	require.True(t, group.HasKnob("SpillSuppress"), "the class tab knob is present")

	marker := group.Knob("groupmo_class")
	require.NotNil(t, marker)
	require.Equal(t, "SpillSuppress", marker.String())
	require.True(t, marker.HasFlag(FlagInvisible))

	require.True(t, group.Selected())
	require.Equal(t, 1, group.MaxInputs())
}

func TestBuildGroup_SetupFailureRemovesGroup(t *testing.T) {
	t.Parallel()

	g := New()

	_, err := BuildGroup(g, "Broken", func(inner *Graph, grp *Node) error {
		return errors.New("nope")
	}, 0)

	require.Error(t, err)
	require.Empty(t, g.Nodes(), "a failed build must not leave a half-built group behind")
}

func TestBuildGroup_PlacesInlineBelowSelection(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g := New()
	selected := g.Add("Blur", "plate")
	selected.SetXYPos(100, 100)
	dep := g.Add("Blur", "after")
	require.NoError(t, dep.SetInput(0, selected))
	selected.SetSelected(true)

	// --- Act ---
	group, err := BuildGroup(g, "Despill", func(inner *Graph, grp *Node) error {
		inner.Add("Input", "Input1")
		inner.Add("Output", "Output1")
		return nil
	}, 0)

	// --- Assert ---
	require.NoError(t, err)
	require.Same(t, selected, group.Input(0))
	require.Same(t, group, dep.Input(0))
	require.Equal(t, SpaceY(selected, DefaultPadding), group.YPos())
	require.False(t, selected.Selected(), "selection moves to the new group")
	require.True(t, group.Selected())
}

func TestBuildGroup_NoInputsPlacesBeside(t *testing.T) {
	t.Parallel()

	g := New()
	selected := g.Add("Blur", "plate")
	selected.SetXYPos(100, 100)
	selected.SetSelected(true)

	group, err := BuildGroup(g, "Generator", func(inner *Graph, grp *Node) error {
		inner.Add("Output", "Output1")
		return nil
	}, 0)

	require.NoError(t, err)
	require.Zero(t, group.Inputs(), "no interior Input nodes means no wiring")
	require.Equal(t, SpaceX(selected, DefaultPadding), group.XPos())
}
