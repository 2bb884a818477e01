package keying

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoriumgroup/thorium/internal/graph"
	"github.com/thoriumgroup/thorium/internal/host"
)

func TestSpillSuppress_BuildsGroup(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g := graph.New()

	// --- Act ---
	group, err := SpillSuppress(g)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Group", group.Class())
	require.Equal(t, GroupClass, group.Knob("groupmo_class").String())
	require.Equal(t, 1, group.MaxInputs(), "the group exposes one plate input")

	inner := group.Subgraph()
	for _, name := range []string{
		"Red", "Green", "Blue", "BGSwitch", "BGSwitchInverse",
		"Cross", "Max", "MaxOrCross", "ThresholdGamma", "ThresholdGain",
		"SubtractSpill", "RemoveNegatives", "AutoBalance", "ManualBalance",
		"AutoManualSwitch", "BlurSpill", "RemoveSpill", "ProtectAll",
	} {
		require.NotNil(t, inner.Node(name), "interior node %s must exist", name)
	}
}

func TestSpillSuppress_DespillExpressions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g := graph.New()
	group, err := SpillSuppress(g)
	require.NoError(t, err)
	inner := group.Subgraph()

	// --- Assert ---
	require.Equal(t, bgSwitchExpr, inner.Node("BGSwitch").Knob("which").Expression())

	auto := inner.Node("AutoBalance")
	require.Equal(t, "bspill", auto.Knob("temp_name0").String())
	require.Equal(t, bspillExpr, auto.Knob("temp_expr0").String())
	require.Equal(t, "gspill", auto.Knob("temp_name1").String())
	require.Equal(t, gspillExpr, auto.Knob("temp_expr1").String())
	require.Equal(t, spillExpr, auto.Knob("temp_expr2").String())
	require.Equal(t, "r * (dest.r - source.r) / spill", auto.Knob("expr0").String())

	require.Equal(t, []float64{0.1, 0.2, 0.3}, auto.Knob("source").Vector())
	require.Equal(t, []float64{0.3, 0.3, 0.3}, auto.Knob("dest").Vector())

	manual := inner.Node("ManualBalance").Knob("value")
	require.Equal(t, "parent.manual.r", manual.ExpressionAt(0))
	require.Equal(t, "parent.manual.g", manual.ExpressionAt(1))
	require.Equal(t, "parent.manual.b", manual.ExpressionAt(2))

	neg := inner.Node("RemoveNegatives")
	require.Equal(t, "r>0?r:0", neg.Knob("expr0").String())
}

func TestSpillSuppress_PromotedKnobs(t *testing.T) {
	t.Parallel()

	g := graph.New()
	group, err := SpillSuppress(g)
	require.NoError(t, err)

	for _, name := range []string{
		"source", "mix", "useMax", "gain", "gamma", "size",
		"dest", "manual", "useManual",
	} {
		require.True(t, group.HasKnob(name), "promoted knob %s must exist", name)
	}

	mix := group.Knob("mix")
	require.Equal(t, graph.KindLink, mix.Kind())
	require.Equal(t, "channel mix", mix.Label())
	require.Equal(t, "Cross", mix.Link().Node)

	require.False(t, group.Knob("useMax").HasFlag(graph.FlagStartLine),
		"useMax sits on the same line as the mix link")
}

func TestSpillSuppress_ConnectsToSelection(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g := graph.New()
	plate := g.Add("Blur", "plate")
	plate.SetSelected(true)

	// --- Act ---
	group, err := SpillSuppress(g)

	// --- Assert ---
	require.NoError(t, err)
	require.Same(t, plate, group.Input(0))
	require.True(t, group.Selected())
}

func TestModule_RegisterExposesScriptCommand(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	session := host.NewSession(host.Headless)
	defer session.Close()
	mod := &Module{}

	// --- Act ---
	require.NoError(t, mod.Register(context.Background(), session))
	require.NoError(t, session.Scripts.Do("keying.spillsuppress()"))

	// --- Assert ---
	require.NotNil(t, session.Graph.Node(GroupClass),
		"running the script command must build the group in the session graph")
}

func TestModule_RegisterGUI(t *testing.T) {
	t.Parallel()

	session := host.NewSession(host.Interactive)
	defer session.Close()
	mod := &Module{}
	require.NoError(t, mod.Register(context.Background(), session))

	require.NoError(t, mod.RegisterGUI(context.Background(), session))

	keyer := session.Menus.Menu("Nodes").FindItem("Keyer")
	require.NotNil(t, keyer)
	item := keyer.Submenu().FindItem("SpillSuppress")
	require.NotNil(t, item)
	require.NoError(t, item.Invoke(), "the menu item drives the scripting namespace")
	require.NotNil(t, session.Graph.Node(GroupClass))
}
