// Package keying ships the suite's keying helpers. Its one tool today is
// SpillSuppress, a group node that removes screen-color spill from keyed
// footage with either automatic or manual color balancing.
package keying

import (
	"github.com/thoriumgroup/thorium/internal/graph"
)

// GroupClass is the class marker on SpillSuppress groups.
const GroupClass = "SpillSuppress"

// The auto-balance despill math, expressed as host expressions. The spill
// channel is whichever of green or blue dominates the source color.
const (
	bgSwitchExpr = "AutoBalance.source.g-AutoBalance.source.b>0?1:0"
	bspillExpr   = "source.b - pow(source.r * (1 - Cross.mix) " +
		"+ source.g * Cross.mix, 1 / (ThresholdGamma.value " +
		"+ 0.000001) ) * ThresholdGain.value"
	gspillExpr = "source.g - pow(source.r * (1 - Cross.mix) " +
		"+ source.b * Cross.mix, 1 / (ThresholdGamma.value " +
		"+ 0.000001) ) * ThresholdGain.value"
	spillExpr = "source.g-source.b>0?gspill:bspill"
)

// SpillSuppress builds the despill group in g, placing and connecting it
// relative to the current selection.
func SpillSuppress(g *graph.Graph) (*graph.Node, error) {
	return graph.BuildGroup(g, GroupClass, setup, 0)
}

// setShuffle points all color channels of a shuffle at one source channel,
// with a solid alpha.
func setShuffle(shuffle *graph.Node, color string) {
	shuffle.Knob("red").SetString(color)
	shuffle.Knob("green").SetString(color)
	shuffle.Knob("blue").SetString(color)
	shuffle.Knob("alpha").SetString("white")
}

func setup(inner *graph.Graph, groupmo *graph.Node) error {
	input := inner.Add("Input", "")

	dot := inner.Add("Dot", "")
	if err := dot.SetInput(0, input); err != nil {
		return err
	}
	graph.CenterBelow(dot, input, 100)

	green := inner.Add("Shuffle", "Green")
	if err := green.SetInput(0, dot); err != nil {
		return err
	}
	graph.CenterBelow(green, dot, 200)
	setShuffle(green, "green")

	red := inner.Add("Shuffle", "Red")
	if err := red.SetInput(0, dot); err != nil {
		return err
	}
	red.SetXYPos(green.XPos()-160, green.YPos())
	setShuffle(red, "red")

	blue := inner.Add("Shuffle", "Blue")
	if err := blue.SetInput(0, dot); err != nil {
		return err
	}
	blue.SetXYPos(graph.SpaceX(green, graph.SidePadding), green.YPos())
	setShuffle(blue, "blue")

	dot2 := inner.Add("Dot", "")
	if err := dot2.SetInput(0, dot); err != nil {
		return err
	}
	dot2.SetXYPos(graph.SpaceX(blue, graph.SidePadding), blue.YPos())

	mainSwitch := inner.Add("Switch", "BGSwitch")
	if err := connect(mainSwitch, blue, green); err != nil {
		return err
	}
	graph.CenterBelow(mainSwitch, blue, 100)
	mainSwitch.Knob("which").SetExpression(bgSwitchExpr)

	inverseSwitch := inner.Add("Switch", "BGSwitchInverse")
	if err := connect(inverseSwitch, green, blue); err != nil {
		return err
	}
	graph.CenterBelow(inverseSwitch, green, 100)

	cross := inner.Add("Merge2", "Cross")
	if err := connect(cross, red, inverseSwitch); err != nil {
		return err
	}
	graph.CenterBelow(cross, red, 200)
	cross.Knob("mix").SetFloat(0.5)

	maxMerge := inner.Add("Merge2", "Max")
	if err := connect(maxMerge, red, inverseSwitch); err != nil {
		return err
	}
	maxMerge.SetXYPos(cross.XPos()-160, cross.YPos())
	maxMerge.Knob("operation").SetString("max")

	mixSwitch := inner.Add("Switch", "MaxOrCross")
	if err := connect(mixSwitch, cross, maxMerge); err != nil {
		return err
	}
	graph.CenterBelow(mixSwitch, maxMerge, 40)
	mixSwitch.Knob("which").SetExpression("parent.useMax")

	threshGamma := inner.Add("Gamma", "ThresholdGamma")
	if err := threshGamma.SetInput(0, mixSwitch); err != nil {
		return err
	}
	graph.CenterBelow(threshGamma, mixSwitch, graph.DefaultPadding)
	threshGamma.Knob("value").SetExpression("parent.gamma")

	threshGain := inner.Add("Multiply", "ThresholdGain")
	if err := threshGain.SetInput(0, threshGamma); err != nil {
		return err
	}
	graph.CenterBelow(threshGain, threshGamma, graph.DefaultPadding)
	threshGain.Knob("value").SetExpression("parent.gain")

	subtractSpill := inner.Add("Merge2", "SubtractSpill")
	if err := connect(subtractSpill, threshGain, mainSwitch); err != nil {
		return err
	}
	subtractSpill.SetXYPos(
		graph.CenterX(subtractSpill, mainSwitch),
		graph.CenterY(subtractSpill, threshGain),
	)
	subtractSpill.Knob("operation").SetString("minus")

	removeNegatives := inner.Add("Expression", "RemoveNegatives")
	if err := removeNegatives.SetInput(0, subtractSpill); err != nil {
		return err
	}
	graph.CenterBelow(removeNegatives, subtractSpill, graph.DefaultPadding)
	removeNegatives.Knob("expr0").SetString("r>0?r:0")
	removeNegatives.Knob("expr1").SetString("g>0?g:0")
	removeNegatives.Knob("expr2").SetString("b>0?b:0")

	autoBalance := inner.Add("Expression", "AutoBalance")
	if err := autoBalance.SetInput(0, removeNegatives); err != nil {
		return err
	}
	autoBalance.SetXYPos(
		graph.CenterX(autoBalance, removeNegatives)-180,
		removeNegatives.YPos()+100,
	)
	autoBalance.Knob("temp_name0").SetString("bspill")
	autoBalance.Knob("temp_expr0").SetString(bspillExpr)
	autoBalance.Knob("temp_name1").SetString("gspill")
	autoBalance.Knob("temp_expr1").SetString(gspillExpr)
	autoBalance.Knob("temp_name2").SetString("spill")
	autoBalance.Knob("temp_expr2").SetString(spillExpr)
	autoBalance.Knob("expr0").SetString("r * (dest.r - source.r) / spill")
	autoBalance.Knob("expr1").SetString("g * (dest.g - source.g) / spill")
	autoBalance.Knob("expr2").SetString("b * (dest.b - source.b) / spill")

	autoBalance.AddKnob(graph.NewTabKnob("spillcontrols", "Spill Controls"))
	source := graph.NewColorKnob("source", "source color")
	source.SetVector(0.1, 0.2, 0.3)
	autoBalance.AddKnob(source)
	dest := graph.NewColorKnob("dest", "destination color")
	dest.SetVector(0.3, 0.3, 0.3)
	autoBalance.AddKnob(dest)

	manualBalance := inner.Add("Multiply", "ManualBalance")
	if err := manualBalance.SetInput(0, removeNegatives); err != nil {
		return err
	}
	manualBalance.SetXYPos(
		graph.CenterX(manualBalance, removeNegatives)+100,
		removeNegatives.YPos()+100,
	)
	// Set per-channel values first to split the knob into channels, then
	// drive each channel from the group's manual balance color.
	value := manualBalance.Knob("value")
	value.SetVector(0.1, 0.1, 0.1, 1)
	value.SetExpressionAt(0, "parent.manual.r")
	value.SetExpressionAt(1, "parent.manual.g")
	value.SetExpressionAt(2, "parent.manual.b")

	autoSwitch := inner.Add("Switch", "AutoManualSwitch")
	if err := connect(autoSwitch, autoBalance, manualBalance); err != nil {
		return err
	}
	graph.CenterBelow(autoSwitch, removeNegatives, 200)
	autoSwitch.Knob("which").SetExpression("parent.useManual")

	blur := inner.Add("Blur", "BlurSpill")
	if err := blur.SetInput(0, autoSwitch); err != nil {
		return err
	}
	graph.CenterBelow(blur, autoSwitch, graph.DefaultPadding)

	dot3 := inner.Add("Dot", "")
	if err := dot3.SetInput(0, dot2); err != nil {
		return err
	}
	dot3.SetXYPos(dot2.XPos(), blur.YPos())

	removeSpill := inner.Add("Merge2", "RemoveSpill")
	if err := connect(removeSpill, dot3, blur); err != nil {
		return err
	}
	graph.CenterBelow(removeSpill, blur, 50)
	removeSpill.Knob("operation").SetString("plus")

	protect := inner.Add("Copy", "ProtectAll")
	if err := connect(protect, dot3, removeSpill); err != nil {
		return err
	}
	protect.Knob("from_0").SetString("rgba.red")
	protect.Knob("from_1").SetString("rgba.green")
	protect.Knob("from_2").SetString("rgba.blue")
	graph.CenterBelow(protect, removeSpill, 100)

	output := inner.Add("Output", "")
	if err := output.SetInput(0, protect); err != nil {
		return err
	}
	graph.CenterBelow(output, protect, graph.DefaultPadding)

	// Promote the controls onto the group panel.
	setLink(groupmo, autoBalance, "source", "", true)
	groupmo.AddKnob(graph.NewTextKnob("source_divider", "", ""))

	setLink(groupmo, cross, "mix", "channel mix", true)
	useMax := graph.NewBoolKnob("useMax", "use maximum for mix")
	useMax.ClearFlag(graph.FlagStartLine)
	groupmo.AddKnob(useMax)

	gain := graph.NewDoubleKnob("gain", "gain", 1)
	gamma := graph.NewDoubleKnob("gamma", "gamma", 1)
	gamma.ClearFlag(graph.FlagStartLine)
	groupmo.AddKnob(gain)
	groupmo.AddKnob(gamma)

	setLink(groupmo, blur, "size", "blur spill", true)

	groupmo.AddKnob(graph.NewTextKnob("destination_divider", "", ""))

	setLink(groupmo, autoBalance, "dest", "", true)

	groupmo.AddKnob(graph.NewColorKnob("manual", "manual balance"))
	useManual := graph.NewBoolKnob("useManual", "use manual balancing")
	useManual.ClearFlag(graph.FlagStartLine)
	groupmo.AddKnob(useManual)

	return nil
}

// connect wires the first two inputs of a node.
func connect(n, a, b *graph.Node) error {
	if err := n.SetInput(0, a); err != nil {
		return err
	}
	return n.SetInput(1, b)
}

// setLink promotes source's knob onto target with a link knob.
func setLink(target, source *graph.Node, knob, label string, startline bool) {
	src := source.Knob(knob)
	if src == nil {
		return
	}
	if label == "" {
		label = src.Label()
	}
	link := graph.NewLinkKnob(knob, label, graph.LinkTarget{
		Node: source.Name(),
		Knob: knob,
	})
	if !startline {
		link.ClearFlag(graph.FlagStartLine)
	}
	target.AddKnob(link)
}
