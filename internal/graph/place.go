package graph

// DAG placement helpers. The host does not report screen sizes for nodes it
// has never drawn, so width and height fall back to the stock operator size.

const (
	// DefaultPadding is the host's vertical node spacing.
	DefaultPadding = 6

	// SidePadding spaces a node one standard node width to the side.
	SidePadding = 80

	stockWidth  = 80
	stockHeight = 18
	dotWidth    = 12
	dotHeight   = 12
)

// NodeWidth returns the best guess at a node's screen width.
func NodeWidth(n *Node) int {
	if w := n.ScreenWidth(); w != 0 {
		return w
	}
	if n.Class() == "Dot" {
		return dotWidth
	}
	return stockWidth
}

// NodeHeight returns the best guess at a node's screen height.
func NodeHeight(n *Node) int {
	if h := n.ScreenHeight(); h != 0 {
		return h
	}
	if n.Class() == "Dot" {
		return dotHeight
	}
	return stockHeight
}

// CenterX returns the x position that centers target relative to source.
func CenterX(target, source *Node) int {
	return source.XPos() - (NodeWidth(target)-NodeWidth(source))/2
}

// CenterY returns the y position that centers target relative to source.
func CenterY(target, source *Node) int {
	return source.YPos() - (NodeHeight(target)-NodeHeight(source))/2
}

// SpaceX returns the x position that places a node to the right of source
// with the given padding.
func SpaceX(source *Node, padding int) int {
	return NodeWidth(source) + source.XPos() + padding
}

// SpaceY returns the y position that places a node beneath source with the
// given padding.
func SpaceY(source *Node, padding int) int {
	return NodeHeight(source) + source.YPos() + padding
}

// CenterBelow places target centered beneath source.
func CenterBelow(target, source *Node, padding int) {
	target.SetXYPos(CenterX(target, source), SpaceY(source, padding))
}

// ConnectInline wires target between source and all of source's dependents:
// target's input 0 becomes source, and every dependent input that pointed at
// source is repointed at target. Targets with no outputs keep the dependents
// untouched.
func ConnectInline(g *Graph, target, source *Node) error {
	dependents := g.Dependents(source)
	if err := target.SetInput(0, source); err != nil {
		return err
	}
	if target.MaxOutputs() == 0 {
		return nil
	}
	for _, dep := range dependents {
		if dep == target {
			continue
		}
		for i := 0; i < dep.Inputs(); i++ {
			if dep.Input(i) == source {
				if err := dep.SetInput(i, target); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
