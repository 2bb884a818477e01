package graph

import "fmt"

// SetupFunc populates the interior graph of a group under construction.
type SetupFunc func(inner *Graph, group *Node) error

// BuildGroup creates a Group node that behaves like a stock operator: a tab
// named after its class, an invisible class marker knob, and an interior
// graph built by setup. If exactly one node is selected when the group is
// built, the group is placed relative to it, inline below when the group
// accepts inputs and beside it otherwise, and the selection moves to the new
// group.
func BuildGroup(g *Graph, class string, setup SetupFunc, padding int) (*Node, error) {
	if padding <= 0 {
		padding = DefaultPadding
	}
	selected := g.SelectedNode()

	group := g.Add("Group", class)

	group.AddKnob(NewTabKnob(class, class))
	marker := NewTextKnob("groupmo_class", "Groupmo Class: ", class)
	marker.SetFlag(FlagInvisible)
	group.AddKnob(marker)

	if err := setup(group.Subgraph(), group); err != nil {
		g.Delete(group)
		return nil, fmt.Errorf("building %s: %w", class, err)
	}

	if selected != nil {
		if group.MaxInputs() > 0 {
			CenterBelow(group, selected, padding)
			if err := ConnectInline(g, group, selected); err != nil {
				return nil, err
			}
		} else {
			group.SetXYPos(SpaceX(selected, padding), CenterY(group, selected))
		}
		g.DeselectAll()
	}

	group.SetSelected(true)
	return group, nil
}
