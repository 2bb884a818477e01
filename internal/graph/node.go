package graph

import "fmt"

// ErrUnknownKnob is returned when a knob name does not exist on a node.
var ErrUnknownKnob = fmt.Errorf("unknown knob")

// KnobChangedFunc observes knob value changes on a node.
type KnobChangedFunc func(n *Node, k *Knob)

// Node is a single operator in the graph.
type Node struct {
	class string
	name  string
	owner *Graph

	knobs  []*Knob
	byName map[string]*Knob

	inputs []*Node

	x, y     int
	w, h     int
	selected bool

	// sub holds the interior graph for Group nodes.
	sub *Graph

	knobChanged KnobChangedFunc
}

func newNode(class, name string) *Node {
	n := &Node{class: class, name: name, byName: make(map[string]*Knob)}
	for _, mk := range classKnobs[class] {
		n.AddKnob(mk())
	}
	return n
}

// Class returns the node's operator class.
func (n *Node) Class() string { return n.class }

// Name returns the node's graph-unique name.
func (n *Node) Name() string { return n.name }

// SetName renames the node, uniquifying against its graph.
func (n *Node) SetName(name string) {
	if n.owner != nil {
		name = n.owner.rename(n, name)
	}
	n.name = name
}

// FullName returns the dot-separated path from the root graph.
func (n *Node) FullName() string {
	if n.owner == nil || n.owner.parent == nil {
		return n.name
	}
	return n.owner.parent.FullName() + "." + n.name
}

// AddKnob appends a knob to the node's panel. Re-adding a name replaces the
// existing knob in place.
func (n *Node) AddKnob(k *Knob) {
	if old, ok := n.byName[k.Name()]; ok {
		for i, existing := range n.knobs {
			if existing == old {
				n.knobs[i] = k
				break
			}
		}
		n.byName[k.Name()] = k
		return
	}
	n.knobs = append(n.knobs, k)
	n.byName[k.Name()] = k
}

// RemoveKnob deletes a knob by name. Unknown names are no-ops.
func (n *Node) RemoveKnob(name string) {
	k, ok := n.byName[name]
	if !ok {
		return
	}
	delete(n.byName, name)
	for i, existing := range n.knobs {
		if existing == k {
			n.knobs = append(n.knobs[:i], n.knobs[i+1:]...)
			return
		}
	}
}

// Knob returns the named knob, or nil.
func (n *Node) Knob(name string) *Knob { return n.byName[name] }

// HasKnob reports whether the named knob exists.
func (n *Node) HasKnob(name string) bool {
	_, ok := n.byName[name]
	return ok
}

// Knobs returns the node's knobs in panel order.
func (n *Node) Knobs() []*Knob {
	out := make([]*Knob, len(n.knobs))
	copy(out, n.knobs)
	return out
}

// Set writes numeric components to the named knob and fires the node's
// knob-changed callback.
func (n *Node) Set(knob string, vals ...float64) error {
	k := n.byName[knob]
	if k == nil {
		return fmt.Errorf("%w: %s.%s", ErrUnknownKnob, n.name, knob)
	}
	k.SetVector(vals...)
	n.fireKnobChanged(k)
	return nil
}

// SetString writes a string value to the named knob and fires the node's
// knob-changed callback.
func (n *Node) SetString(knob, v string) error {
	k := n.byName[knob]
	if k == nil {
		return fmt.Errorf("%w: %s.%s", ErrUnknownKnob, n.name, knob)
	}
	k.SetString(v)
	n.fireKnobChanged(k)
	return nil
}

// SetBool writes a boolean value to the named knob and fires the node's
// knob-changed callback.
func (n *Node) SetBool(knob string, v bool) error {
	k := n.byName[knob]
	if k == nil {
		return fmt.Errorf("%w: %s.%s", ErrUnknownKnob, n.name, knob)
	}
	k.SetBool(v)
	n.fireKnobChanged(k)
	return nil
}

// OnKnobChanged installs fn as the node's knob-changed observer. A nil fn
// removes the observer.
func (n *Node) OnKnobChanged(fn KnobChangedFunc) { n.knobChanged = fn }

func (n *Node) fireKnobChanged(k *Knob) {
	if n.knobChanged != nil && !k.HasFlag(FlagNoKnobChanged) {
		n.knobChanged(n, k)
	}
}

// SetInput connects src to input slot i, growing the slot list as needed.
// Connecting past MaxInputs is rejected.
func (n *Node) SetInput(i int, src *Node) error {
	max := n.MaxInputs()
	if i < 0 || i >= max {
		return fmt.Errorf("node %s (%s): input %d out of range (max %d)", n.name, n.class, i, max)
	}
	for len(n.inputs) <= i {
		n.inputs = append(n.inputs, nil)
	}
	n.inputs[i] = src
	return nil
}

// Input returns the node connected at slot i, or nil.
func (n *Node) Input(i int) *Node {
	if i < 0 || i >= len(n.inputs) {
		return nil
	}
	return n.inputs[i]
}

// Inputs returns the number of wired input slots.
func (n *Node) Inputs() int { return len(n.inputs) }

// MaxInputs returns the class input arity. For groups it is the number of
// interior Input nodes.
func (n *Node) MaxInputs() int {
	if n.class == "Group" && n.sub != nil {
		count := 0
		for _, inner := range n.sub.Nodes() {
			if inner.Class() == "Input" {
				count++
			}
		}
		return count
	}
	if max, ok := classMaxInputs[n.class]; ok {
		return max
	}
	return 1
}

// MaxOutputs returns the number of output connections the class allows.
func (n *Node) MaxOutputs() int {
	if max, ok := classMaxOutputs[n.class]; ok {
		return max
	}
	return 1
}

// SetXYPos places the node in the DAG.
func (n *Node) SetXYPos(x, y int) { n.x, n.y = x, y }

// XPos returns the node's DAG x position.
func (n *Node) XPos() int { return n.x }

// YPos returns the node's DAG y position.
func (n *Node) YPos() int { return n.y }

// SetScreenSize records the node's rendered size in the DAG.
func (n *Node) SetScreenSize(w, h int) { n.w, n.h = w, h }

// ScreenWidth returns the rendered width, 0 when unknown.
func (n *Node) ScreenWidth() int { return n.w }

// ScreenHeight returns the rendered height, 0 when unknown.
func (n *Node) ScreenHeight() int { return n.h }

// SetSelected marks or unmarks the node in the graph selection.
func (n *Node) SetSelected(v bool) { n.selected = v }

// Selected reports whether the node is selected.
func (n *Node) Selected() bool { return n.selected }

// Subgraph returns the interior graph for Group nodes, nil otherwise.
func (n *Node) Subgraph() *Graph { return n.sub }
