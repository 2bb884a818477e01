package graph

import "fmt"

// Graph is an ordered collection of nodes with unique names. The zero value
// is not usable; construct with New.
type Graph struct {
	nodes []*Node
	names map[string]*Node

	// parent is the enclosing Group node for interior graphs, nil at root.
	parent *Node
}

// New returns an empty root graph.
func New() *Graph {
	return &Graph{names: make(map[string]*Node)}
}

// Add creates a node of class and inserts it. An empty name derives one from
// the class; either way the name is uniquified with a numeric suffix, the
// host's convention.
func (g *Graph) Add(class, name string) *Node {
	if name == "" {
		name = class
	}
	n := newNode(class, g.uniqueName(name))
	n.owner = g
	if class == "Group" {
		n.sub = &Graph{names: make(map[string]*Node), parent: n}
	}
	g.nodes = append(g.nodes, n)
	g.names[n.name] = n
	return n
}

// Delete removes a node and disconnects it from all dependents.
func (g *Graph) Delete(n *Node) {
	if g.names[n.name] != n {
		return
	}
	delete(g.names, n.name)
	for i, existing := range g.nodes {
		if existing == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	for _, other := range g.nodes {
		for i, in := range other.inputs {
			if in == n {
				other.inputs[i] = nil
			}
		}
	}
	n.owner = nil
}

// Node returns the named node, or nil.
func (g *Graph) Node(name string) *Node { return g.names[name] }

// Nodes returns the graph's nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// AllNodes returns nodes whose class matches filter (empty matches all),
// descending into groups when recurse is set.
func (g *Graph) AllNodes(filter string, recurse bool) []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if filter == "" || n.Class() == filter {
			out = append(out, n)
		}
		if recurse && n.sub != nil {
			out = append(out, n.sub.AllNodes(filter, true)...)
		}
	}
	return out
}

// SelectedNodes returns all selected nodes in insertion order.
func (g *Graph) SelectedNodes() []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if n.selected {
			out = append(out, n)
		}
	}
	return out
}

// SelectedNode returns the single selected node, or nil when the selection
// is empty or ambiguous.
func (g *Graph) SelectedNode() *Node {
	sel := g.SelectedNodes()
	if len(sel) != 1 {
		return nil
	}
	return sel[0]
}

// DeselectAll clears the selection.
func (g *Graph) DeselectAll() {
	for _, n := range g.nodes {
		n.selected = false
	}
}

// Dependents returns the nodes with an input wired to n, in insertion order.
func (g *Graph) Dependents(n *Node) []*Node {
	var out []*Node
	for _, other := range g.nodes {
		for _, in := range other.inputs {
			if in == n {
				out = append(out, other)
				break
			}
		}
	}
	return out
}

// rename frees n's current name and claims name (uniquified) for it.
func (g *Graph) rename(n *Node, name string) string {
	delete(g.names, n.name)
	unique := g.uniqueName(name)
	g.names[unique] = n
	return unique
}

func (g *Graph) uniqueName(base string) string {
	if _, taken := g.names[base]; !taken {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if _, taken := g.names[candidate]; !taken {
			return candidate
		}
	}
}
