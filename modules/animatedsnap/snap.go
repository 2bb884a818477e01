// Package animatedsnap extends the snap options for 3D nodes to animated
// geometry. Where a plain snap matches a node to a vertex selection once, the
// animated variants re-evaluate the selection on every frame of a range and
// bake the result into keyframes on the node's transform knobs.
package animatedsnap

import (
	"fmt"
	"math"

	"github.com/thoriumgroup/thorium/internal/graph"
)

// VertexSource yields the vertex selection at a given frame. Animated
// geometry returns different positions per frame; a static selection may
// ignore the frame argument.
type VertexSource func(frame int) []graph.Vec3

// Options configures one animated snap run.
type Options struct {
	// Transforms are the knobs to bake: "translate", and optionally
	// "rotate" and "scaling". Empty means translate only.
	Transforms []string

	// Node is the 3D node to snap. Defaults to the graph's selected node.
	Node *graph.Node

	// Vertices is the per-frame vertex selection. Required.
	Vertices VertexSource

	// First and Last bound the frame range, inclusive.
	First, Last int
}

// Snap bakes the configured transforms of the target node to the vertex
// selection over the frame range. Verification happens up front so a bad
// selection or a locked knob fails before any knob is touched.
func Snap(g *graph.Graph, opts Options) error {
	node := opts.Node
	if node == nil {
		node = g.SelectedNode()
	}
	if node == nil {
		return fmt.Errorf("animatedsnap: no node to snap")
	}
	if opts.Vertices == nil {
		return fmt.Errorf("animatedsnap: no vertex selection")
	}
	transforms := opts.Transforms
	if len(transforms) == 0 {
		transforms = []string{"translate"}
	}
	if opts.Last < opts.First {
		return fmt.Errorf("animatedsnap: invalid frame range %d-%d", opts.First, opts.Last)
	}

	minVerts := 1
	withRotate, withScale := false, false
	knobs := append([]string{}, transforms...)
	knobs = append(knobs, "xform_order")
	for _, t := range transforms {
		switch t {
		case "translate":
		case "rotate":
			withRotate = true
			knobs = append(knobs, "rot_order")
		case "scaling":
			withScale = true
			minVerts = 3
		default:
			return fmt.Errorf("animatedsnap: unknown transform %q", t)
		}
	}

	if err := verifyNodeToSnap(node, knobs); err != nil {
		return err
	}
	if err := verifyVertexSelection(opts.Vertices(opts.First), minVerts); err != nil {
		return err
	}

	for _, t := range transforms {
		k := node.Knob(t)
		if k.IsAnimated() {
			k.ClearAnimated()
		}
		k.SetAnimated()
	}

	for frame := opts.First; frame <= opts.Last; frame++ {
		verts := opts.Vertices(frame)
		// Topology can change mid-range and shrink the selection.
		if err := verifyVertexSelection(verts, minVerts); err != nil {
			return fmt.Errorf("at frame %d: %w", frame, err)
		}
		center := graph.Centroid(verts)
		if err := node.Knob("translate").SetKeyAt(frame, center.X, center.Y, center.Z); err != nil {
			return err
		}
		if withRotate {
			rx, ry := planeRotations(verts, center)
			if err := node.Knob("rotate").SetKeyAt(frame, rx, ry, 0); err != nil {
				return err
			}
		}
		if withScale {
			s := meanDistance(verts, center)
			if err := node.Knob("scaling").SetKeyAt(frame, s, s, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// verifyNodeToSnap checks the knobs the snap will write exist and are
// writable and animatable.
func verifyNodeToSnap(node *graph.Node, knobs []string) error {
	for _, name := range knobs {
		k := node.Knob(name)
		if k == nil {
			return fmt.Errorf("animatedsnap: node %s has no %s knob", node.Name(), name)
		}
		if k.HasFlag(graph.FlagDisabled) || k.HasFlag(graph.FlagReadOnly) {
			return fmt.Errorf("animatedsnap: %s.%s is not writable", node.Name(), name)
		}
		if k.HasFlag(graph.FlagNoAnimation) {
			return fmt.Errorf("animatedsnap: %s.%s cannot be animated", node.Name(), name)
		}
	}
	return nil
}

func verifyVertexSelection(verts []graph.Vec3, min int) error {
	if len(verts) < min {
		return fmt.Errorf("animatedsnap: selection has %d vertices, need at least %d", len(verts), min)
	}
	return nil
}

// planeRotations fits a plane through the selection and returns the x and y
// rotations, in degrees, that orient +z along the plane normal. A selection
// too small or too degenerate to define a plane yields zero rotations.
func planeRotations(verts []graph.Vec3, center graph.Vec3) (rx, ry float64) {
	if len(verts) < 3 {
		return 0, 0
	}
	var normal graph.Vec3
	prev := verts[len(verts)-1].Sub(center)
	for _, v := range verts {
		cur := v.Sub(center)
		normal = normal.Add(prev.Cross(cur))
		prev = cur
	}
	normal = normal.Normalized()
	if normal.Length() == 0 {
		return 0, 0
	}
	rx = math.Asin(clamp(-normal.Y, -1, 1)) * 180 / math.Pi
	ry = math.Atan2(normal.X, normal.Z) * 180 / math.Pi
	return rx, ry
}

// meanDistance is the average distance from the centroid, used as a uniform
// scale estimate.
func meanDistance(verts []graph.Vec3, center graph.Vec3) float64 {
	if len(verts) == 0 {
		return 1
	}
	sum := 0.0
	for _, v := range verts {
		sum += v.Sub(center).Length()
	}
	return sum / float64(len(verts))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
