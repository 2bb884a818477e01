package graph

import (
	"fmt"
	"sort"
)

// Kind identifies the value class of a knob.
type Kind int

const (
	// KindBool is a checkbox knob.
	KindBool Kind = iota
	// KindDouble is a numeric knob with one or more components.
	KindDouble
	// KindString is an editable string knob.
	KindString
	// KindText is a static label knob.
	KindText
	// KindColor is a numeric RGB triple.
	KindColor
	// KindTab starts a new panel tab.
	KindTab
	// KindLink mirrors a knob on another node.
	KindLink
)

// LinkTarget identifies the knob a link knob mirrors.
type LinkTarget struct {
	Node string
	Knob string
}

// Knob is a single control on a node. Numeric knobs hold one value per
// component and may carry either an expression or baked animation keys; the
// host evaluates expressions, so this model only stores them.
type Knob struct {
	name    string
	label   string
	kind    Kind
	flags   Flag
	tooltip string

	b     bool
	s     string
	f     []float64
	expr  string
	exprs []string
	link  *LinkTarget

	animated bool
	keys     map[int][]float64
}

// NewBoolKnob returns a checkbox knob.
func NewBoolKnob(name, label string) *Knob {
	return &Knob{name: name, label: label, kind: KindBool, flags: FlagStartLine}
}

// NewDoubleKnob returns a numeric knob with the given component count.
func NewDoubleKnob(name, label string, components int) *Knob {
	if components < 1 {
		components = 1
	}
	return &Knob{name: name, label: label, kind: KindDouble, f: make([]float64, components)}
}

// NewColorKnob returns an RGB color knob.
func NewColorKnob(name, label string) *Knob {
	return &Knob{name: name, label: label, kind: KindColor, f: make([]float64, 3)}
}

// NewStringKnob returns an editable string knob.
func NewStringKnob(name, label string) *Knob {
	return &Knob{name: name, label: label, kind: KindString}
}

// NewTextKnob returns a static label knob displaying text.
func NewTextKnob(name, label, text string) *Knob {
	return &Knob{name: name, label: label, kind: KindText, s: text}
}

// NewTabKnob returns a knob that opens a new panel tab.
func NewTabKnob(name, label string) *Knob {
	return &Knob{name: name, label: label, kind: KindTab}
}

// NewLinkKnob returns a knob mirroring target.
func NewLinkKnob(name, label string, target LinkTarget) *Knob {
	return &Knob{name: name, label: label, kind: KindLink, link: &target, flags: FlagStartLine}
}

// Name returns the knob's script name.
func (k *Knob) Name() string { return k.name }

// Label returns the knob's panel label.
func (k *Knob) Label() string { return k.label }

// Kind returns the knob's value class.
func (k *Knob) Kind() Kind { return k.kind }

// SetFlag sets the given flag bits.
func (k *Knob) SetFlag(f Flag) { k.flags |= f }

// ClearFlag clears the given flag bits.
func (k *Knob) ClearFlag(f Flag) { k.flags &^= f }

// HasFlag reports whether all given flag bits are set.
func (k *Knob) HasFlag(f Flag) bool { return k.flags&f == f }

// SetTooltip sets the hover text.
func (k *Knob) SetTooltip(t string) { k.tooltip = t }

// Tooltip returns the hover text.
func (k *Knob) Tooltip() string { return k.tooltip }

// Link returns the mirrored target for link knobs, or nil.
func (k *Knob) Link() *LinkTarget { return k.link }

// SetBool sets a boolean value.
func (k *Knob) SetBool(v bool) { k.b = v }

// Bool returns the boolean value.
func (k *Knob) Bool() bool { return k.b }

// SetString sets a string value.
func (k *Knob) SetString(v string) { k.s = v }

// String returns the string value.
func (k *Knob) String() string { return k.s }

// SetFloat sets the first numeric component.
func (k *Knob) SetFloat(v float64) {
	if len(k.f) == 0 {
		k.f = make([]float64, 1)
	}
	k.f[0] = v
}

// Float returns the first numeric component.
func (k *Knob) Float() float64 {
	if len(k.f) == 0 {
		return 0
	}
	return k.f[0]
}

// SetVector sets all numeric components. Extra values are dropped, missing
// values leave the prior component in place.
func (k *Knob) SetVector(vals ...float64) {
	if len(k.f) < len(vals) {
		k.f = append(k.f, make([]float64, len(vals)-len(k.f))...)
	}
	copy(k.f, vals)
}

// Vector returns a copy of all numeric components.
func (k *Knob) Vector() []float64 {
	out := make([]float64, len(k.f))
	copy(out, k.f)
	return out
}

// Components returns the numeric component count.
func (k *Knob) Components() int { return len(k.f) }

// SetExpression attaches a host expression to the knob, clearing animation.
func (k *Knob) SetExpression(expr string) {
	k.expr = expr
	k.ClearAnimated()
}

// SetExpressionAt attaches a host expression to a single component, leaving
// the others alone.
func (k *Knob) SetExpressionAt(component int, expr string) {
	if component < 0 {
		return
	}
	if len(k.exprs) <= component {
		k.exprs = append(k.exprs, make([]string, component+1-len(k.exprs))...)
	}
	k.exprs[component] = expr
	k.animated = false
}

// Expression returns the whole-knob expression, if any.
func (k *Knob) Expression() string { return k.expr }

// ExpressionAt returns the expression on a single component, falling back to
// the whole-knob expression.
func (k *Knob) ExpressionAt(component int) string {
	if component >= 0 && component < len(k.exprs) && k.exprs[component] != "" {
		return k.exprs[component]
	}
	return k.expr
}

// HasExpression reports whether any component is expression driven.
func (k *Knob) HasExpression() bool {
	if k.expr != "" {
		return true
	}
	for _, e := range k.exprs {
		if e != "" {
			return true
		}
	}
	return false
}

// SetAnimated enables keyframe animation, clearing any expression.
func (k *Knob) SetAnimated() {
	k.animated = true
	k.expr = ""
	if k.keys == nil {
		k.keys = make(map[int][]float64)
	}
}

// ClearAnimated removes all keys and disables animation.
func (k *Knob) ClearAnimated() {
	k.animated = false
	k.keys = nil
}

// IsAnimated reports whether the knob carries animation.
func (k *Knob) IsAnimated() bool { return k.animated }

// SetKeyAt writes a keyframe at frame. The knob must be animated first.
func (k *Knob) SetKeyAt(frame int, vals ...float64) error {
	if !k.animated {
		return fmt.Errorf("knob %q: not animated", k.name)
	}
	key := make([]float64, len(vals))
	copy(key, vals)
	k.keys[frame] = key
	return nil
}

// KeyFrames returns the sorted frames that carry keys.
func (k *Knob) KeyFrames() []int {
	frames := make([]int, 0, len(k.keys))
	for f := range k.keys {
		frames = append(frames, f)
	}
	sort.Ints(frames)
	return frames
}

// ValueAt returns the numeric components at frame: the key at or before
// frame when animated (the first key when frame precedes all keys), the
// static value otherwise.
func (k *Knob) ValueAt(frame int) []float64 {
	if !k.animated || len(k.keys) == 0 {
		return k.Vector()
	}
	frames := k.KeyFrames()
	best := frames[0]
	for _, f := range frames {
		if f > frame {
			break
		}
		best = f
	}
	out := make([]float64, len(k.keys[best]))
	copy(out, k.keys[best])
	return out
}
