package graph

// Stock knob layouts for the host's built-in node classes. Only the classes
// the shipped modules touch are described; unknown classes start with no
// knobs and callers add what they need.
var classKnobs = map[string][]func() *Knob{
	"Shuffle": {
		func() *Knob { k := NewStringKnob("red", "red"); k.SetString("red"); return k },
		func() *Knob { k := NewStringKnob("green", "green"); k.SetString("green"); return k },
		func() *Knob { k := NewStringKnob("blue", "blue"); k.SetString("blue"); return k },
		func() *Knob { k := NewStringKnob("alpha", "alpha"); k.SetString("alpha"); return k },
	},
	"Switch": {
		func() *Knob { return NewDoubleKnob("which", "which", 1) },
	},
	"Merge2": {
		func() *Knob { k := NewStringKnob("operation", "operation"); k.SetString("over"); return k },
		func() *Knob { k := NewDoubleKnob("mix", "mix", 1); k.SetFloat(1); return k },
	},
	"Gamma": {
		func() *Knob { k := NewDoubleKnob("value", "value", 1); k.SetFloat(1); return k },
	},
	"Multiply": {
		func() *Knob { k := NewDoubleKnob("value", "value", 1); k.SetFloat(1); return k },
	},
	"Blur": {
		func() *Knob { return NewDoubleKnob("size", "size", 1) },
	},
	"Expression": {
		func() *Knob { return NewStringKnob("temp_name0", "") },
		func() *Knob { return NewStringKnob("temp_expr0", "") },
		func() *Knob { return NewStringKnob("temp_name1", "") },
		func() *Knob { return NewStringKnob("temp_expr1", "") },
		func() *Knob { return NewStringKnob("temp_name2", "") },
		func() *Knob { return NewStringKnob("temp_expr2", "") },
		func() *Knob { return NewStringKnob("temp_name3", "") },
		func() *Knob { return NewStringKnob("temp_expr3", "") },
		func() *Knob { return NewStringKnob("expr0", "r") },
		func() *Knob { return NewStringKnob("expr1", "g") },
		func() *Knob { return NewStringKnob("expr2", "b") },
		func() *Knob { return NewStringKnob("expr3", "a") },
	},
	"Copy": {
		func() *Knob { return NewStringKnob("from_0", "Copy channel") },
		func() *Knob { return NewStringKnob("to_0", "") },
		func() *Knob { return NewStringKnob("from_1", "Copy channel") },
		func() *Knob { return NewStringKnob("to_1", "") },
		func() *Knob { return NewStringKnob("from_2", "Copy channel") },
		func() *Knob { return NewStringKnob("to_2", "") },
		func() *Knob { return NewStringKnob("from_3", "Copy channel") },
		func() *Knob { return NewStringKnob("to_3", "") },
	},
	"Axis": axisKnobs,
	"Card": append(axisKnobs,
		func() *Knob { k := NewDoubleKnob("uniform_scale", "uniform scale", 1); k.SetFloat(1); return k },
	),
	"Camera": append(axisKnobs,
		func() *Knob { k := NewDoubleKnob("focal", "focal length", 1); k.SetFloat(50); return k },
		func() *Knob {
			k := NewDoubleKnob("haperture", "horiz aperture", 1)
			k.SetFloat(24.576)
			return k
		},
		func() *Knob {
			k := NewDoubleKnob("vaperture", "vert aperture", 1)
			k.SetFloat(18.672)
			return k
		},
	),
	"Viewer": viewerKnobs,
	"Root": {
		func() *Knob { k := NewDoubleKnob("first_frame", "frame range", 1); k.SetFloat(1); return k },
		func() *Knob { k := NewDoubleKnob("last_frame", "", 1); k.SetFloat(100); return k },
		func() *Knob { k := NewDoubleKnob("format_width", "format", 1); k.SetFloat(1920); return k },
		func() *Knob { k := NewDoubleKnob("format_height", "", 1); k.SetFloat(1080); return k },
	},
}

var axisKnobs = []func() *Knob{
	func() *Knob { return NewDoubleKnob("translate", "translate", 3) },
	func() *Knob { return NewDoubleKnob("rotate", "rotate", 3) },
	func() *Knob { k := NewDoubleKnob("scaling", "scale", 3); k.SetVector(1, 1, 1); return k },
	func() *Knob { k := NewStringKnob("xform_order", "transform order"); k.SetString("SRT"); return k },
	func() *Knob { k := NewStringKnob("rot_order", "rotation order"); k.SetString("ZXY"); return k },
}

var viewerKnobs = []func() *Knob{
	func() *Knob { k := NewStringKnob("channels", "channels"); k.SetString("rgba"); return k },
	func() *Knob { return NewBoolKnob("cliptest", "zebra-stripe") },
	func() *Knob { k := NewDoubleKnob("downrez", "proxy scale", 1); k.SetFloat(1); return k },
	func() *Knob { return NewBoolKnob("format_center", "format center") },
	func() *Knob { k := NewDoubleKnob("gain", "gain", 1); k.SetFloat(1); return k },
	func() *Knob { k := NewDoubleKnob("gamma", "gamma", 1); k.SetFloat(1); return k },
	func() *Knob { k := NewStringKnob("masking_mode", "masking mode"); k.SetString("none"); return k },
	func() *Knob {
		k := NewDoubleKnob("masking_ratio", "masking ratio", 1)
		k.SetFloat(1.85)
		return k
	},
	func() *Knob { return NewDoubleKnob("overscan", "overscan", 1) },
	func() *Knob { return NewBoolKnob("ignore_pixel_aspect", "ignore pixel aspect ratio") },
	func() *Knob { return NewDoubleKnob("input_number", "viewed input", 1) },
	func() *Knob { return NewBoolKnob("input_process", "input process") },
	func() *Knob { return NewStringKnob("input_process_node", "input process node") },
	func() *Knob { return NewStringKnob("inputs", "input nodes") },
	func() *Knob { return NewBoolKnob("rgb_only", "apply LUT to color channels only") },
	func() *Knob { return NewBoolKnob("roi", "roi") },
	func() *Knob { return NewBoolKnob("safe_zone", "safe zone") },
	func() *Knob { return NewBoolKnob("show_overscan", "show overscan") },
	func() *Knob {
		k := NewStringKnob("viewerInputOrder", "input process order")
		k.SetString("before")
		return k
	},
	func() *Knob { k := NewStringKnob("viewerProcess", "LUT"); k.SetString("sRGB"); return k },
	func() *Knob { return NewBoolKnob("zoom_lock", "zoom lock") },
	func() *Knob { return NewStringKnob("knobChanged", "") },
}

var classMaxInputs = map[string]int{
	"Input":     0,
	"Root":      0,
	"CurveTool": 1,
	"Dot":       1,
	"Output":    1,
	"Switch":    4,
	"Merge2":    3,
	"Copy":      2,
	"Viewer":    10,
}

var classMaxOutputs = map[string]int{
	"Output": 0,
	"Viewer": 0,
}
