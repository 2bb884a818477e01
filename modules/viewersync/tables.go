package viewersync

// The viewer knobs that can be synced, their panel titles, hover text, and
// whether syncing starts enabled. Options default to off only where linking
// viewers is more surprising than helpful (inputs, gain, gamma, channels).

var knobTitles = map[string]string{
	"channels":            "channels",
	"cliptest":            "zebra-stripe",
	"downrez":             "proxy settings",
	"format_center":       "format center",
	"gain":                "gain",
	"gamma":               "gamma",
	"masking_mode":        "masking mode",
	"masking_ratio":       "masking ratio",
	"overscan":            "overscan",
	"ignore_pixel_aspect": "ignore pixel aspect ratio",
	"input_number":        "viewed input",
	"input_process":       "input process on/off",
	"input_process_node":  "input process node",
	"inputs":              "input nodes",
	"rgb_only":            "LUT applies to rgb channels only",
	"roi":                 "roi",
	"safe_zone":           "safe zone",
	"show_overscan":       "show overscan",
	"viewerInputOrder":    "input process order",
	"viewerProcess":       "LUT",
	"zoom_lock":           "zoom lock",
}

var knobTooltips = map[string]string{
	"channels": "Sync the layers and alpha channel to display in the " +
		"viewers. The \"display style\" is not synced.",
	"cliptest": "Sync if zebra-striping is enabled or not between viewers.",
	"downrez": "Sync the scale down factor for proxy mode. Proxy mode " +
		"activation is always synced.",
	"format_center": "Sync if a crosshair is displayed at the center of " +
		"the viewer window.",
	"gain":          "Sync the gain slider between viewers.",
	"gamma":         "Sync the gamma slider between viewers.",
	"masking_mode":  "Sync the mask style between viewers.",
	"masking_ratio": "Sync the mask ratio selection between viewers.",
	"overscan":      "Sync the amount of overscan displayed between viewers.",
	"ignore_pixel_aspect": "If selected all viewers will either show " +
		"square pixels or the pixel aspect ratio denoted by the format.",
	"input_number": "Syncs which input number is being viewed between all " +
		"viewers. This does not mean that all viewers are viewing the same " +
		"nodes, just that all viewers are viewing input 1, etc.",
	"input_process": "If selected all viewers will either have the input " +
		"process on, or off.",
	"input_process_node": "Syncs what node is used as the input process " +
		"between all viewers.",
	"inputs": "If selected, all viewers will point to the same nodes in " +
		"the node graph.",
	"rgb_only": "Syncs the \"apply LUT to color channels only\" knob, " +
		"which indicates that the viewer will attempt to apply the lut to " +
		"only the color channels. This only works with knobs that have an " +
		"\"rgb_only\" knob, which is few.",
	"roi": "Syncs the ROI window between all viewers. ROI needs to be " +
		"manually activated for all viewers.",
	"safe_zone": "Syncs the safe zone overlays between all viewers.",
	"show_overscan": "If selected, all viewers will either show overscan " +
		"or not show overscan.",
	"viewerInputOrder": "Syncs if the input process occurs before or " +
		"after the viewer process between all viewers.",
	"viewerProcess": "Syncs the LUT between all viewers.",
	"zoom_lock": "If selected, the zoom lock will apply to all viewers " +
		"or none.",
}

var syncDefaults = map[string]bool{
	"channels":            false,
	"cliptest":            true,
	"downrez":             true,
	"format_center":       true,
	"gain":                false,
	"gamma":               false,
	"masking_mode":        true,
	"masking_ratio":       true,
	"overscan":            true,
	"ignore_pixel_aspect": true,
	"input_number":        true,
	"input_process":       true,
	"input_process_node":  true,
	"inputs":              false,
	"rgb_only":            true,
	"roi":                 true,
	"safe_zone":           true,
	"show_overscan":       true,
	"viewerInputOrder":    true,
	"viewerProcess":       true,
	"zoom_lock":           true,
}

// Panel layout: option groups in display order.
var (
	inputOptions   = []string{"inputs", "input_number", "channels"}
	displayOptions = []string{
		"viewerProcess", "rgb_only", "input_process", "input_process_node",
		"viewerInputOrder", "gain", "gamma", "ignore_pixel_aspect",
		"zoom_lock", "show_overscan", "overscan",
	}
	overlayOptions = []string{
		"masking_mode", "masking_ratio", "safe_zone", "format_center",
		"cliptest",
	}
	processOptions = []string{"downrez", "roi"}
)
