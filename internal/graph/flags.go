package graph

// Flag is a knob behavior bit. The host exposes these only as raw integers,
// so the values below mirror its table exactly. Class-specific flags reuse
// low bit values and must only be set on knobs of the matching class.
type Flag uint64

// General flags. Must not intersect any class-specific flags.
const (
	// FlagDisabled is set by disable(), cleared by enable().
	FlagDisabled Flag = 0x0000000000000080

	// FlagNoAnimation prevents the value from being animated.
	FlagNoAnimation Flag = 0x0000000000000100

	// FlagDoNotWrite keeps the knob out of saved scripts, including copy
	// and paste.
	FlagDoNotWrite Flag = 0x0000000000000200

	// FlagInvisible removes the knob from panels entirely. Not the same as
	// hidden; show() will not undo it.
	FlagInvisible Flag = 0x0000000000000400

	// FlagResizable lets the knob stretch to fill the rest of its line.
	FlagResizable Flag = 0x0000000000000800

	// FlagStartLine starts a new row in the panel.
	FlagStartLine Flag = 0x0000000000001000

	// FlagEndLine ends the current row, as if FlagStartLine were set on the
	// next knob. Set for divider lines.
	FlagEndLine Flag = 0x0000000000002000

	// FlagNoRerender excludes the knob from the op hash. For knobs with no
	// effect on rendered output.
	FlagNoRerender Flag = 0x0000000000004000

	// FlagNoHandles suppresses viewer handles for this knob.
	FlagNoHandles Flag = 0x0000000000008000

	// FlagKnobChangedAlways fires the knob-changed callback on every value
	// change, not just changes made with the panel open.
	FlagKnobChangedAlways Flag = 0x0000000000010000

	// FlagNoKnobChanged skips the knob-changed callback for this knob.
	FlagNoKnobChanged Flag = 0x0000000000020000

	// FlagHidden is set by hide(), cleared by show().
	FlagHidden Flag = 0x0000000000040000

	// FlagNoUndo excludes knob changes from undo/redo.
	FlagNoUndo Flag = 0x0000000000080000

	// FlagAlwaysSave writes the knob to scripts even at its default value.
	FlagAlwaysSave Flag = 0x0000000000100000

	// FlagNodeKnob marks knobs the host manages internally for DAG
	// appearance, such as positions.
	FlagNodeKnob Flag = 0x0000000000200000

	// FlagHandlesAnyway draws viewer handles while the panel is open even
	// when another tab is selected.
	FlagHandlesAnyway Flag = 0x0000000000400000

	// FlagReadOnly blocks UI edits; the value can still be copied from.
	FlagReadOnly Flag = 0x0000000010000000
)

// Internal-use flags.
const (
	FlagIndeterminate        Flag = 0x0000000000800000
	FlagColourchipHasUnset   Flag = 0x0000000001000000
	FlagSmallUI              Flag = 0x0000000002000000
	FlagNoNumericFields      Flag = 0x0000000004000000
	FlagNoCurveEditor        Flag = 0x0000000020000000
	FlagNoMultiview          Flag = 0x0000000040000000
	FlagEarlyStore           Flag = 0x0000000080000000
	FlagKnobChangedRecursive Flag = 0x0000000008000000
	FlagModifiesGeometry     Flag = 0x0000000100000000
	FlagOutputOnly           Flag = 0x0000000200000000
	FlagNoKnobChangedDone    Flag = 0x0000000400000000
	FlagSetSizePolicy        Flag = 0x0000000800000000
	FlagExpandToWidth        Flag = 0x0000001000000000
)

// Numeric knob flags.
const (
	// FlagMagnitude shows a single field for multi-value knobs.
	FlagMagnitude Flag = 0x0000000000000001

	// FlagSlider turns on the slider for single-value knobs.
	FlagSlider Flag = 0x0000000000000002

	// FlagLogSlider spaces slider ticks logarithmically.
	FlagLogSlider Flag = 0x0000000000000004

	// FlagStoreInteger stores and displays integer values only.
	FlagStoreInteger Flag = 0x0000000000000008

	// FlagForceRange clamps stored values to the knob range.
	FlagForceRange Flag = 0x0000000000000010

	// FlagAngle depicts the number as an angle.
	FlagAngle Flag = 0x0000000000000020

	// FlagNoProxyScale disables proxy scaling for XY or WH knobs.
	FlagNoProxyScale Flag = 0x0000000000000040
)

// String knob flags.
const (
	FlagGranularUndo     Flag = 0x0000000000000001
	FlagNoRecursivePaths Flag = 0x0000000000000002
)

// Enumeration knob flags.
const (
	// FlagSaveMenu writes menu contents into saved scripts.
	FlagSaveMenu Flag = 0x0000000002000000
)

// Group knob flags.
const (
	FlagClosed          Flag = 0x0000000000000001
	FlagToolbarGroup    Flag = 0x0000000000000002
	FlagToolbarLeft     Flag = 0x0000000000000000
	FlagToolbarTop      Flag = 0x0000000000000010
	FlagToolbarBottom   Flag = 0x0000000000000020
	FlagToolbarRight    Flag = 0x0000000000000030
	FlagToolbarPosition Flag = 0x0000000000000030
)

// Channel knob flags.
const (
	FlagNoCheckmarks    Flag = 0x0000000000000001
	FlagNoAlphaPulldown Flag = 0x0000000000000002
)

// Format knob flags.
const (
	// FlagProxyDefault defaults the knob to the root proxy format.
	FlagProxyDefault Flag = 0x0000000000000001
)
