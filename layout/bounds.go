package layout

// Top-strip constraints
const (
	// StripWidthRatio is the share of the work area width the strip tries to use.
	StripWidthRatio = 0.74

	// StripMinWidth is the narrowest strip, unless the work area itself is narrower.
	StripMinWidth = 720

	// StripMaxWidth caps the strip on very wide displays.
	StripMaxWidth = 1800

	// PromptLineFactor converts the font size into prompt content height.
	PromptLineFactor = 2.25

	// PromptMinHeight and PromptMaxHeight bound the prompt content area.
	PromptMinHeight = 110
	PromptMaxHeight = 300

	// ControlStripHeight is the fixed height of the transport controls.
	ControlStripHeight = 122

	// StripMinHeight and StripMaxHeight bound the whole window in top-strip mode.
	StripMinHeight = 210
	StripMaxHeight = 540
)

// Floating window constraints
const (
	FloatingMinWidth  = 720
	FloatingMaxWidth  = 4000
	FloatingMinHeight = 190
	FloatingMaxHeight = 2000

	// CoordinateLimit bounds stored x/y before they are constrained to a work area.
	CoordinateLimit = 10000
)

// FallbackWorkArea is used when no display information is available.
var FallbackWorkArea = Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
