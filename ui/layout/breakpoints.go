package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal that still gets the full chrome.
	MinWidth = 40

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 80

	// FullWidth is the threshold for full layout with all features.
	FullWidth = 140
)

// Height breakpoints
const (
	// MinHeight is the shortest terminal that still gets the full chrome.
	MinHeight = 8

	// StandardHeight is the threshold for standard layout (standard terminal).
	StandardHeight = 24

	// FullHeight is the threshold for full layout.
	FullHeight = 40
)

// Row constraints
const (
	// StatusHeight is the status bar height.
	StatusHeight = 1

	// MenuHeight is the transport strip height.
	MenuHeight = 1

	// ErrBoxHeight is the fixed error box height.
	ErrBoxHeight = 1
)

// Minimap constraints, border excluded
const (
	MinimapWidth  = 24
	MinimapHeight = 6

	// MinimapFullWidth and MinimapFullHeight are used in full mode.
	MinimapFullWidth  = 32
	MinimapFullHeight = 8

	// MinimapMargin is the gap between the minimap and the right edge.
	MinimapMargin = 2

	// MinimapTop is the prompter row the minimap starts on. Row 0 is the
	// reading line and stays clear.
	MinimapTop = 1
)

// Overlay constraints
const (
	// OverlayMaxWidth is the maximum overlay width.
	OverlayMaxWidth = 60

	// OverlayMinWidth is the minimum overlay width.
	OverlayMinWidth = 20

	// OverlayMargin is the minimum margin from terminal edges.
	OverlayMargin = 2
)
