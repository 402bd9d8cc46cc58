// Package layout divides the terminal between the prompter and the chrome
// around it, dropping chrome as the terminal shrinks.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for large terminals (>= 140w x 40h).
	// Shows all components with a larger minimap.
	LayoutFull LayoutMode = iota

	// LayoutStandard is for medium terminals (>= 80w x 24h).
	LayoutStandard

	// LayoutCompact is for smaller terminals (>= 40w x 8h).
	// The status bar drops its less important fields.
	LayoutCompact

	// LayoutMinimal is for terminals below minimum size.
	// Chrome is dropped row by row to keep the prompter visible.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode calculates the appropriate layout mode for the given dimensions.
func DetermineMode(width, height int) LayoutMode {
	// Check for minimal first (below absolute minimum)
	if width < MinWidth || height < MinHeight {
		return LayoutMinimal
	}

	// Use the more restrictive dimension
	widthMode := determineWidthMode(width)
	heightMode := determineHeightMode(height)

	// Return the more restrictive (higher value = more restrictive)
	if widthMode > heightMode {
		return widthMode
	}
	return heightMode
}

func determineWidthMode(width int) LayoutMode {
	switch {
	case width >= FullWidth:
		return LayoutFull
	case width >= StandardWidth:
		return LayoutStandard
	case width >= MinWidth:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

func determineHeightMode(height int) LayoutMode {
	switch {
	case height >= FullHeight:
		return LayoutFull
	case height >= StandardHeight:
		return LayoutStandard
	case height >= MinHeight:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}
