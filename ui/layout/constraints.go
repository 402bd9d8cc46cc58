package layout

// Constraints holds the computed layout constraints for all components.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	Degradation

	// Component dimensions (computed). Hidden components have zero height.
	StatusWidth    int
	StatusHeight   int
	PrompterWidth  int
	PrompterHeight int
	MenuWidth      int
	MenuHeight     int
	ErrBoxWidth    int
	ErrBoxHeight   int

	// Minimap cell size and the position of its top-left corner, border included.
	MinimapWidth  int
	MinimapHeight int
	MinimapX      int
	MinimapY      int
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int) Constraints {
	width = max(width, 0)
	height = max(height, 0)

	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
		Degradation:    ComputeDegradation(width, height),
	}

	// 1. Fixed rows
	if !c.HideStatus {
		c.StatusWidth, c.StatusHeight = width, StatusHeight
	}
	if !c.HideMenu {
		c.MenuWidth, c.MenuHeight = width, MenuHeight
	}
	if !c.HideErrBox {
		c.ErrBoxWidth, c.ErrBoxHeight = width, ErrBoxHeight
	}

	// 2. The prompter takes the rest
	c.PrompterWidth = width
	c.PrompterHeight = max(height-c.ChromeRows(), 0)

	// 3. Minimap in the top-right corner of the prompter, below the reading line
	c.MinimapWidth, c.MinimapHeight = MinimapWidth, MinimapHeight
	if c.Mode == LayoutFull {
		c.MinimapWidth, c.MinimapHeight = MinimapFullWidth, MinimapFullHeight
	}
	c.MinimapX = max(width-c.MinimapWidth-2-MinimapMargin, 0)
	c.MinimapY = c.StatusHeight + MinimapTop
	if c.MinimapY+c.MinimapHeight+2 > c.StatusHeight+c.PrompterHeight {
		c.HideMinimap = true
	}

	return c
}

// ComputeOverlayWidth calculates a constrained overlay width.
func ComputeOverlayWidth(termWidth, preferredWidth int) int {
	maxW := max(termWidth-OverlayMargin*2, 0)
	return clamp(preferredWidth, min(OverlayMinWidth, maxW), min(maxW, OverlayMaxWidth))
}

// Helper functions

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
