package layout

// Degradation holds flags indicating which UI features should be hidden or simplified.
// Features are listed in order of degradation priority (first to hide).
type Degradation struct {
	// Component simplification
	CompactStatus bool // Drop capture and bounds from the status bar (width < 100)
	HideMinimap   bool // Never show the display minimap (width < 60 or height < 16)

	// Critical degradation
	HideStatus bool // Hide the status bar (height < 8)
	HideMenu   bool // Hide the transport strip (height < 6)
	HideErrBox bool // Hide the error row; errors are still logged (height < 4)
}

// Threshold constants for degradation
const (
	CompactStatusWidth = 100
	MinimapHideWidth   = 60
	MinimapHideHeight  = 16
	StatusHideHeight   = 8
	MenuHideHeight     = 6
	ErrBoxHideHeight   = 4
)

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(width, height int) Degradation {
	return Degradation{
		CompactStatus: width < CompactStatusWidth,
		HideMinimap:   width < MinimapHideWidth || height < MinimapHideHeight,

		HideStatus: height < StatusHideHeight,
		HideMenu:   height < MenuHideHeight,
		HideErrBox: height < ErrBoxHideHeight,
	}
}

// ChromeRows returns how many rows the visible chrome takes.
func (d Degradation) ChromeRows() int {
	rows := 0
	if !d.HideStatus {
		rows += StatusHeight
	}
	if !d.HideMenu {
		rows += MenuHeight
	}
	if !d.HideErrBox {
		rows += ErrBoxHeight
	}
	return rows
}
