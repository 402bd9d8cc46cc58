package layout

// Display describes one monitor. WorkArea excludes taskbars, docks and menu bars.
type Display struct {
	ID       int  `json:"id" mapstructure:"id"`
	Bounds   Rect `json:"bounds" mapstructure:"bounds"`
	WorkArea Rect `json:"work_area" mapstructure:"work_area"`
}

// Screen reports the current display configuration and pointer position.
type Screen interface {
	// Displays returns every connected display.
	Displays() []Display
	// CursorPoint returns the pointer position in screen coordinates.
	CursorPoint() Point
}

// StaticScreen is a Screen with a fixed display list, used by surfaces that
// have no real monitor API and by tests.
type StaticScreen struct {
	List   []Display
	Cursor Point
}

func (s *StaticScreen) Displays() []Display { return s.List }

func (s *StaticScreen) CursorPoint() Point { return s.Cursor }

func fallbackDisplay() Display {
	return Display{ID: 0, Bounds: FallbackWorkArea, WorkArea: FallbackWorkArea}
}

// NearestToPoint returns the display containing p, or the display closest to
// p when none contains it.
func NearestToPoint(displays []Display, p Point) Display {
	if len(displays) == 0 {
		return fallbackDisplay()
	}
	best := displays[0]
	bestDist := -1
	for _, d := range displays {
		if d.Bounds.ContainsPoint(p) {
			return d
		}
		dist := d.Bounds.distanceSq(p)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// Matching returns the display that overlaps r the most. When r overlaps no
// display, the display nearest to its center is used.
func Matching(displays []Display, r Rect) Display {
	if len(displays) == 0 {
		return fallbackDisplay()
	}
	var best Display
	bestArea := 0
	for _, d := range displays {
		if area := d.Bounds.IntersectionArea(r); area > bestArea {
			best, bestArea = d, area
		}
	}
	if bestArea > 0 {
		return best
	}
	return NearestToPoint(displays, r.Center())
}
