package layout

import "strings"

// Edge identifies the edge or corner grabbed during an interactive resize.
type Edge string

const (
	EdgeNorth     Edge = "n"
	EdgeSouth     Edge = "s"
	EdgeEast      Edge = "e"
	EdgeWest      Edge = "w"
	EdgeNorthEast Edge = "ne"
	EdgeNorthWest Edge = "nw"
	EdgeSouthEast Edge = "se"
	EdgeSouthWest Edge = "sw"
)

// ParseEdge returns the edge for a token such as "nw". Unknown tokens report false.
func ParseEdge(s string) (Edge, bool) {
	switch e := Edge(strings.ToLower(strings.TrimSpace(s))); e {
	case EdgeNorth, EdgeSouth, EdgeEast, EdgeWest,
		EdgeNorthEast, EdgeNorthWest, EdgeSouthEast, EdgeSouthWest:
		return e, true
	default:
		return "", false
	}
}

func (e Edge) north() bool { return strings.ContainsRune(string(e), 'n') }
func (e Edge) south() bool { return strings.ContainsRune(string(e), 's') }
func (e Edge) east() bool  { return strings.ContainsRune(string(e), 'e') }
func (e Edge) west() bool  { return strings.ContainsRune(string(e), 'w') }

// ConstrainFloating fits stored floating bounds into area. Width and height
// shrink to the area extent when needed, then the position is clamped so the
// whole rectangle is inside area.
func ConstrainFloating(b, area Rect) Rect {
	w := clamp(b.Width, min(FloatingMinWidth, area.Width), area.Width)
	h := clamp(b.Height, min(FloatingMinHeight, area.Height), area.Height)
	return clampPosition(Rect{X: b.X, Y: b.Y, Width: w, Height: h}, area)
}

// Resize applies a drag delta to the given edge of start. Only the dimensions
// implied by the edge change; west and north drags move the origin so the
// opposite edge stays put. The result is contained in area.
func Resize(start Rect, edge Edge, dx, dy int, area Rect) Rect {
	minW, maxW := min(FloatingMinWidth, area.Width), min(FloatingMaxWidth, area.Width)
	minH, maxH := min(FloatingMinHeight, area.Height), min(FloatingMaxHeight, area.Height)

	// Both dimensions are clamped, so an axis the edge does not touch still
	// shrinks to fit when start came from a larger display.
	next := start
	next.Width = clamp(start.Width, minW, maxW)
	next.Height = clamp(start.Height, minH, maxH)
	switch {
	case edge.east():
		next.Width = clamp(start.Width+dx, minW, maxW)
	case edge.west():
		next.Width = clamp(start.Width-dx, minW, maxW)
		next.X = start.Right() - next.Width
	}
	switch {
	case edge.south():
		next.Height = clamp(start.Height+dy, minH, maxH)
	case edge.north():
		next.Height = clamp(start.Height-dy, minH, maxH)
		next.Y = start.Bottom() - next.Height
	}
	return clampPosition(next, area)
}

// Move shifts start by (dx, dy) and keeps it inside area. The second return
// value is false when the rectangle did not change.
func Move(start Rect, dx, dy int, area Rect) (Rect, bool) {
	if dx == 0 && dy == 0 {
		return start, false
	}
	next := start
	next.X += dx
	next.Y += dy
	next = clampPosition(next, area)
	return next, next != start
}

// clampPosition pins r to the area origin on any axis where it is larger than area.
func clampPosition(r, area Rect) Rect {
	r.X = max(area.X, min(r.X, area.Right()-r.Width))
	r.Y = max(area.Y, min(r.Y, area.Bottom()-r.Height))
	return r
}
