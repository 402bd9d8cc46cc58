// Package layout computes overlay window bounds for the top-strip and
// floating modes, and for interactive resize and move, against a display's
// work area.
package layout

import (
	"fmt"
	"math"
)

// Point is a position in screen coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether other lies completely inside r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// ContainsPoint reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// IntersectionArea returns the area shared by r and other, or 0 when they don't overlap.
func (r Rect) IntersectionArea(other Rect) int {
	w := min(r.Right(), other.Right()) - max(r.X, other.X)
	h := min(r.Bottom(), other.Bottom()) - max(r.Y, other.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// distanceSq returns the squared distance from p to the closest point of r.
func (r Rect) distanceSq(p Point) int {
	dx := 0
	if p.X < r.X {
		dx = r.X - p.X
	} else if p.X >= r.Right() {
		dx = p.X - (r.Right() - 1)
	}
	dy := 0
	if p.Y < r.Y {
		dy = r.Y - p.Y
	} else if p.Y >= r.Bottom() {
		dy = p.Y - (r.Bottom() - 1)
	}
	return dx*dx + dy*dy
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Height, r.X, r.Y)
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

// round rounds half up.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
