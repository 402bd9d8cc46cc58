package ui

import (
	"strings"
	"teleprompter/layout"

	"github.com/charmbracelet/lipgloss"
)

var (
	minimapDisplayStyle = lipgloss.NewStyle().Foreground(TextMuted)
	minimapWindowStyle  = lipgloss.NewStyle().Foreground(Primary)
)

// Minimap draws the displays and the overlay window scaled into a small grid
// of cells.
type Minimap struct {
	width, height int
}

// NewMinimap returns a minimap of the given cell size, border excluded.
func NewMinimap(width, height int) *Minimap {
	return &Minimap{width: width, height: height}
}

// grid renders the unstyled cells, one string per row. Displays are drawn
// with '.', their work area with ':' and the window with '#'; the active
// display's ID marks its top-left cell.
func (m *Minimap) grid(displays []layout.Display, window layout.Rect, active int) []string {
	if len(displays) == 0 {
		displays = []layout.Display{{Bounds: layout.FallbackWorkArea, WorkArea: layout.FallbackWorkArea}}
	}

	world := displays[0].Bounds
	for _, d := range displays[1:] {
		world = union(world, d.Bounds)
	}
	if world.Width <= 0 || world.Height <= 0 || m.width <= 0 || m.height <= 0 {
		return nil
	}

	cells := make([][]rune, m.height)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", m.width))
	}
	toCell := func(x, y int) (int, int) {
		cx := (x - world.X) * m.width / world.Width
		cy := (y - world.Y) * m.height / world.Height
		return cx, cy
	}
	fill := func(r layout.Rect, ch rune) {
		x0, y0 := toCell(r.X, r.Y)
		x1, y1 := toCell(r.Right()-1, r.Bottom()-1)
		for y := max(y0, 0); y <= min(y1, m.height-1); y++ {
			for x := max(x0, 0); x <= min(x1, m.width-1); x++ {
				cells[y][x] = ch
			}
		}
	}

	for _, d := range displays {
		fill(d.Bounds, '.')
		fill(d.WorkArea, ':')
	}
	fill(window, '#')
	for _, d := range displays {
		if d.ID != active {
			continue
		}
		x, y := toCell(d.Bounds.X, d.Bounds.Y)
		if x >= 0 && x < m.width && y >= 0 && y < m.height && d.ID >= 0 && d.ID < 10 {
			cells[y][x] = rune('0' + d.ID)
		}
	}

	rows := make([]string, len(cells))
	for i, row := range cells {
		rows[i] = string(row)
	}
	return rows
}

// Render returns the bordered, styled minimap.
func (m *Minimap) Render(displays []layout.Display, window layout.Rect, active int) string {
	rows := m.grid(displays, window, active)
	for i, row := range rows {
		var b strings.Builder
		for _, ch := range row {
			switch ch {
			case '#':
				b.WriteString(minimapWindowStyle.Render(string(ch)))
			default:
				b.WriteString(minimapDisplayStyle.Render(string(ch)))
			}
		}
		rows[i] = b.String()
	}
	return CardStyle().Render(strings.Join(rows, "\n"))
}

func union(a, b layout.Rect) layout.Rect {
	x0, y0 := min(a.X, b.X), min(a.Y, b.Y)
	x1, y1 := max(a.Right(), b.Right()), max(a.Bottom(), b.Bottom())
	return layout.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
