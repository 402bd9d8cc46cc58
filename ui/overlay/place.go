// Package overlay composes boxes on top of an already rendered view.
package overlay

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

// PlaceOverlay draws fg over bg with fg's top-left cell at column x, row y.
// With center set, x and y are ignored and fg is centered. fg is returned
// as is when it does not fit.
func PlaceOverlay(x, y int, fg, bg string, center bool) string {
	fgLines, fgWidth := lines(fg)
	bgLines, bgWidth := lines(bg)
	bgHeight := len(bgLines)
	fgHeight := len(fgLines)

	if fgWidth >= bgWidth && fgHeight >= bgHeight {
		return fg
	}

	if center {
		x = (bgWidth - fgWidth) / 2
		y = (bgHeight - fgHeight) / 2
	}

	x = clamp(x, 0, bgWidth-fgWidth)
	y = clamp(y, 0, bgHeight-fgHeight)

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(strings.Repeat(" ", x-pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		right := cutLeft(bgLine, pos)
		rightWidth := ansi.PrintableRuneWidth(right)
		if rightWidth <= bgWidth-pos {
			b.WriteString(strings.Repeat(" ", bgWidth-rightWidth-pos))
		}
		b.WriteString(right)
	}
	return b.String()
}

// cutLeft drops the first cutWidth printable cells of s, keeping the escape
// sequences so styling after the cut survives.
func cutLeft(s string, cutWidth int) string {
	var (
		b      strings.Builder
		pos    int
		escape bool
	)
	for _, c := range s {
		if c == ansi.Marker {
			escape = true
		}
		if escape {
			b.WriteRune(c)
			if ansi.IsTerminator(c) {
				escape = false
			}
			continue
		}
		w := runewidth.RuneWidth(c)
		if pos >= cutWidth {
			b.WriteRune(c)
		} else if pos+w > cutWidth {
			// A wide rune straddles the cut.
			b.WriteString(strings.Repeat(" ", pos+w-cutWidth))
		}
		pos += w
	}
	return b.String()
}

func lines(s string) ([]string, int) {
	out := strings.Split(s, "\n")
	widest := 0
	for _, l := range out {
		if w := ansi.PrintableRuneWidth(l); w > widest {
			widest = w
		}
	}
	return out, widest
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
