package ui

import (
	"math"
	"strings"
	"teleprompter/log"
	"teleprompter/state"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	// lineSpacing converts a font size into the pixel height of one line.
	lineSpacing = 1.5
	// referenceFontPx fills the full terminal width. Larger fonts wrap sooner.
	referenceFontPx = 42
	minWrapColumns  = 16
)

const endMarker = "· end of script ·"

// LineHeightPx returns how many pixels of cursorPx one script line spans.
func LineHeightPx(fontSizePx int) float64 {
	return math.Round(float64(fontSizePx) * lineSpacing)
}

// Prompter renders the script scrolled to its cursor. The first row is the
// reading line.
type Prompter struct {
	width, height int
}

func NewPrompter() *Prompter {
	return &Prompter{}
}

// SetSize sets the area the prompter renders into.
func (p *Prompter) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// WrapColumns returns the wrap width for a font size.
func (p *Prompter) WrapColumns(fontSizePx int) int {
	if p.width <= 0 {
		return 0
	}
	if fontSizePx <= 0 {
		fontSizePx = referenceFontPx
	}
	cols := p.width * referenceFontPx / fontSizePx
	return max(min(cols, p.width), min(minWrapColumns, p.width))
}

// Lines returns the script wrapped for the current size and font.
func (p *Prompter) Lines(text string, fontSizePx int) []string {
	cols := p.WrapColumns(fontSizePx)
	if cols <= 0 {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	wrapped := wrap.String(wordwrap.String(text, cols), cols)
	return strings.Split(wrapped, "\n")
}

// ContentHeightPx is the scroll distance at which the last line has passed
// the reading line.
func (p *Prompter) ContentHeightPx(text string, fontSizePx int) float64 {
	return float64(len(p.Lines(text, fontSizePx))) * LineHeightPx(fontSizePx)
}

// Render draws exactly height rows of the script starting at the cursor.
func (p *Prompter) Render(script state.Script, settings state.Settings) string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}
	defer log.GetProfiler().StartRender("prompter")()

	lines := p.Lines(script.Text, settings.FontSizePx)
	first := int(script.CursorPx / LineHeightPx(settings.FontSizePx))
	style := ScriptStyle(settings.Opacity)

	rows := make([]string, 0, p.height)
	for row := 0; row < p.height; row++ {
		idx := first + row
		switch {
		case idx < len(lines):
			line := p.center(lines[idx])
			if row == 0 {
				rows = append(rows, readingLineStyle.Render(line))
			} else {
				rows = append(rows, style.Render(line))
			}
		case idx == len(lines):
			rows = append(rows, TextStyles.Muted.Render(p.center(endMarker)))
		default:
			rows = append(rows, strings.Repeat(" ", p.width))
		}
	}
	log.RenderTrace("prompter", "lines=%d first=%d", len(lines), first)
	return strings.Join(rows, "\n")
}

// center pads line to the full width with the text centered.
func (p *Prompter) center(line string) string {
	line = runewidth.Truncate(line, p.width, "")
	w := runewidth.StringWidth(line)
	left := (p.width - w) / 2
	return runewidth.FillRight(strings.Repeat(" ", left)+line, p.width)
}
