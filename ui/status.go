package ui

import (
	"fmt"
	"strings"
	"teleprompter/state"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var statusBarStyle = lipgloss.NewStyle().Foreground(TextSecondary)

var statusSep = TextStyles.Muted.Render(" │ ")

// StatusBar summarizes the settings, window and script on one row.
type StatusBar struct {
	width int
	// compact drops capture protection and bounds.
	compact bool
	now     func() time.Time
}

func NewStatusBar() *StatusBar {
	return &StatusBar{now: time.Now}
}

func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

func (s *StatusBar) SetCompact(compact bool) {
	s.compact = compact
}

// Render returns the status row for st and the window's current properties.
func (s *StatusBar) Render(st state.AppState, win WindowInfo) string {
	capture := "visible to capture"
	if st.Settings.HideFromCapture {
		capture = "hidden from capture"
	}

	parts := []string{
		PlaybackBadge(st.PlaybackStatus),
		string(st.Settings.Mode),
		fmt.Sprintf("%dpx", st.Settings.FontSizePx),
		fmt.Sprintf("%d px/s", st.Settings.SpeedPxPerSec),
		fmt.Sprintf("%d%%", int(st.Settings.Opacity*100+0.5)),
	}
	if !s.compact {
		parts = append(parts, capture, win.Bounds.String())
	}
	parts = append(parts,
		FormatScriptFile(st.Script.LastFilePath),
		"edited "+formatRelative(st.Script.UpdatedAt, s.now()),
	)
	line := statusBarStyle.Render(strings.Join(parts, statusSep))
	if s.width > 0 {
		line = truncate.StringWithTail(line, uint(s.width), "…")
	}
	return line
}
