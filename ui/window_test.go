package ui

import (
	"errors"
	"teleprompter/layout"
	"teleprompter/state"
	"teleprompter/testing/snapshot"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	w := NewWindow()
	assert.Equal(t, state.DefaultSettings().FloatingBounds, w.Bounds())

	w.SetBounds(layout.Rect{X: 1, Y: 2, Width: 800, Height: 200})
	w.SetOpacity(0.4)
	w.SetContentProtection(false)

	assert.Equal(t, WindowInfo{
		Bounds:    layout.Rect{X: 1, Y: 2, Width: 800, Height: 200},
		Opacity:   0.4,
		Protected: false,
	}, w.Info())
}

func TestStatusBar(t *testing.T) {
	st := state.DefaultState()
	st.PlaybackStatus = state.Playing
	st.Settings.Mode = state.ModeFloating
	updated := st.Script.UpdatedAt

	s := NewStatusBar()
	s.now = func() time.Time { return updated.Add(3 * time.Minute) }
	win := WindowInfo{Bounds: st.Settings.FloatingBounds}

	out := s.Render(st, win)
	for _, want := range []string{"playing", "floating", "42px", "60 px/s", "92%", "hidden from capture", "980x360@(80,80)", "unsaved", "edited 3m ago"} {
		snapshot.AssertContains(t, out, want)
	}

	path := "/scripts/keynote.txt"
	st.Script.LastFilePath = &path
	st.Settings.HideFromCapture = false
	out = s.Render(st, win)
	snapshot.AssertContains(t, out, "keynote.txt")
	snapshot.AssertContains(t, out, "visible to capture")

	s.SetCompact(true)
	out = s.Render(st, win)
	snapshot.AssertContains(t, out, "keynote.txt")
	snapshot.AssertNotContains(t, out, "capture")
	snapshot.AssertNotContains(t, out, "980x360")

	s.SetWidth(30)
	assert.LessOrEqual(t, snapshot.Width(s.Render(st, win)), 30)
}

func TestErrBox(t *testing.T) {
	e := NewErrBox()
	e.SetSize(60, 1)

	e.SetError(errors.New("failed to write script:\npermission denied"))
	snapshot.AssertContains(t, e.String(), "failed to write script: permission denied")

	e.SetInfo("Saved keynote.txt")
	snapshot.AssertContains(t, e.String(), "Saved keynote.txt")
	snapshot.AssertNotContains(t, e.String(), "failed")

	e.Clear()
	assert.Empty(t, snapshot.Normalize(e.String()))
}

func TestFormatRelative(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{4 * 24 * time.Hour, "4d ago"},
		{65 * 24 * time.Hour, "2mo ago"},
		{800 * 24 * time.Hour, "2y ago"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRelative(now.Add(-tt.ago), now))
		})
	}

	assert.Equal(t, "unsaved", FormatScriptFile(nil))
}
