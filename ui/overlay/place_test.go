package overlay

import (
	"teleprompter/testing/snapshot"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
)

func TestPlaceOverlay(t *testing.T) {
	bg := "abcde\nfghij\nklmno"

	tests := []struct {
		name   string
		x, y   int
		fg     string
		center bool
		want   string
	}{
		{
			name: "at position",
			x:    1, y: 1,
			fg:   "XY\nZW",
			want: "abcde\nfXYij\nkZWno",
		},
		{
			name:   "centered",
			fg:     "XY\nZW",
			center: true,
			want:   "aXYde\nfZWij\nklmno",
		},
		{
			name: "clamped to the bottom right",
			x:    9, y: 9,
			fg:   "XY",
			want: "abcde\nfghij\nklmXY",
		},
		{
			name: "top left",
			fg:   "X",
			want: "Xbcde\nfghij\nklmno",
		},
		{
			name: "larger than the background",
			fg:   "123456\n2\n3\n4",
			want: "123456\n2\n3\n4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceOverlay(tt.x, tt.y, tt.fg, bg, tt.center))
		})
	}
}

func TestPlaceOverlayWideRunes(t *testing.T) {
	out := PlaceOverlay(1, 0, "X", "再生", false)
	assert.Equal(t, 4, snapshot.Width(out))
	assert.Equal(t, " X生", out)
}

func TestCutLeft(t *testing.T) {
	assert.Equal(t, "cde", cutLeft("abcde", 2))
	assert.Equal(t, "\x1b[1mcde\x1b[0m", cutLeft("\x1b[1mabcde\x1b[0m", 2))
	assert.Equal(t, " 生", cutLeft("再生", 1))
	assert.Empty(t, cutLeft("ab", 5))
}

func TestLoadingOverlay(t *testing.T) {
	s := spinner.New()
	l := NewLoadingOverlay("Open script", &s)
	l.SetWidth(40)
	l.SetStatus("Waiting for the file dialog")

	out := l.Render()
	snapshot.AssertContains(t, out, "Open script")
	snapshot.AssertContains(t, out, "Waiting for the file dialog")
	assert.Equal(t, 42, snapshot.Width(out))
}
