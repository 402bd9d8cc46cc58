package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"teleprompter/ui/layout"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLayout(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		mode       string
		chromeRows int
		active     []string
	}{
		{name: "standard", width: 120, height: 30, mode: "standard", chromeRows: 3},
		{name: "narrow", width: 50, height: 30, mode: "compact", chromeRows: 3,
			active: []string{"compact_status", "hide_minimap"}},
		{name: "short", width: 120, height: 5, mode: "minimal", chromeRows: 1,
			active: []string{"hide_minimap", "hide_status", "hide_menu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := NewSnapshot().
				WithTerminal(tt.width, tt.height).
				WithLayout(layout.ComputeConstraints(tt.width, tt.height))

			assert.Equal(t, tt.mode, snap.Layout.Mode)
			assert.Equal(t, tt.chromeRows, snap.Layout.ChromeRows)

			var active []string
			for _, bp := range snap.Breakpoints {
				if bp.Active {
					active = append(active, bp.Name)
				}
			}
			assert.Equal(t, tt.active, active)
		})
	}
}

func TestToText(t *testing.T) {
	root := NewNode("Surface").WithBounds(0, 0, 80, 24)
	root.AddChild(NewNode("Status").WithBounds(0, 0, 80, 1))
	root.AddChild(NewNode("Minimap").WithID("displays").WithBounds(54, 2, 26, 8).WithVisible(false))

	snap := NewSnapshot().
		WithTerminal(80, 24).
		WithAppState(AppStateInfo{PlaybackStatus: "paused", Mode: "topStrip"}).
		WithLayout(layout.ComputeConstraints(80, 24)).
		WithComponents(root)

	text := snap.ToText()
	assert.Contains(t, text, "Terminal: 80x24")
	assert.Contains(t, text, "Playback: paused (topStrip)")
	assert.Contains(t, text, "[X] compact_status")
	assert.Contains(t, text, "  Status (80x1)\n")
	assert.Contains(t, text, "  Minimap [displays] (26x8) HIDDEN\n")
}

func TestExtractStyleInfo(t *testing.T) {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFCC00")).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8"))

	info := ExtractStyleInfo(style, "reading")
	assert.True(t, info.Bold)
	assert.Equal(t, "#FFCC00", info.Foreground)
	assert.Equal(t, "", info.Background)
	assert.Equal(t, []int{0, 1, 0, 1}, info.Padding)
	assert.True(t, info.Border)
	assert.Equal(t, "8", info.BorderColor)
	assert.Equal(t, []string{"reading"}, info.AppliedStyles)

	plain := ExtractStyleInfo(lipgloss.NewStyle())
	assert.Nil(t, plain.Padding)
	assert.False(t, plain.Border)
}

func TestWriteSnapshotToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspect.json")
	snap := NewSnapshot().
		WithTerminal(100, 40).
		WithComponents(NewNode("Prompter").WithState("lines", 3))

	require.NoError(t, WriteSnapshotToPath(snap, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "1.0.0", decoded["version"])
	components := decoded["components"].(map[string]interface{})
	assert.Equal(t, "Prompter", components["type"])
	assert.Equal(t, float64(3), components["state"].(map[string]interface{})["lines"])
}
