package inspect

import (
	"fmt"
	"strings"
	"teleprompter/ui/layout"
	"time"
)

// Snapshot represents the whole surface at a point in time.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	Terminal TerminalInfo `json:"terminal"`

	AppState AppStateInfo `json:"app_state"`

	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo is the application state the surface was drawn from.
type AppStateInfo struct {
	PlaybackStatus string  `json:"playback_status"`
	Mode           string  `json:"mode"`
	FontSizePx     int     `json:"font_size_px"`
	SpeedPxPerSec  int     `json:"speed_px_per_sec"`
	Opacity        float64 `json:"opacity"`
	CursorPx       float64 `json:"cursor_px"`
	ScriptPath     string  `json:"script_path,omitempty"`

	// Busy is true while a file dialog is open.
	Busy        bool `json:"busy"`
	ShowMinimap bool `json:"show_minimap"`

	ErrorMessage string `json:"error_message,omitempty"`
}

// LayoutInfo contains the computed layout.
type LayoutInfo struct {
	Mode string `json:"mode"`

	PrompterWidth  int `json:"prompter_width"`
	PrompterHeight int `json:"prompter_height"`
	ChromeRows     int `json:"chrome_rows"`

	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active degradation flags.
type DegradationInfo struct {
	CompactStatus bool `json:"compact_status"`
	HideMinimap   bool `json:"hide_minimap"`
	HideStatus    bool `json:"hide_status"`
	HideMenu      bool `json:"hide_menu"`
	HideErrBox    bool `json:"hide_err_box"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Active    bool   `json:"active"`
	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithAppState sets the application state and returns the snapshot for chaining.
func (s *Snapshot) WithAppState(info AppStateInfo) *Snapshot {
	s.AppState = info
	return s
}

// WithLayout sets layout info from the computed constraints.
func (s *Snapshot) WithLayout(c layout.Constraints) *Snapshot {
	d := c.Degradation
	s.Layout = LayoutInfo{
		Mode:           c.Mode.String(),
		PrompterWidth:  c.PrompterWidth,
		PrompterHeight: c.PrompterHeight,
		ChromeRows:     d.ChromeRows(),
		Degradation: DegradationInfo{
			CompactStatus: d.CompactStatus,
			HideMinimap:   d.HideMinimap,
			HideStatus:    d.HideStatus,
			HideMenu:      d.HideMenu,
			HideErrBox:    d.HideErrBox,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "compact_status", Threshold: layout.CompactStatusWidth, Active: d.CompactStatus, Dimension: "width"},
		{Name: "hide_minimap", Threshold: layout.MinimapHideWidth, Active: c.TerminalWidth < layout.MinimapHideWidth, Dimension: "width"},
		{Name: "hide_minimap", Threshold: layout.MinimapHideHeight, Active: c.TerminalHeight < layout.MinimapHideHeight, Dimension: "height"},
		{Name: "hide_status", Threshold: layout.StatusHideHeight, Active: d.HideStatus, Dimension: "height"},
		{Name: "hide_menu", Threshold: layout.MenuHideHeight, Active: d.HideMenu, Dimension: "height"},
		{Name: "hide_err_box", Threshold: layout.ErrBoxHideHeight, Active: d.HideErrBox, Dimension: "height"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== Surface Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	b.WriteString(fmt.Sprintf("Playback: %s (%s)\n", s.AppState.PlaybackStatus, s.AppState.Mode))

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Prompter: %dx%d\n", s.Layout.PrompterWidth, s.Layout.PrompterHeight))
	b.WriteString(fmt.Sprintf("Chrome rows: %d\n", s.Layout.ChromeRows))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))
	if !node.Visible {
		b.WriteString(" HIDDEN")
	}
	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
