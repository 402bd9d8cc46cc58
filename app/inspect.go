package app

import (
	"teleprompter/inspect"
	"teleprompter/log"
	"teleprompter/ui"
	uilayout "teleprompter/ui/layout"
)

// snapshot describes what the surface currently draws.
func (m *home) snapshot() *inspect.Snapshot {
	c := m.frame
	info := inspect.AppStateInfo{
		PlaybackStatus: string(m.st.PlaybackStatus),
		Mode:           string(m.st.Settings.Mode),
		FontSizePx:     m.st.Settings.FontSizePx,
		SpeedPxPerSec:  m.st.Settings.SpeedPxPerSec,
		Opacity:        m.st.Settings.Opacity,
		CursorPx:       m.st.Script.CursorPx,
		Busy:           m.busy,
		ShowMinimap:    m.showMinimap,
	}
	if p := m.st.Script.LastFilePath; p != nil {
		info.ScriptPath = *p
	}
	if err := m.errBox.Err(); err != nil {
		info.ErrorMessage = err.Error()
	}

	y := 0
	root := inspect.NewNode("Surface").WithBounds(0, 0, c.TerminalWidth, c.TerminalHeight)
	root.AddChild(inspect.NewNode("Status").
		WithBounds(0, y, c.StatusWidth, c.StatusHeight).
		WithVisible(!c.HideStatus).
		WithState("compact", c.CompactStatus))
	y += c.StatusHeight

	lines := m.prompter.Lines(m.st.Script.Text, m.st.Settings.FontSizePx)
	root.AddChild(inspect.NewNode("Prompter").
		WithBounds(0, y, c.PrompterWidth, c.PrompterHeight).
		WithState("wrap_columns", m.prompter.WrapColumns(m.st.Settings.FontSizePx)).
		WithState("line_height_px", ui.LineHeightPx(m.st.Settings.FontSizePx)).
		WithState("lines", len(lines)).
		WithStyles(inspect.ExtractStyleInfo(ui.ScriptStyle(m.st.Settings.Opacity), "script")))
	y += c.PrompterHeight

	root.AddChild(inspect.NewNode("Menu").
		WithBounds(0, y, c.MenuWidth, c.MenuHeight).
		WithVisible(!c.HideMenu))
	y += c.MenuHeight

	root.AddChild(inspect.NewNode("ErrBox").
		WithBounds(0, y, c.ErrBoxWidth, c.ErrBoxHeight).
		WithVisible(!c.HideErrBox).
		WithContent(info.ErrorMessage))

	root.AddChild(inspect.NewNode("Minimap").
		WithBounds(c.MinimapX, c.MinimapY, c.MinimapWidth+2, c.MinimapHeight+2).
		WithVisible(m.showMinimap && !c.HideMinimap).
		WithState("displays", len(m.screen.Displays())))

	if m.busy {
		root.AddChild(inspect.NewNode("LoadingOverlay").
			WithBounds(0, 0, uilayout.ComputeOverlayWidth(c.TerminalWidth, loadingOverlayWidth), 3))
	}

	return inspect.NewSnapshot().
		WithTerminal(c.TerminalWidth, c.TerminalHeight).
		WithAppState(info).
		WithLayout(c).
		WithComponents(root)
}

// writeSnapshot dumps the surface for external tools when TP_INSPECT=1.
func (m *home) writeSnapshot() {
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
		log.WarningLog.Printf("inspect: %v", err)
	}
}
