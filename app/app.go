package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"teleprompter/keys"
	"teleprompter/layout"
	"teleprompter/log"
	"teleprompter/protocol"
	"teleprompter/state"
	"teleprompter/ui"
	uilayout "teleprompter/ui/layout"
	"teleprompter/ui/overlay"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	// scrollInterval is how often the cursor advances while playing.
	scrollInterval = 50 * time.Millisecond
	// maxScrollStep caps a single advance, e.g. after the process was suspended.
	maxScrollStep = 250 * time.Millisecond

	moveStep    = 20
	resizeStep  = 20
	opacityStep = 0.05

	minimapTimeout      = 2 * time.Second
	loadingOverlayWidth = 50
)

// Deps are the services the surface drives.
type Deps struct {
	Bridge *protocol.Bridge
	// Window receives the bounds the store computes. It must be attached to
	// the bridge's store.
	Window *ui.Window
	// Screen is the virtual display configuration. The surface moves its
	// cursor to switch the top strip between displays.
	Screen  *layout.StaticScreen
	Hotkeys *keys.HotkeyMap
}

// Run is the main entrypoint into the application.
func Run(ctx context.Context, deps Deps) error {
	lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())

	h := newHome(ctx, deps)
	defer h.cancelEvents()

	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

type home struct {
	ctx context.Context

	// -- Services --

	bridge  *protocol.Bridge
	window  *ui.Window
	screen  *layout.StaticScreen
	hotkeys *keys.HotkeyMap

	// events delivers state:changed and hotkey:event from the hub.
	events       <-chan protocol.Event
	cancelEvents func()

	// -- State --

	// st is the latest state the surface has seen.
	st state.AppState
	// busy is set while a native file dialog is open.
	busy bool
	// lastTick is when the cursor last advanced. Zero when not playing.
	lastTick time.Time
	// minimapGen identifies the latest request to show the minimap.
	minimapGen  int
	showMinimap bool

	width, height int
	// frame divides the terminal between the components.
	frame uilayout.Constraints

	// -- UI Components --

	prompter *ui.Prompter
	status   *ui.StatusBar
	menu     *ui.Menu
	errBox   *ui.ErrBox
	minimap  *ui.Minimap
	// global spinner instance. we plumb this down to where it's needed
	spinner        spinner.Model
	loadingOverlay *overlay.LoadingOverlay
}

func newHome(ctx context.Context, deps Deps) *home {
	screen := deps.Screen
	if screen == nil {
		screen = &layout.StaticScreen{}
	}
	hotkeys := deps.Hotkeys
	if hotkeys == nil {
		hotkeys = keys.NewHotkeyMap(nil)
	}
	window := deps.Window
	if window == nil {
		window = ui.NewWindow()
	}

	events, cancel := deps.Bridge.Hub().Channel(1)
	h := &home{
		ctx:          ctx,
		bridge:       deps.Bridge,
		window:       window,
		screen:       screen,
		hotkeys:      hotkeys,
		events:       events,
		cancelEvents: cancel,
		st:           deps.Bridge.Bootstrap(),
		prompter:     ui.NewPrompter(),
		status:       ui.NewStatusBar(),
		menu:         ui.NewMenu(),
		errBox:       ui.NewErrBox(),
		minimap:      ui.NewMinimap(uilayout.MinimapWidth, uilayout.MinimapHeight),
		spinner:      spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	h.menu.SetPlayback(h.st.PlaybackStatus)
	return h
}

// updateHandleWindowSizeEvent sets the sizes of the components.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	c := uilayout.ComputeConstraints(msg.Width, msg.Height)
	if c.Mode != m.frame.Mode {
		log.RenderTrace("home", "layout %s at %dx%d", c.Mode, msg.Width, msg.Height)
	}
	m.frame = c

	m.status.SetWidth(c.StatusWidth)
	m.status.SetCompact(c.CompactStatus)
	m.prompter.SetSize(c.PrompterWidth, c.PrompterHeight)
	m.menu.SetSize(c.MenuWidth, c.MenuHeight)
	m.errBox.SetSize(c.ErrBoxWidth, c.ErrBoxHeight)
	m.minimap = ui.NewMinimap(c.MinimapWidth, c.MinimapHeight)
	if m.loadingOverlay != nil {
		m.loadingOverlay.SetWidth(uilayout.ComputeOverlayWidth(msg.Width, loadingOverlayWidth))
	}
	m.writeSnapshot()
}

func (m *home) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		scrollTickCmd(),
		m.waitForEvent(),
	)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
		return m, nil
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case hideMinimapMsg:
		if int(msg) == m.minimapGen {
			m.showMinimap = false
		}
		return m, nil
	case scrollTickMsg:
		m.advance(time.Time(msg))
		return m, scrollTickCmd()
	case eventMsg:
		return m, tea.Batch(m.handleEvent(protocol.Event(msg)), m.waitForEvent())
	case scriptOpenedMsg:
		m.setBusy(false)
		m.refresh()
		if msg.path != nil {
			m.errBox.SetInfo("Opened " + ui.FormatScriptFile(msg.path))
			return m, m.hideErrAfter()
		}
		return m, nil
	case scriptSavedMsg:
		m.setBusy(false)
		m.refresh()
		if msg.path == nil {
			if msg.dialog {
				return m, nil
			}
			return m, m.handleError(fmt.Errorf("could not save script, see %s", log.FileName()))
		}
		m.errBox.SetInfo("Saved " + ui.FormatScriptFile(msg.path))
		return m, m.hideErrAfter()
	case pasteMsg:
		if msg.err != nil {
			return m, m.handleError(fmt.Errorf("failed to read clipboard: %w", msg.err))
		}
		if msg.text == "" {
			m.errBox.SetInfo("Clipboard is empty")
			return m, m.hideErrAfter()
		}
		m.bridge.SetScriptText(msg.text)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case error:
		return m, m.handleError(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// refresh pulls the latest state from the store.
func (m *home) refresh() {
	m.st = m.bridge.Bootstrap()
	m.menu.SetPlayback(m.st.PlaybackStatus)
	if m.st.PlaybackStatus != state.Playing {
		m.lastTick = time.Time{}
	}
	m.writeSnapshot()
}

// handleEvent applies an event published by the hub, for example a command
// sent by another front end.
func (m *home) handleEvent(evt protocol.Event) tea.Cmd {
	if hk, ok := evt.Hotkey(); ok {
		log.InputTrace("hotkey %s", hk.Command)
		if cmd, ok := state.ParseCommand(hk.Command); ok {
			if name, ok := keyForCommand(cmd); ok {
				return m.keydownCallback(name)
			}
		}
		return nil
	}
	if _, ok := evt.State(); ok {
		m.refresh()
	}
	return nil
}

// advance scrolls the cursor by speed×elapsed while playing. Reaching the end
// of the script pauses playback.
func (m *home) advance(now time.Time) {
	if m.st.PlaybackStatus != state.Playing {
		m.lastTick = time.Time{}
		return
	}
	if m.lastTick.IsZero() {
		m.lastTick = now
		return
	}
	elapsed := min(now.Sub(m.lastTick), maxScrollStep)
	m.lastTick = now
	if elapsed <= 0 {
		return
	}

	settings := m.st.Settings
	end := m.prompter.ContentHeightPx(m.st.Script.Text, settings.FontSizePx)
	next := m.st.Script.CursorPx + float64(settings.SpeedPxPerSec)*elapsed.Seconds()
	if end > 0 && next >= end {
		m.bridge.UpdateCursor(end)
		m.bridge.Apply(state.CommandTogglePlay)
		log.InfoLog.Printf("reached the end of the script, pausing")
	} else if next != m.st.Script.CursorPx {
		m.bridge.UpdateCursor(next)
	}
	m.refresh()
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	if m.busy {
		return nil
	}
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	switch name {
	case keys.KeyMoveDown, keys.KeyMoveLeft, keys.KeyMoveRight:
		name = keys.KeyMoveUp
	case keys.KeyGrowUp, keys.KeyGrowDown, keys.KeyGrowLeft:
		name = keys.KeyGrowRight
	case keys.KeyScrollUp, keys.KeyScrollDown:
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		// The dialog owns the input until it returns.
		if msg.String() == "ctrl+c" {
			return m.handleQuit()
		}
		return m, nil
	}

	if cmd, ok := m.hotkeys.Resolve(msg.String()); ok {
		log.InputTrace("global hotkey %q -> %s", msg.String(), cmd)
		m.bridge.Hotkey(cmd)
		m.refresh()
		return m, nil
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	highlightCmd := m.handleMenuHighlighting(msg)

	if cmd, ok := name.Command(); ok {
		m.bridge.Apply(cmd)
		m.refresh()
		return m, highlightCmd
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyOpacityUp, keys.KeyOpacityDown:
		step := opacityStep
		if name == keys.KeyOpacityDown {
			step = -step
		}
		opacity := math.Round((m.st.Settings.Opacity+step)*100) / 100
		m.bridge.UpdateSettings(map[string]any{"opacity": opacity})
		m.refresh()
		return m, highlightCmd
	case keys.KeyCapture:
		m.bridge.UpdateSettings(map[string]any{"hideFromCapture": !m.st.Settings.HideFromCapture})
		m.refresh()
		return m, highlightCmd
	case keys.KeyScrollUp, keys.KeyScrollDown:
		step := ui.LineHeightPx(m.st.Settings.FontSizePx)
		if name == keys.KeyScrollUp {
			step = -step
		}
		m.bridge.UpdateCursor(max(m.st.Script.CursorPx+step, 0))
		m.refresh()
		return m, nil
	case keys.KeyMoveUp, keys.KeyMoveDown, keys.KeyMoveLeft, keys.KeyMoveRight:
		dx, dy := arrowDelta(name, moveStep)
		moved := m.bridge.Move(dx, dy)
		m.refresh()
		if !moved {
			return m, highlightCmd
		}
		return m, tea.Batch(highlightCmd, m.flashMinimap())
	case keys.KeyGrowUp, keys.KeyGrowDown, keys.KeyGrowLeft, keys.KeyGrowRight:
		dx, dy := arrowDelta(name, resizeStep)
		resized := m.bridge.Resize(string(layout.EdgeSouthEast), dx, dy)
		m.refresh()
		if !resized {
			return m, highlightCmd
		}
		return m, tea.Batch(highlightCmd, m.flashMinimap())
	case keys.KeyOpen:
		m.setBusy(true)
		m.loadingOverlay.SetStatus("Choose a script to open")
		return m, tea.Batch(highlightCmd, m.spinner.Tick, m.openScriptCmd())
	case keys.KeySave, keys.KeySaveAs:
		force := name == keys.KeySaveAs
		if force || m.st.Script.LastFilePath == nil {
			m.setBusy(true)
			m.loadingOverlay.SetStatus("Choose where to save the script")
			return m, tea.Batch(highlightCmd, m.spinner.Tick, m.saveScriptCmd(force))
		}
		return m, tea.Batch(highlightCmd, m.saveScriptCmd(false))
	case keys.KeyPaste:
		return m, tea.Batch(highlightCmd, pasteCmd)
	case keys.KeyDisplay:
		return m, tea.Batch(highlightCmd, m.nextDisplay())
	default:
		return m, nil
	}
}

// arrowDelta converts an arrow key into a drag. Up and left shrink or move
// towards the origin.
func arrowDelta(name keys.KeyName, step int) (int, int) {
	switch name {
	case keys.KeyMoveUp, keys.KeyGrowUp:
		return 0, -step
	case keys.KeyMoveDown, keys.KeyGrowDown:
		return 0, step
	case keys.KeyMoveLeft, keys.KeyGrowLeft:
		return -step, 0
	default:
		return step, 0
	}
}

// nextDisplay moves the virtual pointer to the centre of the next display so
// the top strip follows it there.
func (m *home) nextDisplay() tea.Cmd {
	displays := m.screen.Displays()
	if len(displays) < 2 {
		m.errBox.SetInfo("Only one display is configured")
		return m.hideErrAfter()
	}
	current := layout.NearestToPoint(displays, m.screen.CursorPoint())
	next := displays[0]
	for i, d := range displays {
		if d.ID == current.ID {
			next = displays[(i+1)%len(displays)]
			break
		}
	}
	m.screen.Cursor = next.WorkArea.Center()
	log.LayoutTrace("pointer moved to display %d", next.ID)

	if m.st.Settings.Mode == state.ModeFloating {
		// Floating bounds stay where the user put them.
		m.errBox.SetInfo(fmt.Sprintf("Top strip will use display %d", next.ID))
		return m.hideErrAfter()
	}
	m.bridge.Relayout()
	return m.flashMinimap()
}

func (m *home) setBusy(busy bool) {
	m.busy = busy
	if busy {
		m.menu.SetState(ui.StateBusy)
		m.loadingOverlay = overlay.NewLoadingOverlay("Waiting for file dialog", &m.spinner)
		m.loadingOverlay.SetWidth(uilayout.ComputeOverlayWidth(m.width, loadingOverlayWidth))
		return
	}
	m.menu.SetState(ui.StateDefault)
	m.loadingOverlay = nil
}

// openScriptCmd runs the open dialog off the update loop.
func (m *home) openScriptCmd() tea.Cmd {
	return func() tea.Msg {
		before := m.bridge.Bootstrap().Script
		script := m.bridge.OpenScript()
		if script.LastFilePath == nil || !opened(before, script) {
			return scriptOpenedMsg{}
		}
		return scriptOpenedMsg{path: script.LastFilePath}
	}
}

// opened reports whether OpenScript loaded a file. Loading rewinds the cursor,
// so reopening the current file still counts.
func opened(before, after state.Script) bool {
	if before.LastFilePath == nil {
		return true
	}
	return *before.LastFilePath != *after.LastFilePath || before.Text != after.Text ||
		(before.CursorPx != 0 && after.CursorPx == 0)
}

// saveScriptCmd runs the save, and the dialog when one is needed, off the
// update loop.
func (m *home) saveScriptCmd(forceDialog bool) tea.Cmd {
	dialog := forceDialog || m.st.Script.LastFilePath == nil
	return func() tea.Msg {
		return scriptSavedMsg{path: m.bridge.SaveScript(forceDialog), dialog: dialog}
	}
}

func pasteCmd() tea.Msg {
	text, err := clipboard.ReadAll()
	return pasteMsg{text: text, err: err}
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// flashMinimap shows the display minimap for a moment after the window moved.
func (m *home) flashMinimap() tea.Cmd {
	m.minimapGen++
	m.showMinimap = true
	gen := m.minimapGen
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(minimapTimeout):
		}
		return hideMinimapMsg(gen)
	}
}

// waitForEvent delivers the next hub event as an eventMsg.
func (m *home) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case evt := <-m.events:
			return eventMsg(evt)
		}
	}
}

// keyForCommand finds the surface key that fires cmd, for highlighting.
func keyForCommand(cmd state.Command) (keys.KeyName, bool) {
	for name := keys.KeyPlay; name <= keys.KeyMode; name++ {
		if c, ok := name.Command(); ok && c == cmd {
			return name, true
		}
	}
	return 0, false
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

type hideMinimapMsg int

// scrollTickMsg advances the cursor while playing.
type scrollTickMsg time.Time

type eventMsg protocol.Event

type scriptOpenedMsg struct {
	// path is nil when the dialog was canceled or the file was unreadable.
	path *string
}

type scriptSavedMsg struct {
	path *string
	// dialog reports whether a dialog was shown. A nil path then means the
	// user canceled rather than a failed write.
	dialog bool
}

type pasteMsg struct {
	text string
	err  error
}

func scrollTickCmd() tea.Cmd {
	return tea.Tick(scrollInterval, func(t time.Time) tea.Msg {
		return scrollTickMsg(t)
	})
}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return m.hideErrAfter()
}

func (m *home) hideErrAfter() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

func (m *home) View() string {
	start := time.Now()
	defer func() {
		log.GetProfiler().RecordFrame(time.Since(start))
	}()

	win := m.window.Info()
	var rows []string
	if !m.frame.HideStatus {
		rows = append(rows, m.status.Render(m.st, win))
	}
	rows = append(rows, m.prompter.Render(m.st.Script, m.st.Settings))
	if !m.frame.HideMenu {
		rows = append(rows, m.menu.String())
	}
	if !m.frame.HideErrBox {
		rows = append(rows, m.errBox.String())
	}
	mainView := lipgloss.JoinVertical(lipgloss.Center, rows...)

	if m.busy && m.loadingOverlay != nil {
		return overlay.PlaceOverlay(0, 0, m.loadingOverlay.Render(), mainView, true)
	}
	if m.showMinimap && !m.frame.HideMinimap {
		displays := m.screen.Displays()
		active := layout.Matching(displays, win.Bounds).ID
		mini := m.minimap.Render(displays, win.Bounds, active)
		return overlay.PlaceOverlay(m.frame.MinimapX, m.frame.MinimapY, mini, mainView, false)
	}
	return mainView
}
