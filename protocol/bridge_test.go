package protocol

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"teleprompter/layout"
	"teleprompter/state"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	mu     sync.Mutex
	bounds layout.Rect
}

func (f *fakeSurface) Bounds() layout.Rect {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bounds
}

func (f *fakeSurface) SetBounds(r layout.Rect) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bounds = r
}

func (f *fakeSurface) SetOpacity(float64)        {}
func (f *fakeSurface) SetContentProtection(bool) {}

type fakePicker struct {
	openPath  string
	savePath  string
	err       error
	opens     int
	saves     int
	suggested string
}

func (p *fakePicker) OpenScript() (string, error) {
	p.opens++
	return p.openPath, p.err
}

func (p *fakePicker) SaveScript(suggested string) (string, error) {
	p.saves++
	p.suggested = suggested
	return p.savePath, p.err
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) listen(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Name)
	}
	return out
}

func (r *recorder) last(t *testing.T) state.AppState {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	st, ok := r.events[len(r.events)-1].State()
	require.True(t, ok)
	return st
}

var fullHD = layout.Display{
	ID:       1,
	Bounds:   layout.Rect{Width: 1920, Height: 1080},
	WorkArea: layout.Rect{Width: 1920, Height: 1080},
}

func newTestBridge(t *testing.T, picker FilePicker, attach bool) (*Bridge, *recorder, *fakeSurface) {
	t.Helper()
	initial := state.DefaultState()
	initial.Settings.Mode = state.ModeFloating

	store := state.NewStore(initial, state.Options{
		Screen:      &layout.StaticScreen{List: []layout.Display{fullHD}, Cursor: layout.Point{X: 10, Y: 10}},
		SampleDelay: -1,
	})
	surface := &fakeSurface{}
	if attach {
		store.Attach(surface)
	}

	rec := &recorder{}
	hub := NewHub()
	hub.Subscribe(rec.listen)
	return NewBridge(store, hub, picker), rec, surface
}

func TestBridgeSettingsAndScript(t *testing.T) {
	b, rec, _ := newTestBridge(t, nil, true)

	assert.Equal(t, state.DefaultScriptText, b.Bootstrap().Script.Text)

	settings := b.UpdateSettings(map[string]any{"fontSizePx": 500, "opacity": 0.5})
	assert.Equal(t, state.MaxFontSizePx, settings.FontSizePx)
	assert.Equal(t, 0.5, settings.Opacity)

	b.SetScriptText("hello")
	b.UpdateCursor(-20)

	assert.Equal(t, []string{EventStateChanged, EventStateChanged, EventStateChanged}, rec.names())
	last := rec.last(t)
	assert.Equal(t, "hello", last.Script.Text)
	assert.Zero(t, last.Script.CursorPx)
}

func TestBridgeCommands(t *testing.T) {
	b, rec, _ := newTestBridge(t, nil, true)

	assert.True(t, b.SendCommand("toggle_play"))
	assert.Equal(t, state.Playing, rec.last(t).PlaybackStatus)

	assert.False(t, b.SendCommand("warp_speed"))
	assert.Len(t, rec.names(), 1, "unknown commands publish nothing")

	b.Hotkey(state.CommandSpeedUp)
	assert.Equal(t, []string{EventStateChanged, EventHotkey, EventStateChanged}, rec.names())

	hk, ok := rec.events[1].Hotkey()
	require.True(t, ok)
	assert.Equal(t, "speed_up", hk.Command)
	assert.False(t, hk.TriggeredAt.IsZero())
	assert.Equal(t, 70, rec.last(t).Settings.SpeedPxPerSec)
}

func TestBridgeResizeMove(t *testing.T) {
	t.Run("attached", func(t *testing.T) {
		b, rec, surface := newTestBridge(t, nil, true)
		require.Equal(t, layout.Rect{X: 80, Y: 80, Width: 980, Height: 360}, surface.Bounds())

		assert.True(t, b.Resize("se", 50, 30))
		assert.Equal(t, layout.Rect{X: 80, Y: 80, Width: 1030, Height: 390}, rec.last(t).Settings.FloatingBounds)

		assert.False(t, b.Resize("diagonal", 10, 10))
		assert.False(t, b.Move(0, 0))
		assert.Len(t, rec.names(), 1, "rejected drags publish nothing")

		assert.True(t, b.Move(-20, -20))
		assert.Equal(t, layout.Rect{X: 60, Y: 60, Width: 1030, Height: 390}, rec.last(t).Settings.FloatingBounds)
	})

	t.Run("no surface", func(t *testing.T) {
		b, rec, _ := newTestBridge(t, nil, false)
		assert.False(t, b.Resize("se", 50, 30))
		assert.False(t, b.Move(10, 10))
		assert.Empty(t, rec.names())
	})
}

func TestBridgeOpenScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.md")
	require.NoError(t, os.WriteFile(path, []byte("Welcome everyone"), 0644))

	t.Run("loads the chosen file", func(t *testing.T) {
		picker := &fakePicker{openPath: path}
		b, rec, _ := newTestBridge(t, picker, true)
		b.UpdateCursor(300)
		b.UpdateSettings(map[string]any{"mode": "top_strip"})

		script := b.OpenScript()
		assert.Equal(t, "Welcome everyone", script.Text)
		assert.Zero(t, script.CursorPx)
		require.NotNil(t, script.LastFilePath)
		assert.Equal(t, path, *script.LastFilePath)
		assert.Equal(t, state.ModeTopStrip, rec.last(t).Settings.Mode, "opening a file keeps the mode")
	})

	tests := []struct {
		name   string
		picker *fakePicker
	}{
		{"canceled", &fakePicker{}},
		{"dialog error", &fakePicker{err: errors.New("no display")}},
		{"unreadable file", &fakePicker{openPath: filepath.Join(dir, "missing.txt")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, rec, _ := newTestBridge(t, tt.picker, true)
			before := b.Bootstrap().Script

			script := b.OpenScript()
			assert.Equal(t, before.Text, script.Text)
			assert.Nil(t, script.LastFilePath)
			assert.Empty(t, rec.names())
		})
	}
}

func TestBridgeLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.txt")
	require.NoError(t, os.WriteFile(path, []byte("Good evening"), 0644))

	b, rec, _ := newTestBridge(t, nil, true)
	script, err := b.LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "Good evening", script.Text)
	require.NotNil(t, script.LastFilePath)
	assert.Equal(t, path, *script.LastFilePath)
	assert.Equal(t, []string{EventStateChanged}, rec.names())

	before := b.Bootstrap().Script
	script, err = b.LoadScript(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
	assert.Equal(t, before.Text, script.Text)
	assert.Equal(t, path, *script.LastFilePath)
	assert.Len(t, rec.names(), 1, "a failed load publishes nothing")
}

func TestBridgeSaveScript(t *testing.T) {
	dir := t.TempDir()
	picker := &fakePicker{savePath: filepath.Join(dir, "notes")}
	b, _, _ := newTestBridge(t, picker, true)
	b.SetScriptText("first draft")

	saved := b.SaveScript(false)
	require.NotNil(t, saved)
	assert.Equal(t, filepath.Join(dir, "notes.txt"), *saved)
	assert.Equal(t, 1, picker.saves)
	data, err := os.ReadFile(*saved)
	require.NoError(t, err)
	assert.Equal(t, "first draft", string(data))

	b.SetScriptText("second draft")
	again := b.SaveScript(false)
	require.NotNil(t, again)
	assert.Equal(t, *saved, *again)
	assert.Equal(t, 1, picker.saves, "a known path is reused without asking")
	data, err = os.ReadFile(*saved)
	require.NoError(t, err)
	assert.Equal(t, "second draft", string(data))

	picker.savePath = ""
	assert.Nil(t, b.SaveScript(true), "canceled save-as returns nil")
	assert.Equal(t, 2, picker.saves)
	assert.Equal(t, *saved, picker.suggested)
	require.NotNil(t, b.Bootstrap().Script.LastFilePath)
	assert.Equal(t, *saved, *b.Bootstrap().Script.LastFilePath)
}

func TestBridgeSaveScriptWithoutPicker(t *testing.T) {
	b, _, _ := newTestBridge(t, nil, true)
	assert.Nil(t, b.SaveScript(false))
}

func TestBridgeHandle(t *testing.T) {
	b, rec, _ := newTestBridge(t, nil, true)

	tests := []struct {
		name    string
		request string
		payload string
		check   func(t *testing.T, reply any)
	}{
		{
			name:    "bootstrap",
			request: RequestBootstrap,
			check: func(t *testing.T, reply any) {
				_, ok := reply.(state.AppState)
				assert.True(t, ok)
			},
		},
		{
			name:    "settings",
			request: RequestUpdateSettings,
			payload: `{"speedPxPerSec": 123}`,
			check: func(t *testing.T, reply any) {
				assert.Equal(t, 120, reply.(state.Settings).SpeedPxPerSec)
			},
		},
		{
			name:    "text",
			request: RequestSetScriptText,
			payload: `{"text": "from json"}`,
			check: func(t *testing.T, reply any) {
				assert.Equal(t, Ack{OK: true}, reply)
				assert.Equal(t, "from json", rec.last(t).Script.Text)
			},
		},
		{
			name:    "cursor",
			request: RequestUpdateCursor,
			payload: `{"cursorPx": 12.5}`,
			check: func(t *testing.T, reply any) {
				assert.Equal(t, 12.5, rec.last(t).Script.CursorPx)
			},
		},
		{
			name:    "cursor ignores strings",
			request: RequestUpdateCursor,
			payload: `{"cursorPx": "40"}`,
			check: func(t *testing.T, reply any) {
				assert.Equal(t, 12.5, rec.last(t).Script.CursorPx)
			},
		},
		{
			name:    "command",
			request: RequestSendCommand,
			payload: `{"command": "font_up"}`,
			check: func(t *testing.T, reply any) {
				assert.Equal(t, Ack{OK: true}, reply)
				assert.Equal(t, 44, rec.last(t).Settings.FontSizePx)
			},
		},
		{
			name:    "unknown command",
			request: RequestSendCommand,
			payload: `{"command": "explode"}`,
			check: func(t *testing.T, reply any) {
				assert.Equal(t, Ack{OK: false}, reply)
			},
		},
		{
			name:    "resize",
			request: RequestResize,
			payload: `{"edge": "e", "deltaX": 19.6, "deltaY": 0}`,
			check: func(t *testing.T, reply any) {
				assert.Equal(t, Ack{OK: true}, reply)
				assert.Equal(t, 1000, rec.last(t).Settings.FloatingBounds.Width)
			},
		},
		{
			name:    "move",
			request: RequestMove,
			payload: `{"deltaX": 0, "deltaY": 0}`,
			check: func(t *testing.T, reply any) {
				assert.Equal(t, Ack{OK: false}, reply)
			},
		},
		{
			name:    "save without picker",
			request: RequestSaveScript,
			payload: `{"forceDialog": true}`,
			check: func(t *testing.T, reply any) {
				assert.Equal(t, SaveResult{}, reply)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := b.Handle(tt.request, json.RawMessage(tt.payload))
			require.NoError(t, err)
			tt.check(t, reply)
		})
	}

	t.Run("unknown request", func(t *testing.T) {
		_, err := b.Handle("window:explode", nil)
		assert.ErrorIs(t, err, ErrUnknownRequest)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := b.Handle(RequestSendCommand, json.RawMessage(`{"command": 12}`))
		assert.Error(t, err)
	})
}
