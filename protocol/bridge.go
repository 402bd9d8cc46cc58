package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"teleprompter/layout"
	"teleprompter/log"
	"teleprompter/state"
)

// Request names accepted by Handle.
const (
	RequestBootstrap      = "bootstrap"
	RequestUpdateSettings = "settings:update"
	RequestSetScriptText  = "script:set-text"
	RequestUpdateCursor   = "script:update-cursor"
	RequestOpenScript     = "script:open"
	RequestSaveScript     = "script:save"
	RequestSendCommand    = "command:send"
	RequestResize         = "window:resize"
	RequestMove           = "window:move"
)

// ErrUnknownRequest is returned by Handle for names it does not know.
var ErrUnknownRequest = errors.New("unknown request")

// Bridge exposes the Store to front ends. Every successful mutation is
// followed by a state:changed event on the Hub.
type Bridge struct {
	store  *state.Store
	hub    *Hub
	picker FilePicker
}

// NewBridge wires store to hub. picker may be nil, in which case open and
// save-as behave as if the user canceled.
func NewBridge(store *state.Store, hub *Hub, picker FilePicker) *Bridge {
	return &Bridge{store: store, hub: hub, picker: picker}
}

// Hub returns the event hub.
func (b *Bridge) Hub() *Hub {
	return b.hub
}

// Bootstrap returns the current state.
func (b *Bridge) Bootstrap() state.AppState {
	return b.store.Snapshot()
}

// UpdateSettings merges partial (a settings object in any accepted form)
// into the settings and returns the sanitized result.
func (b *Bridge) UpdateSettings(partial any) state.Settings {
	return b.publish(b.store.UpdateSettings(partial)).Settings
}

// SetScriptText replaces the script text.
func (b *Bridge) SetScriptText(text string) {
	b.publish(b.store.UpdateScriptText(text))
}

// UpdateCursor sets the scroll offset.
func (b *Bridge) UpdateCursor(px float64) {
	b.publish(b.store.UpdateCursor(px))
}

// OpenScript asks the picker for a file and loads it. Cancellation and read
// failures leave the script unchanged.
func (b *Bridge) OpenScript() state.Script {
	if b.picker == nil {
		return b.store.Snapshot().Script
	}
	path, err := b.picker.OpenScript()
	if err != nil {
		log.ErrorLog.Printf("open script dialog failed: %v", err)
		return b.store.Snapshot().Script
	}
	if path == "" {
		return b.store.Snapshot().Script
	}
	script, err := b.LoadScript(path)
	if err != nil {
		log.ErrorLog.Printf("%v", err)
	}
	return script
}

// LoadScript loads the script at path without asking the picker. On a read
// failure the current script is returned unchanged along with the error.
func (b *Bridge) LoadScript(path string) (state.Script, error) {
	text, err := ReadScriptFile(path)
	if err != nil {
		return b.store.Snapshot().Script, err
	}
	return b.publish(b.store.SetScriptFromFile(filepath.Clean(path), text)).Script, nil
}

// SaveScript writes the script to its known file. Without a known file, or
// when forceDialog is set, the picker chooses the destination. It returns the
// saved path, or nil when the user canceled or the write failed.
func (b *Bridge) SaveScript(forceDialog bool) *string {
	script := b.store.Snapshot().Script

	var path string
	if script.LastFilePath != nil && !forceDialog {
		path = *script.LastFilePath
	} else {
		if b.picker == nil {
			return nil
		}
		suggested := ""
		if script.LastFilePath != nil {
			suggested = *script.LastFilePath
		}
		chosen, err := b.picker.SaveScript(suggested)
		if err != nil {
			log.ErrorLog.Printf("save script dialog failed: %v", err)
			return nil
		}
		if chosen == "" {
			return nil
		}
		path = withDefaultExtension(filepath.Clean(chosen))
	}

	if err := WriteScriptFile(path, script.Text); err != nil {
		log.ErrorLog.Printf("%v", err)
		return nil
	}
	b.publish(b.store.MarkSaved(path))
	return &path
}

// SendCommand applies a named command. Unknown names are ignored and
// reported as false.
func (b *Bridge) SendCommand(name string) bool {
	cmd, ok := state.ParseCommand(name)
	if !ok {
		log.WarningLog.Printf("ignoring unknown command %q", name)
		return false
	}
	b.Apply(cmd)
	return true
}

// Apply runs cmd against the store.
func (b *Bridge) Apply(cmd state.Command) state.AppState {
	return b.publish(b.store.ApplyCommand(cmd))
}

// Hotkey applies cmd on behalf of a global trigger and announces it.
func (b *Bridge) Hotkey(cmd state.Command) state.AppState {
	b.hub.Publish(Hotkey(cmd, state.Now()))
	return b.Apply(cmd)
}

// Resize drags edge by (dx, dy). Unknown edges, a missing surface and no-op
// drags report false.
func (b *Bridge) Resize(edge string, dx, dy int) bool {
	e, ok := layout.ParseEdge(edge)
	if !ok {
		return false
	}
	st, ok := b.store.ApplyResize(e, dx, dy)
	if ok {
		b.publish(st)
	}
	return ok
}

// Move drags the window by (dx, dy).
func (b *Bridge) Move(dx, dy int) bool {
	st, ok := b.store.ApplyMove(dx, dy)
	if ok {
		b.publish(st)
	}
	return ok
}

// Relayout re-applies the layout, for example after the pointer changed display.
func (b *Bridge) Relayout() bool {
	return b.store.ApplyLayout()
}

func (b *Bridge) publish(st state.AppState) state.AppState {
	b.hub.Publish(StateChanged(st))
	return st
}

type textRequest struct {
	Text string `json:"text"`
}

type cursorRequest struct {
	CursorPx any `json:"cursorPx"`
}

type saveRequest struct {
	ForceDialog bool `json:"forceDialog"`
}

type commandRequest struct {
	Command string `json:"command"`
}

type deltaRequest struct {
	Edge   string  `json:"edge"`
	DeltaX float64 `json:"deltaX"`
	DeltaY float64 `json:"deltaY"`
}

// Ack acknowledges requests without a result.
type Ack struct {
	OK bool `json:"ok"`
}

// SaveResult is the reply to RequestSaveScript.
type SaveResult struct {
	SavedPath *string `json:"savedPath"`
}

// Handle dispatches a named request with a JSON payload and returns the
// reply, ready to be marshaled. An empty payload is treated as {}.
func (b *Bridge) Handle(name string, payload json.RawMessage) (any, error) {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	switch name {
	case RequestBootstrap:
		return b.Bootstrap(), nil
	case RequestUpdateSettings:
		return b.UpdateSettings(payload), nil
	case RequestSetScriptText:
		var req textRequest
		if err := decode(name, payload, &req); err != nil {
			return nil, err
		}
		b.SetScriptText(req.Text)
		return Ack{OK: true}, nil
	case RequestUpdateCursor:
		var req cursorRequest
		if err := decode(name, payload, &req); err != nil {
			return nil, err
		}
		b.publish(b.store.UpdateCursorValue(req.CursorPx))
		return Ack{OK: true}, nil
	case RequestOpenScript:
		return b.OpenScript(), nil
	case RequestSaveScript:
		var req saveRequest
		if err := decode(name, payload, &req); err != nil {
			return nil, err
		}
		return SaveResult{SavedPath: b.SaveScript(req.ForceDialog)}, nil
	case RequestSendCommand:
		var req commandRequest
		if err := decode(name, payload, &req); err != nil {
			return nil, err
		}
		return Ack{OK: b.SendCommand(req.Command)}, nil
	case RequestResize:
		var req deltaRequest
		if err := decode(name, payload, &req); err != nil {
			return nil, err
		}
		return Ack{OK: b.Resize(req.Edge, pixels(req.DeltaX), pixels(req.DeltaY))}, nil
	case RequestMove:
		var req deltaRequest
		if err := decode(name, payload, &req); err != nil {
			return nil, err
		}
		return Ack{OK: b.Move(pixels(req.DeltaX), pixels(req.DeltaY))}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownRequest, name)
	}
}

func decode(name string, payload json.RawMessage, v any) error {
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", name, err)
	}
	return nil
}

// pixels rounds a drag delta to whole pixels. Non-finite deltas are dropped.
func pixels(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
