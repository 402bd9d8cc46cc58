// Package protocol connects surfaces and other front ends to the state Store:
// request operations on a Bridge and push events through a Hub.
package protocol

import (
	"teleprompter/state"
	"time"
)

// Push event names.
const (
	EventStateChanged = "state:changed"
	EventHotkey       = "hotkey:event"
)

// Event is a push notification. Payload is a state.AppState for
// EventStateChanged and a HotkeyEvent for EventHotkey.
type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"payload"`
}

// HotkeyEvent reports a command fired by a global trigger.
type HotkeyEvent struct {
	Command     string    `json:"command"`
	TriggeredAt time.Time `json:"triggeredAt"`
}

// StateChanged builds the event carrying a full snapshot.
func StateChanged(st state.AppState) Event {
	return Event{Name: EventStateChanged, Payload: st}
}

// Hotkey builds the event for a fired global trigger.
func Hotkey(cmd state.Command, at time.Time) Event {
	return Event{Name: EventHotkey, Payload: HotkeyEvent{Command: cmd.String(), TriggeredAt: at}}
}

// State returns the snapshot of an EventStateChanged.
func (e Event) State() (state.AppState, bool) {
	st, ok := e.Payload.(state.AppState)
	return st, ok
}

// Hotkey returns the payload of an EventHotkey.
func (e Event) Hotkey() (HotkeyEvent, bool) {
	h, ok := e.Payload.(HotkeyEvent)
	return h, ok
}
