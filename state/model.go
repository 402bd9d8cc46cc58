// Package state owns the teleprompter's canonical record: display settings,
// the script being presented and the playback status. All input is sanitized
// before it reaches the record, and callers only ever see copies.
package state

import (
	"teleprompter/layout"
	"time"
)

// Mode selects how the overlay window is placed.
type Mode string

const (
	// ModeTopStrip docks a derived-size strip at the top of the display under the pointer.
	ModeTopStrip Mode = "top_strip"
	// ModeFloating uses the user's stored floating bounds.
	ModeFloating Mode = "floating"
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeFloating {
		return ModeTopStrip
	}
	return ModeFloating
}

// PlaybackStatus is the transport state of the prompter.
type PlaybackStatus string

const (
	Stopped PlaybackStatus = "stopped"
	Playing PlaybackStatus = "playing"
	Paused  PlaybackStatus = "paused"
)

// Settings bounds
const (
	MinFontSizePx = 16
	MaxFontSizePx = 120

	MinSpeedPxPerSec = 0
	MaxSpeedPxPerSec = 500
	SpeedStep        = 10

	MinOpacity = 0.2
	MaxOpacity = 1.0

	MinTopOffsetPx = 0
	MaxTopOffsetPx = 300
)

// Settings is the display and behavior configuration.
type Settings struct {
	Mode            Mode        `json:"mode"`
	FontSizePx      int         `json:"fontSizePx"`
	SpeedPxPerSec   int         `json:"speedPxPerSec"`
	Opacity         float64     `json:"opacity"`
	TopOffsetPx     int         `json:"topOffsetPx"`
	FloatingBounds  layout.Rect `json:"floatingBounds"`
	HideFromCapture bool        `json:"hideFromCapture"`
}

// Script is the presented content.
type Script struct {
	Text     string  `json:"text"`
	CursorPx float64 `json:"cursorPx"`
	// LastFilePath is nil until the script was opened from or saved to a file.
	LastFilePath *string   `json:"lastFilePath"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AppState is the whole persisted record.
type AppState struct {
	Settings       Settings       `json:"settings"`
	Script         Script         `json:"script"`
	PlaybackStatus PlaybackStatus `json:"playbackStatus"`
}

// DefaultScriptText is shown until the user provides a script.
const DefaultScriptText = "Paste or open a script to start prompting.\n\n" +
	"Space plays and pauses, R resets to the top."

// DefaultSettings returns the documented default settings.
func DefaultSettings() Settings {
	return Settings{
		Mode:            ModeTopStrip,
		FontSizePx:      42,
		SpeedPxPerSec:   60,
		Opacity:         0.92,
		TopOffsetPx:     12,
		FloatingBounds:  layout.Rect{X: 80, Y: 80, Width: 980, Height: 360},
		HideFromCapture: true,
	}
}

// DefaultScript returns the default script stamped with the current time.
func DefaultScript() Script {
	return Script{
		Text:      DefaultScriptText,
		CursorPx:  0,
		UpdatedAt: Now(),
	}
}

// DefaultState returns the state used when nothing valid was persisted.
func DefaultState() AppState {
	return AppState{
		Settings:       DefaultSettings(),
		Script:         DefaultScript(),
		PlaybackStatus: Stopped,
	}
}

// Clone returns a deep copy of the state.
func (s AppState) Clone() AppState {
	out := s
	out.Script = s.Script.Clone()
	return out
}

// Clone returns a deep copy of the script.
func (s Script) Clone() Script {
	out := s
	if s.LastFilePath != nil {
		path := *s.LastFilePath
		out.LastFilePath = &path
	}
	return out
}

// clock is replaced in tests.
var clock = time.Now

// Now returns the current time in the canonical form used for timestamps:
// UTC with millisecond precision.
func Now() time.Time {
	return canonicalTime(clock())
}

func canonicalTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
