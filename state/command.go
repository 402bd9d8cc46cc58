package state

import "strings"

// Command is one entry of the fixed transport/adjustment vocabulary.
type Command int

const (
	CommandTogglePlay Command = iota
	CommandReset
	CommandSpeedUp
	CommandSpeedDown
	CommandFontUp
	CommandFontDown
	CommandModeToggle
)

// Adjustment increments
const (
	SpeedIncrement = 10
	FontIncrement  = 2
)

var commandNames = map[Command]string{
	CommandTogglePlay: "toggle_play",
	CommandReset:      "reset",
	CommandSpeedUp:    "speed_up",
	CommandSpeedDown:  "speed_down",
	CommandFontUp:     "font_up",
	CommandFontDown:   "font_down",
	CommandModeToggle: "mode_toggle",
}

// String returns the wire name of the command.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand maps a wire name to a Command. Unknown names report false.
func ParseCommand(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for cmd, n := range commandNames {
		if n == name {
			return cmd, true
		}
	}
	return 0, false
}

// Commands lists the whole vocabulary in declaration order.
func Commands() []Command {
	return []Command{
		CommandTogglePlay,
		CommandReset,
		CommandSpeedUp,
		CommandSpeedDown,
		CommandFontUp,
		CommandFontDown,
		CommandModeToggle,
	}
}

// Transition applies cmd to s. Transport commands move the playback state
// machine; adjustment commands change Settings and are re-sanitized.
func Transition(s AppState, cmd Command) AppState {
	next := s.Clone()
	settings := next.Settings

	switch cmd {
	case CommandTogglePlay:
		next.PlaybackStatus = next.PlaybackStatus.toggled()
		return next
	case CommandReset:
		next.PlaybackStatus = Stopped
		next.Script.CursorPx = 0
		return next
	case CommandSpeedUp:
		settings.SpeedPxPerSec += SpeedIncrement
	case CommandSpeedDown:
		settings.SpeedPxPerSec -= SpeedIncrement
	case CommandFontUp:
		settings.FontSizePx += FontIncrement
	case CommandFontDown:
		settings.FontSizePx -= FontIncrement
	case CommandModeToggle:
		settings.Mode = settings.Mode.Toggle()
	default:
		return next
	}

	next.Settings = SanitizeSettings(settings, s.Settings)
	return next
}

// toggled implements play/pause: stopped and paused start playing, playing pauses.
func (p PlaybackStatus) toggled() PlaybackStatus {
	switch p {
	case Playing:
		return Paused
	case Paused, Stopped:
		return Playing
	default:
		return Playing
	}
}

// affectsScript reports whether cmd changes the script record.
func (c Command) affectsScript() bool {
	return c == CommandReset
}
