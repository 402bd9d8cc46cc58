package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyPlay KeyName = iota
	KeyReset
	KeySpeedUp
	KeySpeedDown
	KeyFontUp
	KeyFontDown
	KeyMode
	KeyOpacityUp
	KeyOpacityDown
	KeyCapture

	KeyScrollUp
	KeyScrollDown

	KeyMoveUp
	KeyMoveDown
	KeyMoveLeft
	KeyMoveRight
	KeyGrowUp
	KeyGrowDown
	KeyGrowLeft
	KeyGrowRight

	KeyOpen
	KeySave
	KeySaveAs
	KeyPaste
	KeyDisplay

	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map of key string to KeyName.
var GlobalKeyStringsMap = map[string]KeyName{
	" ": KeyPlay,
	"r": KeyReset,
	"]": KeySpeedUp,
	"[": KeySpeedDown,
	"+": KeyFontUp,
	"=": KeyFontUp,
	"-": KeyFontDown,
	"m": KeyMode,
	">": KeyOpacityUp,
	"<": KeyOpacityDown,
	"c": KeyCapture,
	"k": KeyScrollUp,
	"j": KeyScrollDown,

	"up":          KeyMoveUp,
	"down":        KeyMoveDown,
	"left":        KeyMoveLeft,
	"right":       KeyMoveRight,
	"shift+up":    KeyGrowUp,
	"shift+down":  KeyGrowDown,
	"shift+left":  KeyGrowLeft,
	"shift+right": KeyGrowRight,

	"o":      KeyOpen,
	"s":      KeySave,
	"S":      KeySaveAs,
	"ctrl+v": KeyPaste,
	"n":      KeyDisplay,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyPlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	KeyReset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	KeySpeedUp: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "faster"),
	),
	KeySpeedDown: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "slower"),
	),
	KeyFontUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "larger"),
	),
	KeyFontDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "smaller"),
	),
	KeyMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mode"),
	),
	KeyOpacityUp: key.NewBinding(
		key.WithKeys(">"),
		key.WithHelp(">", "opaque"),
	),
	KeyOpacityDown: key.NewBinding(
		key.WithKeys("<"),
		key.WithHelp("<", "translucent"),
	),
	KeyCapture: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "capture"),
	),
	KeyScrollUp: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "back"),
	),
	KeyScrollDown: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "ahead"),
	),
	KeyMoveUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "move up"),
	),
	KeyMoveDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "move down"),
	),
	KeyMoveLeft: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "move left"),
	),
	KeyMoveRight: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "move right"),
	),
	KeyGrowUp: key.NewBinding(
		key.WithKeys("shift+up"),
		key.WithHelp("shift+↑", "shorter"),
	),
	KeyGrowDown: key.NewBinding(
		key.WithKeys("shift+down"),
		key.WithHelp("shift+↓", "taller"),
	),
	KeyGrowLeft: key.NewBinding(
		key.WithKeys("shift+left"),
		key.WithHelp("shift+←", "narrower"),
	),
	KeyGrowRight: key.NewBinding(
		key.WithKeys("shift+right"),
		key.WithHelp("shift+→", "wider"),
	),
	KeyOpen: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	KeySave: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	KeySaveAs: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "save as"),
	),
	KeyPaste: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "paste"),
	),
	KeyDisplay: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next display"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
