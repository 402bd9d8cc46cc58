package keys

import (
	"fmt"
	"sort"
	"strings"
	"teleprompter/log"
	"teleprompter/state"
)

// DefaultHotkeys are the global accelerators and the commands they fire.
var DefaultHotkeys = map[string]state.Command{
	"CommandOrControl+Alt+Space": state.CommandTogglePlay,
	"CommandOrControl+Alt+R":     state.CommandReset,
	"CommandOrControl+Alt+Up":    state.CommandSpeedUp,
	"CommandOrControl+Alt+Down":  state.CommandSpeedDown,
	"CommandOrControl+Alt+=":     state.CommandFontUp,
	"CommandOrControl+Alt+-":     state.CommandFontDown,
	"CommandOrControl+Alt+M":     state.CommandModeToggle,
}

// localCommands maps surface keys straight to commands.
var localCommands = map[KeyName]state.Command{
	KeyPlay:      state.CommandTogglePlay,
	KeyReset:     state.CommandReset,
	KeySpeedUp:   state.CommandSpeedUp,
	KeySpeedDown: state.CommandSpeedDown,
	KeyFontUp:    state.CommandFontUp,
	KeyFontDown:  state.CommandFontDown,
	KeyMode:      state.CommandModeToggle,
}

// Command returns the command a surface key fires, if it fires one.
func (k KeyName) Command() (state.Command, bool) {
	cmd, ok := localCommands[k]
	return cmd, ok
}

// Hotkey is one accelerator binding.
type Hotkey struct {
	Accelerator string
	Command     state.Command
}

// HotkeyMap resolves key presses to commands. Accelerators are compared in a
// canonical form, so "CommandOrControl+Alt+R", "alt+ctrl+r" and the key
// string a terminal reports for that chord all match.
type HotkeyMap struct {
	bindings map[string]state.Command
}

// NewHotkeyMap builds the defaults with overrides applied. An override maps
// an accelerator to a command name; binding a command removes its default
// accelerator, and an empty name or "none" unbinds the accelerator. Invalid
// entries are logged and skipped.
func NewHotkeyMap(overrides map[string]string) *HotkeyMap {
	m := &HotkeyMap{bindings: make(map[string]state.Command)}
	defaults := make(map[string]bool, len(DefaultHotkeys))
	for accel, cmd := range DefaultHotkeys {
		if canon, err := Normalize(accel); err == nil {
			m.bindings[canon] = cmd
			defaults[canon] = true
		}
	}

	accels := make([]string, 0, len(overrides))
	for accel := range overrides {
		accels = append(accels, accel)
	}
	sort.Strings(accels)

	// overridden holds accelerators whose binding came from the config, so
	// pruning a command's defaults never drops an explicit choice.
	overridden := make(map[string]bool, len(overrides))
	for _, accel := range accels {
		canon, err := Normalize(accel)
		if err != nil {
			log.WarningLog.Printf("ignoring hotkey %q: %v", accel, err)
			continue
		}
		name := strings.TrimSpace(overrides[accel])
		if name == "" || strings.EqualFold(name, "none") {
			delete(m.bindings, canon)
			overridden[canon] = true
			continue
		}
		cmd, ok := state.ParseCommand(name)
		if !ok {
			log.WarningLog.Printf("ignoring hotkey %q: unknown command %q", accel, name)
			continue
		}
		for existing, c := range m.bindings {
			if c == cmd && defaults[existing] && !overridden[existing] {
				delete(m.bindings, existing)
			}
		}
		m.bindings[canon] = cmd
		overridden[canon] = true
	}
	return m
}

// Resolve returns the command bound to a key string or accelerator.
func (m *HotkeyMap) Resolve(keyString string) (state.Command, bool) {
	canon, err := Normalize(keyString)
	if err != nil {
		return 0, false
	}
	cmd, ok := m.bindings[canon]
	return cmd, ok
}

// Bindings lists the active bindings sorted by command, then accelerator.
func (m *HotkeyMap) Bindings() []Hotkey {
	out := make([]Hotkey, 0, len(m.bindings))
	for accel, cmd := range m.bindings {
		out = append(out, Hotkey{Accelerator: accel, Command: cmd})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Command != out[j].Command {
			return out[i].Command < out[j].Command
		}
		return out[i].Accelerator < out[j].Accelerator
	})
	return out
}

var modifierAliases = map[string]string{
	"commandorcontrol": "ctrl",
	"cmdorctrl":        "ctrl",
	"command":          "ctrl",
	"cmd":              "ctrl",
	"control":          "ctrl",
	"ctrl":             "ctrl",
	"super":            "ctrl",
	"meta":             "ctrl",
	"alt":              "alt",
	"option":           "alt",
	"shift":            "shift",
}

var keyAliases = map[string]string{
	" ":          "space",
	"spacebar":   "space",
	"plus":       "+",
	"minus":      "-",
	"equal":      "=",
	"escape":     "esc",
	"return":     "enter",
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
}

var modifierOrder = []string{"alt", "ctrl", "shift"}

// Normalize converts an accelerator or terminal key string into the canonical
// "alt+ctrl+shift+key" form, listing only the modifiers present.
func Normalize(accel string) (string, error) {
	if strings.TrimSpace(accel) == "" && accel != " " {
		return "", fmt.Errorf("empty accelerator")
	}

	parts := strings.Split(accel, "+")
	// A trailing "+" means the plus key itself, as in "Alt++".
	switch {
	case accel == "+":
		parts = []string{"+"}
	case strings.HasSuffix(accel, "++"):
		parts = append(parts[:len(parts)-2], "+")
	}

	mods := make(map[string]bool)
	keyPart := ""
	for i, part := range parts {
		last := i == len(parts)-1
		if part != " " {
			part = strings.ToLower(strings.TrimSpace(part))
		}
		if !last {
			mod, ok := modifierAliases[part]
			if !ok {
				return "", fmt.Errorf("unknown modifier %q", part)
			}
			mods[mod] = true
			continue
		}
		if _, isMod := modifierAliases[part]; isMod || part == "" {
			return "", fmt.Errorf("accelerator %q has no key", accel)
		}
		keyPart = part
	}

	if alias, ok := keyAliases[keyPart]; ok {
		keyPart = alias
	}
	// Terminals report ctrl+space as ctrl+@.
	if keyPart == "@" && mods["ctrl"] {
		keyPart = "space"
	}

	var b strings.Builder
	for _, mod := range modifierOrder {
		if mods[mod] {
			b.WriteString(mod)
			b.WriteByte('+')
		}
	}
	b.WriteString(keyPart)
	return b.String(), nil
}
