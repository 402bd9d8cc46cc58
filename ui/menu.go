package ui

import (
	"strings"
	"teleprompter/keys"
	"teleprompter/state"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	// StateBusy is shown while a file dialog is open.
	StateBusy
)

// Menu is the transport strip under the prompter.
type Menu struct {
	height, width int
	state         MenuState
	playback      state.PlaybackStatus

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

// Groups in display order. The transport group is the action group. When the
// strip is too narrow the groups before quit are dropped from the right.
var menuGroups = [][]keys.KeyName{
	{keys.KeyPlay, keys.KeyReset, keys.KeySpeedDown, keys.KeySpeedUp, keys.KeyFontDown, keys.KeyFontUp, keys.KeyMode},
	{keys.KeyOpen, keys.KeySave, keys.KeySaveAs, keys.KeyPaste},
	{keys.KeyMoveUp, keys.KeyGrowRight, keys.KeyOpacityDown, keys.KeyOpacityUp, keys.KeyCapture, keys.KeyDisplay},
	{keys.KeyQuit},
}

var busyMenuGroups = [][]keys.KeyName{{keys.KeyQuit}}

// windowHints replace the per-arrow bindings, which would crowd the strip.
var windowHints = map[keys.KeyName][2]string{
	keys.KeyMoveUp:    {"←↑↓→", "move"},
	keys.KeyGrowRight: {"shift+←↑↓→", "resize"},
}

func NewMenu() *Menu {
	return &Menu{
		state:    StateDefault,
		playback: state.Stopped,
		keyDown:  -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state
func (m *Menu) SetState(state MenuState) {
	m.state = state
}

// SetPlayback relabels the play key for the current status.
func (m *Menu) SetPlayback(status state.PlaybackStatus) {
	m.playback = status
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) help(k keys.KeyName) (string, string) {
	if hint, ok := windowHints[k]; ok {
		return hint[0], hint[1]
	}
	binding := keys.GlobalkeyBindings[k]
	desc := binding.Help().Desc
	if k == keys.KeyPlay {
		if m.playback == state.Playing {
			desc = "pause"
		} else {
			desc = "play"
		}
	}
	return binding.Help().Key, desc
}

func (m *Menu) renderGroups(groups [][]keys.KeyName) string {
	var s strings.Builder
	for g, group := range groups {
		for i, k := range group {
			var (
				localActionStyle = actionGroupStyle
				localKeyStyle    = keyStyle
				localDescStyle   = descStyle
			)
			if m.keyDown == k {
				localActionStyle = localActionStyle.Underline(true)
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			key, desc := m.help(k)
			if g == 0 && m.state == StateDefault {
				s.WriteString(localActionStyle.Render(key))
				s.WriteString(" ")
				s.WriteString(localActionStyle.Render(desc))
			} else {
				s.WriteString(localKeyStyle.Render(key))
				s.WriteString(" ")
				s.WriteString(localDescStyle.Render(desc))
			}

			if i != len(group)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if g != len(groups)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}
	return s.String()
}

func (m *Menu) String() string {
	groups := menuGroups
	if m.state == StateBusy {
		groups = busyMenuGroups
	}

	text := m.renderGroups(groups)
	for len(groups) > 1 && m.width > 0 && ansi.PrintableRuneWidth(text) > m.width {
		groups = dropGroup(groups)
		text = m.renderGroups(groups)
	}
	// The transport group alone can still be too wide.
	if m.width > 0 && ansi.PrintableRuneWidth(text) > m.width {
		text = truncate.StringWithTail(text, uint(m.width), "…")
	}

	centeredMenuText := menuStyle.Render(text)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centeredMenuText)
}

// dropGroup removes the group before the last one, or the last one when only
// two remain.
func dropGroup(groups [][]keys.KeyName) [][]keys.KeyName {
	if len(groups) <= 2 {
		return groups[:1]
	}
	out := append([][]keys.KeyName{}, groups[:len(groups)-2]...)
	return append(out, groups[len(groups)-1])
}
