// Package harness drives a Bubble Tea model synchronously so surface tests
// can press keys and read frames without a terminal.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness owns the model under test. Every call feeds one message through
// Update and keeps the returned model.
type Harness struct {
	t     *testing.T
	model tea.Model
}

// New sizes model to width×height before returning it.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	t.Helper()
	h := &Harness{t: t, model: model}
	h.Resize(width, height)
	return h
}

// SendMsg passes msg to Update and returns the command it produced.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey types key as runes, e.g. " " or "]".
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey presses a named key such as an arrow or ctrl+v.
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendAltKey presses keyType with alt held; terminals report ctrl+alt+r as
// alt plus KeyCtrlR.
func (h *Harness) SendAltKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType, Alt: true})
}

// Exec runs cmd inline and delivers its message. Ticks and timers would
// block here, so only pass commands that return at once.
func (h *Harness) Exec(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	if msg := cmd(); msg != nil {
		return h.SendMsg(msg)
	}
	return nil
}

// Resize delivers a WindowSizeMsg.
func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// View renders the current frame.
func (h *Harness) View() string {
	return h.model.View()
}

// TerminalSize is one terminal geometry a surface test runs at.
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// CommonSizes covers each surface layout mode and the chrome cut-offs
// between them.
var CommonSizes = []TerminalSize{
	{Name: "full", Width: 160, Height: 48},
	{Name: "standard", Width: 100, Height: 30},
	{Name: "minimum", Width: 80, Height: 24},
	{Name: "narrow", Width: 60, Height: 30},
	{Name: "short", Width: 120, Height: 12},
	{Name: "wide", Width: 200, Height: 24},
}

// RunWithCommonSizes runs fn as a subtest for every entry of CommonSizes.
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range CommonSizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}
