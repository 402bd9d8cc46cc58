package ui

import (
	"teleprompter/keys"
	"teleprompter/state"
	"teleprompter/testing/snapshot"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenu(t *testing.T) {
	t.Run("wide strip shows every group", func(t *testing.T) {
		m := NewMenu()
		m.SetSize(240, 1)
		out := m.String()

		snapshot.AssertContains(t, out, "space play")
		snapshot.AssertContains(t, out, "o open")
		snapshot.AssertContains(t, out, "←↑↓→ move")
		snapshot.AssertContains(t, out, "shift+←↑↓→ resize")
		snapshot.AssertContains(t, out, "q quit")
	})

	t.Run("play key follows playback", func(t *testing.T) {
		m := NewMenu()
		m.SetSize(240, 1)
		m.SetPlayback(state.Playing)
		snapshot.AssertContains(t, m.String(), "space pause")
		m.SetPlayback(state.Paused)
		snapshot.AssertContains(t, m.String(), "space play")
	})

	t.Run("narrow strip keeps transport and quit", func(t *testing.T) {
		m := NewMenu()
		m.SetSize(100, 1)
		out := m.String()

		snapshot.AssertContains(t, out, "m mode")
		snapshot.AssertContains(t, out, "q quit")
		snapshot.AssertNotContains(t, out, "o open")
		assert.LessOrEqual(t, snapshot.Width(out), 100)
	})

	t.Run("very narrow strip keeps transport only", func(t *testing.T) {
		m := NewMenu()
		m.SetSize(40, 1)
		out := m.String()

		snapshot.AssertContains(t, out, "space play")
		snapshot.AssertNotContains(t, out, "q quit")
		assert.Equal(t, 40, snapshot.Width(out))
	})

	t.Run("busy", func(t *testing.T) {
		m := NewMenu()
		m.SetSize(240, 1)
		m.SetState(StateBusy)
		out := m.String()

		snapshot.AssertContains(t, out, "q quit")
		snapshot.AssertNotContains(t, out, "space play")
	})

	t.Run("keydown", func(t *testing.T) {
		m := NewMenu()
		m.Keydown(keys.KeyReset)
		assert.Equal(t, keys.KeyReset, m.keyDown)
		m.ClearKeydown()
		assert.Equal(t, keys.KeyName(-1), m.keyDown)
	})
}

func TestDropGroup(t *testing.T) {
	groups := [][]keys.KeyName{{keys.KeyPlay}, {keys.KeyOpen}, {keys.KeyCapture}, {keys.KeyQuit}}

	out := dropGroup(groups)
	assert.Equal(t, [][]keys.KeyName{{keys.KeyPlay}, {keys.KeyOpen}, {keys.KeyQuit}}, out)
	assert.Equal(t, keys.KeyCapture, groups[2][0], "input is not modified")

	out = dropGroup(dropGroup(out))
	assert.Equal(t, [][]keys.KeyName{{keys.KeyPlay}}, out)
}
