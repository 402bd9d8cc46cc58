package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	for _, cmd := range Commands() {
		parsed, ok := ParseCommand(cmd.String())
		assert.True(t, ok, cmd.String())
		assert.Equal(t, cmd, parsed)
	}

	_, ok := ParseCommand("self_destruct")
	assert.False(t, ok)
	_, ok = ParseCommand("")
	assert.False(t, ok)

	parsed, ok := ParseCommand("  Toggle_Play ")
	assert.True(t, ok)
	assert.Equal(t, CommandTogglePlay, parsed)
}

func TestPlaybackStateMachine(t *testing.T) {
	s := DefaultState()
	s.Script.CursorPx = 250

	s = Transition(s, CommandTogglePlay)
	assert.Equal(t, Playing, s.PlaybackStatus)

	s = Transition(s, CommandTogglePlay)
	assert.Equal(t, Paused, s.PlaybackStatus)

	s = Transition(s, CommandTogglePlay)
	assert.Equal(t, Playing, s.PlaybackStatus)
	assert.Equal(t, 250.0, s.Script.CursorPx, "toggling never moves the cursor")

	for _, from := range []PlaybackStatus{Stopped, Playing, Paused} {
		s.PlaybackStatus = from
		s.Script.CursorPx = 99
		reset := Transition(s, CommandReset)
		assert.Equal(t, Stopped, reset.PlaybackStatus, "reset from %s", from)
		assert.Zero(t, reset.Script.CursorPx, "reset from %s", from)
	}
}

func TestAdjustmentCommands(t *testing.T) {
	base := DefaultState()
	base.PlaybackStatus = Playing

	tests := []struct {
		name  string
		cmd   Command
		setup func(*Settings)
		check func(t *testing.T, got Settings)
	}{
		{
			name: "speed up",
			cmd:  CommandSpeedUp,
			check: func(t *testing.T, got Settings) {
				assert.Equal(t, 70, got.SpeedPxPerSec)
			},
		},
		{
			name:  "speed up capped",
			cmd:   CommandSpeedUp,
			setup: func(s *Settings) { s.SpeedPxPerSec = MaxSpeedPxPerSec },
			check: func(t *testing.T, got Settings) {
				assert.Equal(t, MaxSpeedPxPerSec, got.SpeedPxPerSec)
			},
		},
		{
			name:  "speed down floored",
			cmd:   CommandSpeedDown,
			setup: func(s *Settings) { s.SpeedPxPerSec = 0 },
			check: func(t *testing.T, got Settings) {
				assert.Equal(t, 0, got.SpeedPxPerSec)
			},
		},
		{
			name: "font up",
			cmd:  CommandFontUp,
			check: func(t *testing.T, got Settings) {
				assert.Equal(t, 44, got.FontSizePx)
			},
		},
		{
			name:  "font down floored",
			cmd:   CommandFontDown,
			setup: func(s *Settings) { s.FontSizePx = 17 },
			check: func(t *testing.T, got Settings) {
				assert.Equal(t, MinFontSizePx, got.FontSizePx)
			},
		},
		{
			name: "mode toggle",
			cmd:  CommandModeToggle,
			check: func(t *testing.T, got Settings) {
				assert.Equal(t, ModeFloating, got.Mode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base.Clone()
			if tt.setup != nil {
				tt.setup(&s.Settings)
			}
			got := Transition(s, tt.cmd)
			tt.check(t, got.Settings)
			assert.Equal(t, Playing, got.PlaybackStatus, "adjustments leave playback alone")
		})
	}
}

func TestUnknownCommandIsNoop(t *testing.T) {
	s := DefaultState()
	assert.Equal(t, s, Transition(s, Command(99)))
	assert.Equal(t, "unknown", Command(99).String())
}
