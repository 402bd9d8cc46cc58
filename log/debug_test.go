package log

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugDisabledByDefault(t *testing.T) {
	t.Setenv("TP_DEBUG", "")
	InitDebug()

	assert.False(t, DebugEnabled)
	require.NotNil(t, DebugLog, "disabled debug log must still be usable")
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	t.Setenv("TP_DEBUG", "1")
	InitDebug()
	defer func() {
		CloseDebug()
		DebugEnabled = false
	}()

	assert.True(t, DebugEnabled)
	assert.NotNil(t, DebugLog)
}

func TestTraceHelpersNeverPanic(t *testing.T) {
	DebugEnabled = false
	LayoutTrace("bounds %d", 1)
	InputTrace("command %s", "reset")
	PersistTrace("write %s", "state.json")
	RenderTrace("prompter", "lines %d", 3)
	Debug("x %s", "y")

	DebugEnabled = true
	DebugLog = nil
	LayoutTrace("bounds %d", 1)
	InputTrace("command %s", "reset")
	PersistTrace("write %s", "state.json")
	RenderTrace("prompter", "lines %d", 3)
	Debug("x %s", "y")
	DebugEnabled = false
}

func TestFrameProfiler(t *testing.T) {
	profiler.Reset()

	t.Run("noop when disabled", func(t *testing.T) {
		DebugEnabled = false
		profiler.StartRender("prompter")()
		profiler.RecordFrame(time.Millisecond)
		assert.Empty(t, profiler.views)
		assert.Zero(t, profiler.frameCount)
	})

	t.Run("records when enabled", func(t *testing.T) {
		DebugEnabled = true
		defer func() { DebugEnabled = false }()
		profiler.Reset()

		for i := 0; i < 3; i++ {
			profiler.StartRender("prompter")()
		}
		profiler.RecordFrame(10 * time.Millisecond)
		profiler.RecordFrame(20 * time.Millisecond)

		require.Contains(t, profiler.views, "prompter")
		assert.Equal(t, int64(3), profiler.views["prompter"].RenderCount)
		assert.Equal(t, int64(2), profiler.frameCount)
		assert.Equal(t, 30*time.Millisecond, profiler.totalTime)

		stats := profiler.GetStats()
		assert.True(t, strings.Contains(stats, "Frame Profile"))
		assert.True(t, strings.Contains(stats, "prompter"))
	})

	t.Run("rolling window", func(t *testing.T) {
		DebugEnabled = true
		defer func() { DebugEnabled = false }()
		profiler.Reset()

		for i := 0; i < 150; i++ {
			profiler.RecordFrame(time.Millisecond)
		}
		assert.Len(t, profiler.frameTimings, frameWindow)
	})
}

func TestEvery(t *testing.T) {
	e := NewEvery(20 * time.Millisecond)
	assert.True(t, e.ShouldLog())
	assert.False(t, e.ShouldLog())
	time.Sleep(30 * time.Millisecond)
	assert.True(t, e.ShouldLog())
}
