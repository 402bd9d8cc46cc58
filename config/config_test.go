package config

import (
	"os"
	"path/filepath"
	"strings"
	"teleprompter/layout"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corruptBackups(t *testing.T, path string) []string {
	t.Helper()
	matches, err := filepath.Glob(path + ".corrupt.*")
	require.NoError(t, err)
	return matches
}

func TestGetConfigDir(t *testing.T) {
	t.Run("home override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("TELEPROMPTER_HOME", dir)

		got, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("under user home", func(t *testing.T) {
		t.Setenv("TELEPROMPTER_HOME", "")

		got, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, ".teleprompter", filepath.Base(got))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file is created with defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)

		cfg := LoadConfigFrom(path)
		assert.Equal(t, DefaultConfig(), cfg)

		_, err := os.Stat(path)
		assert.NoError(t, err, "default config should be written")

		again := LoadConfigFrom(path)
		assert.Equal(t, cfg.StateFile, again.StateFile)
		assert.Equal(t, cfg.SaveDebounceMs, again.SaveDebounceMs)
		assert.Equal(t, cfg.SampleDebounceMs, again.SampleDebounceMs)
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte(`{"save_debounce_ms": 200}`), 0644))

		cfg := LoadConfigFrom(path)
		assert.Equal(t, 200, cfg.SaveDebounceMs)
		assert.Equal(t, defaultSampleDebounceMs, cfg.SampleDebounceMs)
		assert.Equal(t, StateFileName, cfg.StateFile)
		assert.NotNil(t, cfg.Hotkeys)
	})

	t.Run("displays and hotkeys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		doc := `{
  "displays": [
    {"id": 1, "bounds": {"x": 0, "y": 0, "width": 2560, "height": 1440},
     "work_area": {"x": 0, "y": 25, "width": 2560, "height": 1415}}
  ],
  "hotkeys": {"Alt+P": "toggle_play"}
}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		cfg := LoadConfigFrom(path)
		require.Len(t, cfg.Displays, 1)
		assert.Equal(t, 1, cfg.Displays[0].ID)
		assert.Equal(t, layout.Rect{X: 0, Y: 25, Width: 2560, Height: 1415}, cfg.Displays[0].WorkArea)
		require.Len(t, cfg.Hotkeys, 1)
		for accel, cmd := range cfg.Hotkeys {
			assert.Equal(t, "alt+p", strings.ToLower(accel))
			assert.Equal(t, "toggle_play", cmd)
		}
	})

	t.Run("corrupt file is backed up", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte(`{"save_debounce_ms": `), 0644))

		cfg := LoadConfigFrom(path)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Len(t, corruptBackups(t, path), 1)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte(`{"save_debounce_ms": 200}`), 0644))
		t.Setenv("TELEPROMPTER_SAVE_DEBOUNCE_MS", "500")

		cfg := LoadConfigFrom(path)
		assert.Equal(t, 500, cfg.SaveDebounceMs)
	})
}

func TestSaveConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TELEPROMPTER_HOME", filepath.Join(dir, "nested"))

	cfg := DefaultConfig()
	cfg.SampleDebounceMs = 250
	cfg.StateFile = "overlay.json"
	require.NoError(t, SaveConfig(cfg))

	loaded := LoadConfig()
	assert.Equal(t, 250, loaded.SampleDebounceMs)
	assert.Equal(t, "overlay.json", loaded.StateFile)
}

func TestConfigHelpers(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, filepath.Join("/cfg", StateFileName), cfg.StatePath("/cfg"))
	cfg.StateFile = "other.json"
	assert.Equal(t, filepath.Join("/cfg", "other.json"), cfg.StatePath("/cfg"))
	abs := filepath.Join(t.TempDir(), "abs.json")
	cfg.StateFile = abs
	assert.Equal(t, abs, cfg.StatePath("/cfg"))

	tests := []struct {
		name string
		ms   int
		want time.Duration
	}{
		{"zero uses default", 0, 80 * time.Millisecond},
		{"positive", 150, 150 * time.Millisecond},
		{"negative is immediate", -5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			c.SaveDebounceMs = tt.ms
			assert.Equal(t, tt.want, c.SaveDebounce())
		})
	}
	assert.Equal(t, 100*time.Millisecond, DefaultConfig().SampleDebounce())
}

func TestConfigScreen(t *testing.T) {
	t.Run("no displays uses the fallback area", func(t *testing.T) {
		screen := DefaultConfig().Screen()
		assert.Empty(t, screen.Displays())
		assert.Equal(t, layout.FallbackWorkArea.Center(), screen.CursorPoint())
	})

	t.Run("pointer starts on the first display", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Displays = []layout.Display{
			{ID: 2, Bounds: layout.Rect{X: 1920, Y: 0, Width: 1280, Height: 1024}},
		}
		screen := cfg.Screen()
		assert.Equal(t, layout.Point{X: 2560, Y: 512}, screen.CursorPoint())
	})
}
