package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"teleprompter/layout"
	"teleprompter/log"
	"time"

	"github.com/spf13/viper"
)

const (
	ConfigFileName = "config.json"
	envPrefix      = "TELEPROMPTER"
	homeEnv        = "TELEPROMPTER_HOME"
)

const (
	defaultSaveDebounceMs   = 80
	defaultSampleDebounceMs = 100
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(homeEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".teleprompter"), nil
}

// Config represents the application configuration
type Config struct {
	// StateFile is where the overlay state is persisted. Relative paths are
	// resolved against the config directory.
	StateFile string `json:"state_file" mapstructure:"state_file"`
	// SaveDebounceMs is the quiet period before a state change is written.
	SaveDebounceMs int `json:"save_debounce_ms" mapstructure:"save_debounce_ms"`
	// SampleDebounceMs is the quiet period before interactive resize/move
	// results are handed to the writer.
	SampleDebounceMs int `json:"sample_debounce_ms" mapstructure:"sample_debounce_ms"`
	// Displays is the virtual monitor list used by surfaces without a
	// monitor API. Empty means a single 1920x1080 display.
	Displays []layout.Display `json:"displays" mapstructure:"displays"`
	// Hotkeys maps accelerators such as "CommandOrControl+Alt+Space" to
	// command names. Entries override the defaults.
	Hotkeys map[string]string `json:"hotkeys" mapstructure:"hotkeys"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		StateFile:        StateFileName,
		SaveDebounceMs:   defaultSaveDebounceMs,
		SampleDebounceMs: defaultSampleDebounceMs,
		Displays:         []layout.Display{},
		Hotkeys:          map[string]string{},
	}
}

// StatePath returns the absolute path of the state file.
func (c *Config) StatePath(configDir string) string {
	if c.StateFile == "" {
		return filepath.Join(configDir, StateFileName)
	}
	if filepath.IsAbs(c.StateFile) {
		return c.StateFile
	}
	return filepath.Join(configDir, c.StateFile)
}

// SaveDebounce returns the writer debounce. Negative values write immediately.
func (c *Config) SaveDebounce() time.Duration {
	return millis(c.SaveDebounceMs, defaultSaveDebounceMs)
}

// SampleDebounce returns the resize/move sampling debounce.
func (c *Config) SampleDebounce() time.Duration {
	return millis(c.SampleDebounceMs, defaultSampleDebounceMs)
}

func millis(ms, fallback int) time.Duration {
	if ms == 0 {
		ms = fallback
	}
	if ms < 0 {
		return -1
	}
	return time.Duration(ms) * time.Millisecond
}

// Screen returns the configured displays as a layout.Screen with the pointer
// on the first display.
func (c *Config) Screen() *layout.StaticScreen {
	screen := &layout.StaticScreen{List: append([]layout.Display(nil), c.Displays...)}
	if len(screen.List) > 0 {
		screen.Cursor = screen.List[0].Bounds.Center()
	} else {
		screen.Cursor = layout.FallbackWorkArea.Center()
	}
	return screen
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("state_file", defaults.StateFile)
	v.SetDefault("save_debounce_ms", defaults.SaveDebounceMs)
	v.SetDefault("sample_debounce_ms", defaults.SampleDebounceMs)
	v.SetDefault("displays", []any{})
	v.SetDefault("hotkeys", map[string]any{})

	v.SetConfigType("json")
	v.SetConfigFile(configPath)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// LoadConfig reads config.json from the config directory. A missing file is
// created with defaults; an unreadable one is backed up and replaced by
// defaults in memory.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}
	return LoadConfigFrom(filepath.Join(configDir, ConfigFileName))
}

// LoadConfigFrom reads the configuration at configPath.
func LoadConfigFrom(configPath string) *Config {
	v := newViper(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(configPath, defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.ErrorLog.Printf("failed to parse config file at %s: %v", configPath, err)
		backupCorrupt(configPath)
		return DefaultConfig()
	}

	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		log.ErrorLog.Printf("failed to decode config file at %s: %v", configPath, err)
		backupCorrupt(configPath)
		return DefaultConfig()
	}
	if config.Hotkeys == nil {
		config.Hotkeys = map[string]string{}
	}
	return config
}

// backupCorrupt copies an unusable file aside so defaults can take its place.
func backupCorrupt(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	backupPath := path + ".corrupt." + time.Now().Format("20060102-150405")
	if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
		log.InfoLog.Printf("Backed up corrupted file to: %s", backupPath)
	}
}

func saveConfig(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("state_file", config.StateFile)
	v.Set("save_debounce_ms", config.SaveDebounceMs)
	v.Set("sample_debounce_ms", config.SampleDebounceMs)
	v.Set("displays", config.Displays)
	v.Set("hotkeys", config.Hotkeys)

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// SaveConfig writes the configuration to config.json in the config directory.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return saveConfig(filepath.Join(configDir, ConfigFileName), config)
}
