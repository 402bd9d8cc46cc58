package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"teleprompter/log"
	"teleprompter/state"
)

const StateFileName = "state.json"

// StateFile reads and writes the persisted AppState document.
type StateFile struct {
	path string
}

// NewStateFile returns a StateFile for path.
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// DefaultStateFile returns the StateFile named by the loaded configuration.
func DefaultStateFile(cfg *Config) (*StateFile, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStateFile(cfg.StatePath(configDir)), nil
}

// Path returns the location of the state document.
func (f *StateFile) Path() string {
	return f.path
}

// Load reads the state from disk. If it cannot be done, the sanitized default
// state is returned. A document that cannot be parsed, or is not a JSON
// object, is backed up before falling back.
// This function acquires a shared lock to allow concurrent reads.
func (f *StateFile) Load() state.AppState {
	lock := NewFileLock(f.path)
	if err := lock.RLock(); err != nil {
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
		// Continue without lock - better to have stale data than fail
	} else {
		defer lock.Unlock()
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read state file: %v", err)
		}
		return state.DefaultState()
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		log.ErrorLog.Printf("failed to parse state file at %s: %v", f.path, err)
		backupCorrupt(f.path)
		return state.DefaultState()
	}
	if _, ok := doc.(map[string]any); !ok {
		log.ErrorLog.Printf("state file at %s is not a JSON object", f.path)
		backupCorrupt(f.path)
		return state.DefaultState()
	}

	log.PersistTrace("loaded %s (%d bytes)", f.path, len(data))
	return state.SanitizeState(doc)
}

// Save writes st to disk atomically.
// This function acquires an exclusive lock to prevent concurrent writes.
func (f *StateFile) Save(st state.AppState) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	data = append(data, '\n')

	lock := NewFileLock(f.path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to persist state: %w", err)
	}

	log.PersistTrace("wrote %s (%d bytes)", f.path, len(data))
	return nil
}

// Delete removes the state document. A missing file is not an error.
func (f *StateFile) Delete() error {
	if _, err := os.Stat(f.path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	lock := NewFileLock(f.path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	return nil
}
