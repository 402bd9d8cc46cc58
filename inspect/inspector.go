// Package inspect dumps the surface layout as JSON so tools can reason about
// what the terminal shows without screen access.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	enabled     bool
	enabledOnce sync.Once
	inspectFile string
)

// IsEnabled reports whether TP_INSPECT=1 was set when first asked.
func IsEnabled() bool {
	enabledOnce.Do(func() {
		enabled = os.Getenv("TP_INSPECT") == "1"
		if enabled {
			inspectFile = filepath.Join(os.TempDir(), "teleprompter-inspect.json")
		}
	})
	return enabled
}

// GetInspectFile is where WriteSnapshot writes, or "" when disabled.
func GetInspectFile() string {
	if !IsEnabled() {
		return ""
	}
	return inspectFile
}

// WriteSnapshot replaces the inspect file with snapshot. It does nothing
// while inspection is off.
func WriteSnapshot(snapshot *Snapshot) error {
	if !IsEnabled() {
		return nil
	}
	return WriteSnapshotToPath(snapshot, inspectFile)
}

// WriteSnapshotToPath writes snapshot as indented JSON.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode inspect snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write inspect snapshot: %w", err)
	}

	return nil
}
