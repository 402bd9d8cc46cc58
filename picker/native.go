// Package picker shows the platform's native open and save dialogs for
// script files.
package picker

import (
	"errors"
	"fmt"
	"path/filepath"
	"teleprompter/protocol"

	"github.com/sqweek/dialog"
)

// Native implements protocol.FilePicker with native dialogs.
type Native struct{}

// New returns a native file picker.
func New() *Native {
	return &Native{}
}

// OpenScript asks for a script to open. Canceling returns an empty path.
func (n *Native) OpenScript() (string, error) {
	path, err := scriptDialog("Open Script").Load()
	return result(path, err)
}

// SaveScript asks where to save the script, starting at suggested when set.
func (n *Native) SaveScript(suggested string) (string, error) {
	b := scriptDialog("Save Script")
	if suggested != "" {
		b = b.SetStartDir(filepath.Dir(suggested)).SetStartFile(filepath.Base(suggested))
	} else {
		b = b.SetStartFile("script." + protocol.ScriptExtensions[0])
	}
	path, err := b.Save()
	return result(path, err)
}

func scriptDialog(title string) *dialog.FileBuilder {
	return dialog.File().
		Title(title).
		Filter("Scripts", protocol.ScriptExtensions...).
		Filter("All files", "*")
}

func result(path string, err error) (string, error) {
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("file dialog failed: %w", err)
	}
	return path, nil
}

var _ protocol.FilePicker = (*Native)(nil)
