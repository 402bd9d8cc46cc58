package protocol

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScriptExtensions are the file types offered by pickers, default first.
var ScriptExtensions = []string{"txt", "md"}

// FilePicker asks the user where to read or write a script. An empty path
// with a nil error means the user canceled.
type FilePicker interface {
	OpenScript() (string, error)
	SaveScript(suggested string) (string, error)
}

// ReadScriptFile reads a script as-is. The bytes are not decoded or
// normalized, so writing the text back reproduces the file.
func ReadScriptFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return string(data), nil
}

// WriteScriptFile writes text to path as UTF-8.
func WriteScriptFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}

// withDefaultExtension appends .txt to paths chosen without an extension.
func withDefaultExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + "." + ScriptExtensions[0]
	}
	return path
}
