// Package snapshot inspects rendered surface output in tests: it strips
// terminal styling and measures what a user would see.
package snapshot

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

var (
	csiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
	oscRegex = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	s = csiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// Normalize strips styling, normalizes line endings and drops trailing
// whitespace from every line.
func Normalize(s string) string {
	s = strings.ReplaceAll(StripANSI(s), "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// AssertContains checks that the visible output contains substr
func AssertContains(t *testing.T, actual, substr string) {
	t.Helper()
	normalized := Normalize(actual)
	if !strings.Contains(normalized, substr) {
		t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that the visible output does NOT contain substr
func AssertNotContains(t *testing.T, actual, substr string) {
	t.Helper()
	normalized := Normalize(actual)
	if strings.Contains(normalized, substr) {
		t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// Lines returns the line count of the rendered output
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the widest line of the rendered output in terminal cells
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(StripANSI(s), "\n") {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}
