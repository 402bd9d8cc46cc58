package ui

import (
	"fmt"
	"path/filepath"
	"time"
)

// FormatRelativeTime formats a time as a human-readable relative string.
// Examples: "just now", "2m ago", "3h ago", "5d ago", "2mo ago", "1y ago"
func FormatRelativeTime(t time.Time) string {
	return formatRelative(t, time.Now())
}

func formatRelative(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}

// FormatScriptFile names the script's file, handling nil (never saved).
func FormatScriptFile(path *string) string {
	if path == nil {
		return "unsaved"
	}
	return filepath.Base(*path)
}
