package ui

import (
	"teleprompter/state"

	"github.com/charmbracelet/lipgloss"
)

// Semantic Color Palette
// Playback states differ by icon as well as color.

// Playback colors
var (
	// StatusPlaying marks a scrolling prompter
	StatusPlaying = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StatusPaused marks a prompter halted mid-script
	StatusPaused = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// StatusStopped marks a prompter at rest
	StatusStopped = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	// StatusError indicates errors/failures
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSubtle is for overlays
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}
)

// Playback icons
const (
	IconPlaying = "▶"
	IconPaused  = "⏸"
	IconStopped = "■"
)

// PlaybackStyles contains pre-built styles for each playback status
var PlaybackStyles = struct {
	Playing lipgloss.Style
	Paused  lipgloss.Style
	Stopped lipgloss.Style
}{
	Playing: lipgloss.NewStyle().Foreground(StatusPlaying).Bold(true),
	Paused:  lipgloss.NewStyle().Foreground(StatusPaused).Bold(true),
	Stopped: lipgloss.NewStyle().Foreground(StatusStopped),
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
}

// PlaybackBadge returns the icon and label for status, styled.
func PlaybackBadge(status state.PlaybackStatus) string {
	switch status {
	case state.Playing:
		return PlaybackStyles.Playing.Render(IconPlaying + " playing")
	case state.Paused:
		return PlaybackStyles.Paused.Render(IconPaused + " paused")
	default:
		return PlaybackStyles.Stopped.Render(IconStopped + " stopped")
	}
}

// ScriptStyle renders script text. Lower opacity fades the text, since a
// terminal cell cannot be translucent.
func ScriptStyle(opacity float64) lipgloss.Style {
	switch {
	case opacity >= 0.8:
		return TextStyles.Primary
	case opacity >= 0.5:
		return TextStyles.Secondary
	default:
		return TextStyles.Muted
	}
}

// readingLineStyle marks the line the presenter should be reading.
var readingLineStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary)

// OverlayStyle creates a style for overlay/modal containers
func OverlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1).
		Background(BackgroundSubtle)
}

// CardStyle creates a style for card-like containers
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
}
