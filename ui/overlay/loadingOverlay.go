package overlay

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	waitTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	waitStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	waitBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 2)
)

// LoadingOverlay covers the prompter while a native file dialog owns the
// user's attention.
type LoadingOverlay struct {
	title  string
	status string
	// Ticked by the caller.
	spinner *spinner.Model
	width   int
}

func NewLoadingOverlay(title string, spinner *spinner.Model) *LoadingOverlay {
	return &LoadingOverlay{title: title, spinner: spinner}
}

// SetStatus sets the hint shown under the title.
func (l *LoadingOverlay) SetStatus(status string) {
	l.status = status
}

// SetWidth sets the box width excluding its border.
func (l *LoadingOverlay) SetWidth(width int) {
	l.width = width
}

func (l *LoadingOverlay) Render() string {
	head := waitTitleStyle.Render(l.title)
	if l.spinner != nil {
		head = l.spinner.View() + " " + head
	}
	body := head
	if l.status != "" {
		body += "\n\n" + waitStatusStyle.Render(l.status)
	}
	return waitBoxStyle.Width(l.width).Render(body)
}
