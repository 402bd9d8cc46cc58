package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var errStyle = lipgloss.NewStyle().Foreground(StatusError)

var infoStyle = lipgloss.NewStyle().Foreground(StatusPlaying)

// ErrBox is a single row showing the latest error or notice.
type ErrBox struct {
	height, width int
	err           error
	info          string
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
	e.info = ""
}

// SetInfo shows a non-error notice such as a completed save.
func (e *ErrBox) SetInfo(msg string) {
	e.err = nil
	e.info = msg
}

func (e *ErrBox) Clear() {
	e.err = nil
	e.info = ""
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	var msg string
	style := infoStyle
	switch {
	case e.err != nil:
		msg = e.err.Error()
		style = errStyle
	case e.info != "":
		msg = e.info
	}
	msg = strings.ReplaceAll(msg, "\n", " ")
	if e.width > 0 {
		msg = truncate.StringWithTail(msg, uint(e.width), "...")
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Top, style.Render(msg))
}

// Err returns the error being shown, if any.
func (e *ErrBox) Err() error {
	return e.err
}
