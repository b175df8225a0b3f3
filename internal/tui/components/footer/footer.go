package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arcslider/internal/tui/theme"
)

var helpStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

// Footer is the bottom status line: key help on the left, the focused
// slider's state on the right.
type Footer struct {
	help    string
	status  string
	width   int
	padding int
}

func New(help, status string, width int) Footer {
	return Footer{
		help:    help,
		status:  status,
		width:   width,
		padding: 2,
	}
}

func (f Footer) Render() string {
	left := f.leftContent()

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(f.status)
	spacer := strings.Repeat(" ", max(f.width-leftWidth-rightWidth-(f.padding*2), 1))

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(left + spacer + f.status)
}
