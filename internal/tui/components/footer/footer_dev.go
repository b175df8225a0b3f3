//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arcslider/internal/tui/theme"
	"github.com/garrettladley/arcslider/internal/version"
)

var devVersionStyle = lipgloss.NewStyle().Foreground(theme.ColorFocus)

func (f Footer) leftContent() string {
	return devVersionStyle.Render(version.Get()) + "  " + helpStyle.Render(f.help)
}
