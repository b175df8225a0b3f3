package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorArc      = lipgloss.Color("#669900") // default progress arc
	ColorTrack    = lipgloss.Color("#AAAAAA") // default unfilled track
	ColorKnob     = lipgloss.Color("#FFFFFF") // idle knob
	ColorDragging = lipgloss.Color("#00F19F") // knob under the pointer
	ColorFocus    = lipgloss.Color("#67AEE6") // focused ring label
)

var (
	ColorBgDark  = lipgloss.Color("#101518")
	ColorBgLight = lipgloss.Color("#283339")
)
