package tui

import "github.com/garrettladley/arcslider/internal/slider"

const help = "tab focus · ←/→ handle 1 · shift+←/→ handle 2 · d disable · q quit"

type keyAction struct {
	handle int
	dir    float64
}

var stepKeys = map[string]keyAction{
	"left":        {handle: 0, dir: -1},
	"down":        {handle: 0, dir: -1},
	"right":       {handle: 0, dir: 1},
	"up":          {handle: 0, dir: 1},
	"shift+left":  {handle: 1, dir: -1},
	"shift+down":  {handle: 1, dir: -1},
	"shift+right": {handle: 1, dir: 1},
	"shift+up":    {handle: 1, dir: 1},
}

// stepSize is one hundredth of the range, or 1 for integer sliders.
func stepSize(c slider.Config) float64 {
	if c.CoerceToInt {
		return 1
	}
	return (c.Values.Max - c.Values.Min) / 100
}
