package config

import "github.com/garrettladley/arcslider/internal/angle"

// Examples is the demo set shown by `tui --examples`.
func Examples() File {
	basic := Default()
	basic.Label = "Basic"

	bounded := Default()
	bounded.Label = "Min 15, max 30"
	bounded.MinValue, bounded.MaxValue = 15, 30

	green := Default()
	green.Label = "Arc color #00ff00"
	green.ArcColor = "#00ff00"

	pair := Default()
	pair.Label = "Two handles"
	pair.Handle2 = &HandleValue{Value: 60}

	full := Default()
	full.Label = "Full circle, ccw"
	full.StartAngle, full.EndAngle = 0, 0
	full.AngleType = angle.Type{Direction: angle.CounterClockwise, Axis: angle.AxisPlusX}
	full.CoerceToInt = true
	full.OuterShadow = true

	return File{Sliders: []Slider{basic, bounded, green, pair, full}}
}
