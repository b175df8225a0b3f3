// Package angle holds the degree arithmetic and the axis/direction transform
// shared by the slider engine and its renderers.
//
// Two frames are used throughout:
//
//   - the canonical frame: 0° on the screen +x axis, increasing clockwise on
//     screen (screen y grows downward, so this is what atan2(dy, dx) returns).
//   - the user frame: 0° on the configured axis, increasing in the configured
//     direction. Start/end angles and handle angles live here.
package angle

import "math"

const full = 360.0

// Normalize reduces deg into [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, full)
	if d < 0 {
		d += full
	}
	// math.Mod(-1e-18, 360) + 360 rounds to 360
	if d >= full {
		d = 0
	}
	return d
}

// Distance returns the shortest arc between a and b, in [0, 180].
func Distance(a, b float64) float64 {
	d := Normalize(a - b)
	if d > full/2 {
		d = full - d
	}
	return d
}

// Span returns how far to lies from from when travelling in increasing
// angle, in [0, 360). Equal angles give 0.
func Span(from, to float64) float64 {
	return Normalize(to - from)
}

func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
