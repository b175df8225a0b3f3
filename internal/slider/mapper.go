package slider

import (
	"math"

	"github.com/garrettladley/arcslider/internal/angle"
)

const fullCircle = 360.0

// Span is the arc width in degrees, measured in the configured direction.
// A closed arc (start == end) spans the whole circle.
func Span(r AngleRange) float64 {
	s := angle.Span(r.Start, r.End)
	if s == 0 {
		return fullCircle
	}
	return s
}

// ValueToAngle returns the user-frame angle of v, clamped into the arc.
func ValueToAngle(v float64, c Config) float64 {
	v = c.Values.Clamp(v)
	frac := (v - c.Values.Min) / (c.Values.Max - c.Values.Min)
	return angle.Normalize(c.Angles.Start + frac*Span(c.Angles))
}

// ProgressSpan is how many degrees of arc lie between Start and v. It is
// computed from the value rather than its angle so the maximum of a
// full-circle slider fills the ring instead of collapsing to 0.
func ProgressSpan(v float64, c Config) float64 {
	v = c.Values.Clamp(v)
	return (v - c.Values.Min) / (c.Values.Max - c.Values.Min) * Span(c.Angles)
}

// AngleToValue returns the value at a user-frame angle. Angles in the gap
// between End and Start snap to the nearer endpoint; an exact tie goes to
// Min. The result is clamped, then rounded when CoerceToInt is set.
func AngleToValue(deg float64, c Config) float64 {
	span := Span(c.Angles)
	rel := angle.Span(c.Angles.Start, deg)

	var v float64
	switch {
	case rel <= span:
		v = c.Values.Min + rel/span*(c.Values.Max-c.Values.Min)
	case rel-span < fullCircle-rel:
		v = c.Values.Max
	default:
		v = c.Values.Min
	}

	return Coerce(c.Values.Clamp(v), c)
}

// Coerce rounds an already clamped v when c.CoerceToInt is set. Rounding
// never leaves the range: it falls back to ceil(Min) or floor(Max), and to
// the unrounded value when the range holds no integer.
func Coerce(v float64, c Config) float64 {
	if !c.CoerceToInt {
		return v
	}

	lo := math.Ceil(c.Values.Min)
	hi := math.Floor(c.Values.Max)
	if lo > hi {
		return v
	}
	return max(lo, min(hi, math.Round(v)))
}
