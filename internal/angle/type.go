package angle

import (
	"fmt"
	"strings"
)

type Direction string

var _ fmt.Stringer = (*Direction)(nil)

const (
	Clockwise        Direction = "cw"
	CounterClockwise Direction = "ccw"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Clockwise:
		return Clockwise, nil
	case CounterClockwise:
		return CounterClockwise, nil
	default:
		return "", fmt.Errorf("invalid direction: %q (valid: cw, ccw)", s)
	}
}

// UnmarshalText accepts any case and surrounding space, so slider files can
// say "CCW". Empty text keeps the default direction.
func (d *Direction) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Default.Direction
		return nil
	}
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Direction) Valid() bool { return d == Clockwise || d == CounterClockwise }

func (d Direction) String() string { return string(d) }

// sign is +1 when the user frame turns the same way as the canonical frame.
func (d Direction) sign() float64 {
	if d == CounterClockwise {
		return -1
	}
	return 1
}

// Axis names the screen direction of the user frame's 0°, in mathematical
// orientation: +y points up, -y points down.
type Axis string

var _ fmt.Stringer = (*Axis)(nil)

const (
	AxisPlusX  Axis = "+x"
	AxisMinusX Axis = "-x"
	AxisPlusY  Axis = "+y"
	AxisMinusY Axis = "-y"
)

func ParseAxis(s string) (Axis, error) {
	switch Axis(strings.ToLower(strings.TrimSpace(s))) {
	case AxisPlusX:
		return AxisPlusX, nil
	case AxisMinusX:
		return AxisMinusX, nil
	case AxisPlusY:
		return AxisPlusY, nil
	case AxisMinusY:
		return AxisMinusY, nil
	default:
		return "", fmt.Errorf("invalid axis: %q (valid: +x, -x, +y, -y)", s)
	}
}

func (a *Axis) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Default.Axis
		return nil
	}
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Axis) Valid() bool {
	switch a {
	case AxisPlusX, AxisMinusX, AxisPlusY, AxisMinusY:
		return true
	}
	return false
}

func (a Axis) String() string { return string(a) }

// offset is the canonical angle the axis points at.
func (a Axis) offset() float64 {
	switch a {
	case AxisMinusY:
		return 90
	case AxisMinusX:
		return 180
	case AxisPlusY:
		return 270
	default:
		return 0
	}
}

// Type is the user-facing angle convention. It is a rotation by the axis
// offset composed with an optional reflection for counter-clockwise
// direction; every conversion goes through ToCanonical / FromCanonical.
type Type struct {
	Direction Direction `json:"direction" toml:"direction"`
	Axis      Axis      `json:"axis" toml:"axis"`
}

// Default is the convention used when none is configured: 0° at the bottom,
// growing clockwise.
var Default = Type{Direction: Clockwise, Axis: AxisMinusY}

func (t Type) Valid() bool { return t.Direction.Valid() && t.Axis.Valid() }

func (t Type) String() string {
	return fmt.Sprintf("%s from %s", t.Direction, t.Axis)
}

// ToCanonical maps a user-frame angle into the canonical frame.
func (t Type) ToCanonical(user float64) float64 {
	return Normalize(t.Axis.offset() + t.Direction.sign()*user)
}

// FromCanonical maps a canonical angle into the user frame.
func (t Type) FromCanonical(canonical float64) float64 {
	return Normalize(t.Direction.sign() * (canonical - t.Axis.offset()))
}

// CanonicalInterval returns the clockwise canonical interval covered by the
// user-frame arc starting at from and spanning span degrees.
func (t Type) CanonicalInterval(from, span float64) (start, sweep float64) {
	if t.Direction == CounterClockwise {
		return t.ToCanonical(from + span), span
	}
	return t.ToCanonical(from), span
}
