package slider

import "github.com/garrettladley/arcslider/internal/angle"

// Layout is the resolved geometry of a slider inside its square bounding box.
type Layout struct {
	Origin     angle.Point // top-left corner of the bounding box
	Size       float64
	Center     angle.Point
	Radius     float64
	HandleSize float64
	// Shadow is the extra ring width drawn outside the track when the outer
	// shadow is enabled, 0 otherwise.
	Shadow float64
}

// NewLayout fits the track inside the box so the knobs and the optional
// shadow never overflow it. c must be normalised.
func NewLayout(c Config, origin angle.Point) Layout {
	l := Layout{
		Origin:     origin,
		Size:       c.Size,
		Center:     origin.Add(angle.Point{X: c.Size / 2, Y: c.Size / 2}),
		HandleSize: c.HandleSize,
	}
	if c.OuterShadow {
		l.Shadow = c.HandleSize / 2
	}
	l.Radius = max(c.Size/2-c.HandleSize-l.Shadow, 0)
	return l
}

// Knob returns the centre of the knob sitting at value v.
func (l Layout) Knob(v float64, c Config) angle.Point {
	return angle.Position(l.Center, l.Radius, ValueToAngle(v, c), c.AngleType)
}

// Contains reports whether p lies inside the bounding box.
func (l Layout) Contains(p angle.Point) bool {
	return p.X >= l.Origin.X && p.X <= l.Origin.X+l.Size &&
		p.Y >= l.Origin.Y && p.Y <= l.Origin.Y+l.Size
}
