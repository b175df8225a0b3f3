// Package arcpath turns slider geometry into SVG path data.
//
// Paths use the two-point arc form "M x0 y0 A r r 0 large sweep x1 y1" in
// screen coordinates. The sweep flag is 1 for clockwise arcs, which is the
// positive-angle direction when y grows downward.
package arcpath

import (
	"math"
	"strconv"
	"strings"

	"github.com/garrettladley/arcslider/internal/angle"
	"github.com/garrettladley/arcslider/internal/slider"
)

const halfCircle = 180.0

// Path describes the arc from one user-frame angle to another, travelling
// in the direction of t. Equal angles give a valid zero-length path.
func Path(center angle.Point, radius, from, to float64, t angle.Type) string {
	return Arc(center, radius, from, angle.Span(from, to), t)
}

// Arc describes span degrees of arc starting at the user-frame angle from.
// A span of 360 or more is emitted as two half arcs, since a single SVG arc
// whose endpoints coincide draws nothing.
func Arc(center angle.Point, radius, from, span float64, t angle.Type) string {
	span = max(span, 0)
	start := angle.Position(center, radius, from, t)

	var b strings.Builder
	moveTo(&b, start)
	if span >= 2*halfCircle {
		arcTo(&b, radius, false, t, angle.Position(center, radius, from+halfCircle, t))
		arcTo(&b, radius, false, t, start)
		return b.String()
	}
	arcTo(&b, radius, span > halfCircle, t, angle.Position(center, radius, from+span, t))
	return b.String()
}

// Circle is a closed circle, used for knobs.
func Circle(center angle.Point, r float64) string {
	left := angle.Point{X: center.X - r, Y: center.Y}
	right := angle.Point{X: center.X + r, Y: center.Y}

	var b strings.Builder
	moveTo(&b, left)
	arcTo(&b, r, true, angle.Default, right)
	arcTo(&b, r, true, angle.Default, left)
	b.WriteString(" Z")
	return b.String()
}

// Track covers the whole configured arc.
func Track(l slider.Layout, c slider.Config) string {
	return Arc(l.Center, l.Radius, c.Angles.Start, slider.Span(c.Angles), c.AngleType)
}

// Progress runs from the start of the arc to the angle of value.
func Progress(l slider.Layout, c slider.Config, value float64) string {
	return Arc(l.Center, l.Radius, c.Angles.Start, slider.ProgressSpan(value, c), c.AngleType)
}

// Knob returns the path of the knob sitting at value.
func Knob(l slider.Layout, c slider.Config, value float64) string {
	return Circle(l.Knob(value, c), l.HandleSize)
}

func moveTo(b *strings.Builder, p angle.Point) {
	b.WriteString("M ")
	writePoint(b, p)
}

func arcTo(b *strings.Builder, r float64, large bool, t angle.Type, p angle.Point) {
	b.WriteString(" A ")
	b.WriteString(num(r))
	b.WriteByte(' ')
	b.WriteString(num(r))
	b.WriteString(" 0 ")
	b.WriteString(flag(large))
	b.WriteByte(' ')
	b.WriteString(flag(t.Direction != angle.CounterClockwise))
	b.WriteByte(' ')
	writePoint(b, p)
}

func writePoint(b *strings.Builder, p angle.Point) {
	b.WriteString(num(p.X))
	b.WriteByte(' ')
	b.WriteString(num(p.Y))
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// num prints v with at most three decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		// also folds -0
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
