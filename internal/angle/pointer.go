package angle

import "math"

// Point is a screen position; y grows downward.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

// PointerAngle returns the user-frame angle of pointer seen from center.
// ok is false when the pointer sits exactly on the center, where the angle
// is undefined; callers keep whatever angle they had before.
func PointerAngle(pointer, center Point, t Type) (deg float64, ok bool) {
	d := pointer.Sub(center)
	if d == (Point{}) {
		return 0, false
	}
	canonical := Normalize(ToDegrees(math.Atan2(d.Y, d.X)))
	return t.FromCanonical(canonical), true
}

// Position returns the point at radius from center along the user-frame
// angle.
func Position(center Point, radius, user float64, t Type) Point {
	sin, cos := math.Sincos(ToRadians(t.ToCanonical(user)))
	return Point{
		X: center.X + radius*cos,
		Y: center.Y + radius*sin,
	}
}
