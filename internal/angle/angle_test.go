package angle

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-9

var approx = cmpopts.EquateApprox(0, tolerance)

func allTypes() []Type {
	var types []Type
	for _, d := range []Direction{Clockwise, CounterClockwise} {
		for _, a := range []Axis{AxisPlusX, AxisMinusX, AxisPlusY, AxisMinusY} {
			types = append(types, Type{Direction: d, Axis: a})
		}
	}
	return types
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-360, 0},
		{720.5, 0.5},
		{-1e-18, 0},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); math.Abs(got-tt.want) > tolerance {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"same", 40, 40, 0},
		{"simple", 10, 50, 40},
		{"wraps past zero", 350, 10, 20},
		{"wraps reversed", 10, 350, 20},
		{"opposite", 0, 180, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Distance(tt.a, tt.b), approx); diff != "" {
				t.Errorf("Distance() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTypeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, typ := range allTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			t.Parallel()
			for deg := 0.0; deg < 360; deg += 7.5 {
				got := typ.FromCanonical(typ.ToCanonical(deg))
				if Distance(got, deg) > tolerance {
					t.Errorf("round trip of %v gave %v", deg, got)
				}
			}
		})
	}
}

func TestTypeAxisScreenDirection(t *testing.T) {
	t.Parallel()

	center := Point{X: 100, Y: 100}

	tests := []struct {
		typ  Type
		user float64
		want Point
	}{
		{Type{Clockwise, AxisPlusX}, 0, Point{110, 100}},
		{Type{Clockwise, AxisMinusY}, 0, Point{100, 110}},
		{Type{Clockwise, AxisPlusY}, 0, Point{100, 90}},
		{Type{Clockwise, AxisMinusX}, 0, Point{90, 100}},
		// a quarter turn clockwise from the bottom lands on the left
		{Type{Clockwise, AxisMinusY}, 90, Point{90, 100}},
		// a quarter turn counter-clockwise from the bottom lands on the right
		{Type{CounterClockwise, AxisMinusY}, 90, Point{110, 100}},
		// counter-clockwise from +x goes up on screen
		{Type{CounterClockwise, AxisPlusX}, 90, Point{100, 90}},
	}

	for _, tt := range tests {
		got := Position(center, 10, tt.user, tt.typ)
		if diff := cmp.Diff(tt.want, got, approx); diff != "" {
			t.Errorf("Position(%v, %v) mismatch (-want +got):\n%s", tt.typ, tt.user, diff)
		}
	}
}

func TestPointerAngleInvertsPosition(t *testing.T) {
	t.Parallel()

	center := Point{X: 50, Y: 80}
	for _, typ := range allTypes() {
		for deg := 0.0; deg < 360; deg += 15 {
			p := Position(center, 42, deg, typ)
			got, ok := PointerAngle(p, center, typ)
			if !ok {
				t.Fatalf("PointerAngle(%v) reported centre", p)
			}
			if Distance(got, deg) > 1e-6 {
				t.Errorf("%v: PointerAngle(Position(%v)) = %v", typ, deg, got)
			}
		}
	}
}

func TestPointerAngleAtCenter(t *testing.T) {
	t.Parallel()

	c := Point{X: 10, Y: 10}
	got, ok := PointerAngle(c, c, Default)
	if ok {
		t.Errorf("PointerAngle at centre = %v, want ok=false", got)
	}
	if math.IsNaN(got) {
		t.Error("PointerAngle at centre returned NaN")
	}
}

func TestCanonicalInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		typ       Type
		from      float64
		span      float64
		wantStart float64
	}{
		{"cw from -y", Type{Clockwise, AxisMinusY}, 40, 280, 130},
		{"ccw from +x", Type{CounterClockwise, AxisPlusX}, 0, 90, 270},
		{"ccw from -y", Type{CounterClockwise, AxisMinusY}, 40, 280, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, sweep := tt.typ.CanonicalInterval(tt.from, tt.span)
			if diff := cmp.Diff([]float64{tt.wantStart, tt.span}, []float64{start, sweep}, approx); diff != "" {
				t.Errorf("CanonicalInterval() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	if d, err := ParseDirection(" CCW "); err != nil || d != CounterClockwise {
		t.Errorf("ParseDirection(CCW) = %v, %v", d, err)
	}
	if _, err := ParseDirection("left"); err == nil {
		t.Error("ParseDirection(left) want error")
	}
	if a, err := ParseAxis("-Y"); err != nil || a != AxisMinusY {
		t.Errorf("ParseAxis(-Y) = %v, %v", a, err)
	}
	if _, err := ParseAxis("z"); err == nil {
		t.Error("ParseAxis(z) want error")
	}
}

func TestTypeUnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dir     string
		axis    string
		want    Type
		wantErr bool
	}{
		{name: "lower case", dir: "ccw", axis: "+x", want: Type{Direction: CounterClockwise, Axis: AxisPlusX}},
		{name: "upper case and space", dir: " CCW", axis: "-Y ", want: Type{Direction: CounterClockwise, Axis: AxisMinusY}},
		{name: "empty is default", want: Default},
		{name: "bad direction", dir: "left", axis: "+x", wantErr: true},
		{name: "bad axis", dir: "cw", axis: "z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got Type
			errDir := got.Direction.UnmarshalText([]byte(tt.dir))
			errAxis := got.Axis.UnmarshalText([]byte(tt.axis))
			if tt.wantErr {
				if errDir == nil && errAxis == nil {
					t.Errorf("UnmarshalText(%q, %q) want error", tt.dir, tt.axis)
				}
				return
			}
			if errDir != nil || errAxis != nil {
				t.Fatalf("UnmarshalText(%q, %q) error = %v, %v", tt.dir, tt.axis, errDir, errAxis)
			}
			if got != tt.want {
				t.Errorf("UnmarshalText() = %v, want %v", got, tt.want)
			}
		})
	}
}
