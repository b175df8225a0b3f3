package slider

import (
	"fmt"
	"math"

	"github.com/garrettladley/arcslider/internal/angle"
)

const (
	DefaultSize     = 200.0
	DefaultArcColor = "#690"

	minHandleSize    = 4.0
	handleSizeFactor = 0.04
)

type AngleRange struct {
	Start float64
	End   float64
}

// FullCircle reports whether the arc closes on itself.
func (r AngleRange) FullCircle() bool {
	return angle.Normalize(r.Start) == angle.Normalize(r.End)
}

type ValueRange struct {
	Min float64
	Max float64
}

func (r ValueRange) Clamp(v float64) float64 {
	return max(r.Min, min(r.Max, v))
}

// Handle is one draggable marker. OnChange may be nil.
type Handle struct {
	Value    float64
	OnChange func(value float64)
}

// Config describes one slider. Run it through Normalize before use; the
// controller does so itself.
type Config struct {
	Size               float64
	Angles             AngleRange
	AngleType          angle.Type
	Values             ValueRange
	HandleSize         float64
	Handle1            Handle
	Handle2            *Handle
	Disabled           bool
	ArcColor           string
	ArcBackgroundColor string
	CoerceToInt        bool
	OuterShadow        bool
}

// HandleCount is 1 or 2.
func (c Config) HandleCount() int {
	if c.Handle2 != nil {
		return 2
	}
	return 1
}

// HandleValues returns the value of every handle, handle1 first.
func (c Config) HandleValues() []float64 {
	values := []float64{c.Handle1.Value}
	if c.Handle2 != nil {
		values = append(values, c.Handle2.Value)
	}
	return values
}

// Handle returns a pointer to handle i, or nil if it does not exist.
func (c *Config) Handle(i int) *Handle {
	switch i {
	case 0:
		return &c.Handle1
	case 1:
		return c.Handle2
	default:
		return nil
	}
}

// DefaultHandleSize scales the knob with the widget: 8 at the default size.
func DefaultHandleSize(size float64) float64 {
	return max(minHandleSize, size*handleSizeFactor)
}

// Issue records one correction Normalize applied.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string { return i.Field + ": " + i.Message }

// Normalize returns a copy of c that satisfies every invariant the engine
// relies on, plus the list of corrections made. The corrections are:
//
//   - non-finite Min becomes 0; Max that is non-finite or <= Min becomes Min+1,
//     or the next float above Min once Min+1 rounds back to Min
//   - Start and End are reduced into [0, 360); non-finite angles become 0
//   - Size <= 0 becomes DefaultSize; HandleSize <= 0 becomes DefaultHandleSize(Size)
//   - an invalid direction or axis falls back to angle.Default's
//   - handle values are clamped into [Min, Max]; non-finite values become Min
//   - an empty ArcColor becomes DefaultArcColor
//
// Handle2 is copied so the caller's struct is never written to.
func Normalize(c Config) (Config, []Issue) {
	var issues []Issue
	report := func(field, format string, args ...any) {
		issues = append(issues, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if !finite(c.Values.Min) {
		report("minValue", "%v is not finite, using 0", c.Values.Min)
		c.Values.Min = 0
	}
	if !finite(c.Values.Max) || c.Values.Max <= c.Values.Min {
		if c.Values.Min == math.MaxFloat64 {
			c.Values.Min = math.Nextafter(c.Values.Min, math.Inf(-1))
		}
		upper := above(c.Values.Min)
		report("maxValue", "%v must be greater than minValue %v, using %v", c.Values.Max, c.Values.Min, upper)
		c.Values.Max = upper
	}

	c.Angles.Start = normalizeAngle(c.Angles.Start, "startAngle", report)
	c.Angles.End = normalizeAngle(c.Angles.End, "endAngle", report)

	if !c.AngleType.Direction.Valid() {
		report("angleType.direction", "%q is not cw or ccw, using %s", c.AngleType.Direction, angle.Default.Direction)
		c.AngleType.Direction = angle.Default.Direction
	}
	if !c.AngleType.Axis.Valid() {
		report("angleType.axis", "%q is not one of +x -x +y -y, using %s", c.AngleType.Axis, angle.Default.Axis)
		c.AngleType.Axis = angle.Default.Axis
	}

	if !finite(c.Size) || c.Size <= 0 {
		report("size", "%v must be positive, using %v", c.Size, DefaultSize)
		c.Size = DefaultSize
	}
	if !finite(c.HandleSize) || c.HandleSize <= 0 {
		// zero is the "unset" value, not worth an issue
		if c.HandleSize != 0 {
			report("handleSize", "%v must be positive, using default", c.HandleSize)
		}
		c.HandleSize = DefaultHandleSize(c.Size)
	}

	c.Handle1.Value = normalizeValue(c.Handle1.Value, c.Values, "handle1.value", report)
	if c.Handle2 != nil {
		h2 := *c.Handle2
		h2.Value = normalizeValue(h2.Value, c.Values, "handle2.value", report)
		c.Handle2 = &h2
	}

	if c.ArcColor == "" {
		report("arcColor", "empty, using %s", DefaultArcColor)
		c.ArcColor = DefaultArcColor
	}

	return c, issues
}

// above is Min+1 when float64 can still tell the two apart.
func above(v float64) float64 {
	if v+1 > v {
		return v + 1
	}
	return math.Nextafter(v, math.Inf(1))
}

func normalizeAngle(deg float64, field string, report func(string, string, ...any)) float64 {
	if !finite(deg) {
		report(field, "%v is not finite, using 0", deg)
		return 0
	}
	n := angle.Normalize(deg)
	if n != deg {
		report(field, "%v reduced to %v", deg, n)
	}
	return n
}

func normalizeValue(v float64, r ValueRange, field string, report func(string, string, ...any)) float64 {
	if !finite(v) {
		report(field, "%v is not finite, using %v", v, r.Min)
		return r.Min
	}
	c := r.Clamp(v)
	if c != v {
		report(field, "%v outside [%v, %v], clamped to %v", v, r.Min, r.Max, c)
	}
	return c
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
