package slider

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/garrettladley/arcslider/internal/angle"
	"github.com/garrettladley/arcslider/internal/xslog"
)

type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "Dragging"
	default:
		return "Idle"
	}
}

// PointerEvent is a platform pointer event translated into the slider's
// coordinate space. ID distinguishes simultaneous pointers.
type PointerEvent struct {
	ID int
	X  float64
	Y  float64
}

func (e PointerEvent) Point() angle.Point { return angle.Point{X: e.X, Y: e.Y} }

// Capturer routes a pointer's later events to the slider even when the
// pointer leaves its bounds. Release is called exactly once per Capture.
type Capturer interface {
	Capture(pointerID int)
	Release(pointerID int)
}

type noopCapturer struct{}

func (noopCapturer) Capture(int) {}
func (noopCapturer) Release(int) {}

// DragState exists only while a pointer holds a handle.
type DragState struct {
	ActiveHandle int
	OriginAngle  float64
	PointerID    int
	Session      uuid.UUID
}

// Controller runs the Idle -> Dragging(handle) -> Idle pointer state machine
// for one slider. It is not safe for concurrent use; feed it from a single
// event loop.
type Controller struct {
	cfg      Config
	layout   Layout
	capturer Capturer
	logger   *slog.Logger

	drag    *DragState
	release func()
	// lastAngle is kept for pointer events that land exactly on the centre
	lastAngle float64
	emitted   [2]float64
}

type Option func(*Controller)

func WithCapturer(c Capturer) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.capturer = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(ctl *Controller) {
		if l != nil {
			ctl.logger = l
		}
	}
}

// WithOrigin places the slider's bounding box at p.
func WithOrigin(p angle.Point) Option {
	return func(ctl *Controller) {
		ctl.layout.Origin = p
	}
}

// NewController normalises cfg and returns an idle controller. Corrections
// made by Normalize are logged at warn level.
func NewController(cfg Config, opts ...Option) *Controller {
	ctl := &Controller{
		capturer: noopCapturer{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(ctl)
	}

	normalized, issues := Normalize(cfg)
	for _, issue := range issues {
		ctl.logger.Warn("slider config corrected", xslog.Field(issue.Field), slog.String("reason", issue.Message))
	}
	ctl.cfg = normalized
	ctl.layout = NewLayout(normalized, ctl.layout.Origin)
	ctl.emitted[0] = normalized.Handle1.Value
	if normalized.Handle2 != nil {
		ctl.emitted[1] = normalized.Handle2.Value
	}
	ctl.lastAngle = ValueToAngle(normalized.Handle1.Value, normalized)
	return ctl
}

// Config returns the normalised configuration with current handle values.
func (c *Controller) Config() Config {
	cfg := c.cfg
	if cfg.Handle2 != nil {
		h2 := *cfg.Handle2
		cfg.Handle2 = &h2
	}
	return cfg
}

func (c *Controller) Layout() Layout { return c.layout }

func (c *Controller) SetOrigin(p angle.Point) {
	c.layout = NewLayout(c.cfg, p)
}

func (c *Controller) Phase() Phase {
	if c.drag != nil {
		return PhaseDragging
	}
	return PhaseIdle
}

// State returns the active drag, if any.
func (c *Controller) State() (DragState, bool) {
	if c.drag == nil {
		return DragState{}, false
	}
	return *c.drag, true
}

// Values returns the current value of every handle.
func (c *Controller) Values() []float64 { return c.cfg.HandleValues() }

func (c *Controller) Disabled() bool { return c.cfg.Disabled }

// SetDisabled toggles the disabled flag. Disabling cancels an active drag.
func (c *Controller) SetDisabled(disabled bool) {
	c.cfg.Disabled = disabled
	if disabled {
		c.Cancel()
	}
}

// SetValue overwrites handle i from outside, like a controlled input being
// re-rendered with a new prop. The value is clamped and coerced; OnChange is
// not called.
func (c *Controller) SetValue(i int, v float64) {
	h := c.cfg.Handle(i)
	if h == nil {
		return
	}
	v = Coerce(c.cfg.Values.Clamp(v), c.cfg)
	h.Value = v
	c.emitted[i] = v
}

// Step moves handle i by delta, the keyboard counterpart of a drag. It
// reports whether OnChange fired.
func (c *Controller) Step(i int, delta float64) bool {
	if c.cfg.Disabled || c.cfg.Handle(i) == nil {
		return false
	}
	v := Coerce(c.cfg.Values.Clamp(c.cfg.Handle(i).Value+delta), c.cfg)
	return c.commit(i, v)
}

// PointerDown starts a drag when e lands on a handle's hit area. It is
// ignored while disabled or while another drag is active.
func (c *Controller) PointerDown(e PointerEvent) bool {
	if c.cfg.Disabled || c.drag != nil {
		return false
	}

	p := e.Point()
	angles := HandleAngles(c.cfg)
	hit := make([]bool, len(angles))
	var anyHit bool
	for i, a := range angles {
		knob := angle.Position(c.layout.Center, c.layout.Radius, a, c.cfg.AngleType)
		if p.Dist(knob) <= c.cfg.HandleSize {
			hit[i] = true
			anyHit = true
		}
	}
	if !anyHit {
		return false
	}

	pointerAngle, ok := angle.PointerAngle(p, c.layout.Center, c.cfg.AngleType)
	if !ok {
		pointerAngle = c.lastAngle
	}

	target := Resolve(pointerAngle, angles, NoHandle, c.cfg.Disabled)
	if target == NoHandle {
		return false
	}
	if !hit[target] {
		for i := range hit {
			if hit[i] {
				target = i
				break
			}
		}
	}

	c.lastAngle = pointerAngle
	c.drag = &DragState{
		ActiveHandle: target,
		OriginAngle:  pointerAngle,
		PointerID:    e.ID,
		Session:      uuid.New(),
	}
	c.capturer.Capture(e.ID)
	id := e.ID
	c.release = func() { c.capturer.Release(id) }

	c.logger.Debug("drag started",
		xslog.DragGroup(c.drag.Session.String(), target, e.ID, pointerAngle),
	)
	return true
}

// PointerMove drags the active handle. It reports whether OnChange fired,
// which happens only when the committed value changed.
func (c *Controller) PointerMove(e PointerEvent) bool {
	if c.drag == nil || e.ID != c.drag.PointerID {
		return false
	}

	a, ok := angle.PointerAngle(e.Point(), c.layout.Center, c.cfg.AngleType)
	if !ok {
		a = c.lastAngle
	}
	c.lastAngle = a

	i := Resolve(a, HandleAngles(c.cfg), c.drag.ActiveHandle, c.cfg.Disabled)
	if i == NoHandle {
		return false
	}
	return c.commit(i, AngleToValue(a, c.cfg))
}

// PointerUp ends the drag owned by e's pointer. The last committed value
// stays.
func (c *Controller) PointerUp(e PointerEvent) bool {
	if c.drag == nil || e.ID != c.drag.PointerID {
		return false
	}
	c.end("drag ended")
	return true
}

// Cancel aborts any active drag, releasing capture. Safe to call when idle.
func (c *Controller) Cancel() {
	if c.drag == nil {
		return
	}
	c.end("drag cancelled")
}

func (c *Controller) end(msg string) {
	drag := c.drag
	c.drag = nil
	if release := c.release; release != nil {
		c.release = nil
		release()
	}
	c.logger.Debug(msg,
		xslog.Session(drag.Session.String()),
		xslog.Handle(drag.ActiveHandle),
		xslog.Value(c.cfg.Handle(drag.ActiveHandle).Value),
	)
}

func (c *Controller) commit(i int, v float64) bool {
	h := c.cfg.Handle(i)
	h.Value = v
	if v == c.emitted[i] {
		return false
	}
	c.emitted[i] = v
	if h.OnChange != nil {
		h.OnChange(v)
	}
	return true
}
