package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/arcslider/internal/slider"
	"github.com/garrettladley/arcslider/internal/tui/components/ring"
)

const (
	noRing = -1
	// terminals report a single mouse, so every event shares one pointer id
	mousePointer = 0
)

// pointerCapture remembers which ring owns the mouse between a press and
// its release, so drags keep working once the pointer leaves the ring.
type pointerCapture struct {
	owner int
}

func newPointerCapture() *pointerCapture {
	return &pointerCapture{owner: noRing}
}

func (p *pointerCapture) forRing(i int) slider.Capturer {
	return ringCapturer{p: p, ring: i}
}

func (p *pointerCapture) captured() bool { return p.owner != noRing }

type ringCapturer struct {
	p    *pointerCapture
	ring int
}

func (c ringCapturer) Capture(int) { c.p.owner = c.ring }

func (c ringCapturer) Release(int) {
	if c.p.owner == c.ring {
		c.p.owner = noRing
	}
}

// pointerEvent converts a terminal cell into the dot space rings are laid
// out in.
func pointerEvent(m tea.Mouse) slider.PointerEvent {
	return slider.PointerEvent{ID: mousePointer, X: ring.DotX(m.X), Y: ring.DotY(m.Y)}
}
