// Package ring draws a circular slider on a braille canvas. Geometry comes
// from the slider package; this package only rasterises it.
package ring

import (
	"image/color"
	"strconv"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arcslider/internal/angle"
	"github.com/garrettladley/arcslider/internal/slider"
	"github.com/garrettladley/arcslider/internal/tui/theme"
	"github.com/garrettladley/arcslider/internal/xcolor"
)

const (
	trackThickness = 3
	// knobs smaller than this are hard to hit with a cell-sized pointer
	minKnob        = 4.0
	shadowShade    = 0.6
	disabledAmount = 0.6
)

// Fit normalises cfg and rescales it onto the ring canvas, so the same
// controller logic runs in dot coordinates.
func Fit(cfg slider.Config) (slider.Config, []slider.Issue) {
	cfg, issues := slider.Normalize(cfg)
	cfg.HandleSize = max(minKnob, cfg.HandleSize*Dots/cfg.Size)
	cfg.Size = Dots
	return cfg, issues
}

type Ring struct {
	Config     slider.Config // fitted with Fit
	Label      string
	Focused    bool
	Active     int // handle being dragged, slider.NoHandle when idle
	Background color.Color
	TextColor  color.Color
}

type Option func(*Ring)

func WithFocus(focused bool) Option {
	return func(r *Ring) { r.Focused = focused }
}

func WithActive(handle int) Option {
	return func(r *Ring) { r.Active = handle }
}

func WithBackground(c color.Color) Option {
	return func(r *Ring) { r.Background = c }
}

func New(cfg slider.Config, label string, opts ...Option) Ring {
	r := Ring{
		Config:     cfg,
		Label:      label,
		Active:     slider.NoHandle,
		Background: theme.ColorBgDark,
		TextColor:  theme.ColorWhite,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Render returns Rows lines of Cols cells each.
func (r Ring) Render() string {
	var (
		c      = r.Config
		l      = slider.NewLayout(c, angle.Point{})
		g      = newGrid()
		arc    = r.color(c.ArcColor, theme.ColorArc)
		values = c.HandleValues()
	)

	trackFrom, trackSweep := c.AngleType.CanonicalInterval(c.Angles.Start, slider.Span(c.Angles))

	if c.OuterShadow {
		shadow := c.ArcBackgroundColor
		if shadow == "" {
			shadow = c.ArcColor
		}
		g.paint(r.color(xcolor.Shade(shadow, shadowShade), theme.ColorDim), func(canvas *drawille.Canvas) {
			drawBand(canvas, l.Center, l.Radius, trackThickness+2, trackFrom, trackSweep)
		})
	}

	if c.ArcBackgroundColor != "" {
		g.paint(r.color(c.ArcBackgroundColor, theme.ColorTrack), func(canvas *drawille.Canvas) {
			drawBand(canvas, l.Center, l.Radius, trackThickness, trackFrom, trackSweep)
		})
	}

	g.paint(arc, func(canvas *drawille.Canvas) {
		for _, v := range values {
			from, sweep := c.AngleType.CanonicalInterval(c.Angles.Start, slider.ProgressSpan(v, c))
			drawBand(canvas, l.Center, l.Radius, trackThickness, from, sweep)
		}
	})

	for i, v := range values {
		knob := color.Color(theme.ColorKnob)
		switch {
		case c.Disabled:
			knob = theme.ColorDim
		case i == r.Active:
			knob = theme.ColorDragging
		}
		g.paint(knob, func(canvas *drawille.Canvas) {
			drawDisc(canvas, l.Knob(v, c), l.HandleSize)
		})
	}

	text := lipgloss.NewStyle().Foreground(r.TextColor).Bold(true)
	if c.Disabled {
		text = text.Foreground(theme.ColorDim)
	}
	label := text
	if r.Focused {
		label = label.Foreground(theme.ColorFocus).Underline(true)
	}

	mid := Rows / 2
	if r.Label != "" {
		g.write(mid-1, r.Label, label)
	}
	g.write(mid, formatValues(values, c.CoerceToInt), text)

	return g.String()
}

func (r Ring) color(hex string, fallback color.Color) color.Color {
	if r.Config.Disabled {
		return xcolor.Dim(hex, r.Background, disabledAmount)
	}
	return xcolor.OrDefault(hex, fallback)
}

func formatValues(values []float64, coerced bool) string {
	prec := 1
	if coerced {
		prec = 0
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', prec, 64)
	}
	return strings.Join(parts, " · ")
}
