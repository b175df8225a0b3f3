// Package xcolor converts the CSS hex strings sliders are configured with
// into colours the SVG and terminal renderers can use.
package xcolor

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Parse accepts #rgb and #rrggbb.
func Parse(s string) (colorful.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return c, nil
}

// Valid reports whether s parses as a hex colour.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// OrDefault parses s, returning fallback when it is not a hex colour.
func OrDefault(s string, fallback color.Color) color.Color {
	c, err := Parse(s)
	if err != nil {
		return fallback
	}
	return c
}

// Shade darkens s by mixing it toward black in Lab space; amount is in
// [0, 1]. Non-hex input is returned unchanged so SVG named colours still
// pass through.
func Shade(s string, amount float64) string {
	c, err := Parse(s)
	if err != nil {
		return s
	}
	black := colorful.Color{}
	return c.BlendLab(black, max(0, min(1, amount))).Clamped().Hex()
}

// Dim mixes s toward bg; used for disabled rings in the terminal.
func Dim(s string, bg color.Color, amount float64) color.Color {
	c, err := Parse(s)
	if err != nil {
		return bg
	}
	b, ok := colorful.MakeColor(bg)
	if !ok {
		return c
	}
	return c.BlendRgb(b, max(0, min(1, amount))).Clamped()
}
