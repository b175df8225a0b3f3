package ring

import (
	"math"

	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/arcslider/internal/angle"
)

// Dots is the side of the ring's square canvas in braille dots. A terminal
// cell holds 2x4 dots, so the ring covers Cols x Rows cells.
const (
	Dots = 52
	Cols = Dots / 2
	Rows = Dots / 4
)

// DotX and DotY map a terminal cell to the dot at its centre, in the
// coordinate space the ring is drawn in.
func DotX(col int) float64 { return float64(col)*2 + 0.5 }
func DotY(row int) float64 { return float64(row)*4 + 1.5 }

// drawBand draws a band thickness dots wide centred on radius, covering the
// canonical interval [from, from+sweep]. Each circle of the band uses the
// midpoint algorithm so no dots go missing between octants.
// see: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func drawBand(canvas *drawille.Canvas, center angle.Point, radius float64, thickness int, from, sweep float64) {
	if sweep <= 0 {
		return
	}
	outer := int(math.Round(radius)) + thickness/2
	for t := range thickness {
		if r := outer - t; r > 0 {
			drawCircle(canvas, int(center.X), int(center.Y), r, from, sweep)
		}
	}
}

func drawCircle(canvas *drawille.Canvas, cx, cy, r int, from, sweep float64) {
	x, y := r, 0
	d := 1 - r
	for x >= y {
		for _, p := range [8][2]int{
			{cx + x, cy + y}, {cx + y, cy + x},
			{cx - y, cy + x}, {cx - x, cy + y},
			{cx - x, cy - y}, {cx - y, cy - x},
			{cx + y, cy - x}, {cx + x, cy - y},
		} {
			if inSweep(cx, cy, p[0], p[1], from, sweep) {
				setDot(canvas, p[0], p[1])
			}
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// inSweep reports whether the dot (px, py) lies in the clockwise interval
// starting at from. Angles are canonical: 0° is +x and y grows downward.
func inSweep(cx, cy, px, py int, from, sweep float64) bool {
	if sweep >= 360 {
		return true
	}
	deg := angle.ToDegrees(math.Atan2(float64(py-cy), float64(px-cx)))
	return angle.Normalize(deg-from) <= sweep
}

// drawDisc fills every dot within r of c.
func drawDisc(canvas *drawille.Canvas, c angle.Point, r float64) {
	for y := int(math.Floor(c.Y - r)); y <= int(math.Ceil(c.Y+r)); y++ {
		for x := int(math.Floor(c.X - r)); x <= int(math.Ceil(c.X+r)); x++ {
			if math.Hypot(float64(x)-c.X, float64(y)-c.Y) <= r {
				setDot(canvas, x, y)
			}
		}
	}
}

func setDot(canvas *drawille.Canvas, x, y int) {
	if x >= 0 && x < Dots && y >= 0 && y < Dots {
		canvas.Set(x, y)
	}
}

// cells reads the canvas back as exactly Rows x Cols braille runes.
func cells(canvas *drawille.Canvas) [][]rune {
	rows := canvas.Rows(0, 0, Dots, Dots)
	out := make([][]rune, Rows)
	for i := range out {
		var line []rune
		if i < len(rows) {
			line = []rune(rows[i])
		}
		if len(line) > Cols {
			line = line[:Cols]
		}
		for len(line) < Cols {
			line = append(line, ' ')
		}
		out[i] = line
	}
	return out
}

const emptyBraille rune = '⠀'

func isBraille(r rune) bool {
	return r >= emptyBraille && r <= '⣿'
}

func hasDots(r rune) bool {
	return isBraille(r) && r != emptyBraille
}

// mergeBraille ORs the dot patterns of two braille runes.
func mergeBraille(a, b rune) rune {
	switch {
	case !hasDots(a):
		return b
	case !hasDots(b):
		return a
	}
	return emptyBraille + ((a - emptyBraille) | (b - emptyBraille))
}
