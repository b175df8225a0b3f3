package ring

import (
	"image/color"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"
)

const unstyled = -1

type cell struct {
	r     rune
	style int
}

// grid stacks painted layers cell by cell. Braille dots from every layer are
// kept; a cell takes the style of the last layer that put dots in it.
type grid struct {
	cells  [][]cell
	styles []lipgloss.Style
}

func newGrid() *grid {
	g := &grid{cells: make([][]cell, Rows)}
	for i := range g.cells {
		row := make([]cell, Cols)
		for j := range row {
			row[j] = cell{r: ' ', style: unstyled}
		}
		g.cells[i] = row
	}
	return g
}

func (g *grid) addStyle(s lipgloss.Style) int {
	g.styles = append(g.styles, s)
	return len(g.styles) - 1
}

// paint draws onto a fresh canvas and merges it in as a new layer.
func (g *grid) paint(c color.Color, draw func(*drawille.Canvas)) {
	canvas := drawille.NewCanvas()
	draw(&canvas)

	style := g.addStyle(lipgloss.NewStyle().Foreground(c))
	for i, row := range cells(&canvas) {
		for j, r := range row {
			if !hasDots(r) {
				continue
			}
			dst := &g.cells[i][j]
			dst.r = mergeBraille(dst.r, r)
			dst.style = style
		}
	}
}

// write centres text on row, replacing whatever was drawn beneath it. Text
// wider than the ring is cut.
func (g *grid) write(row int, text string, s lipgloss.Style) {
	if row < 0 || row >= Rows {
		return
	}
	runes := []rune(text)
	if len(runes) > Cols {
		runes = runes[:Cols]
	}
	style := g.addStyle(s)
	start := (Cols - len(runes)) / 2
	for i, r := range runes {
		g.cells[row][start+i] = cell{r: r, style: style}
	}
}

// String renders each row as runs of equally styled cells.
func (g *grid) String() string {
	lines := make([]string, len(g.cells))
	for i, row := range g.cells {
		var (
			b   strings.Builder
			run []rune
			cur = unstyled
		)
		flush := func() {
			if len(run) == 0 {
				return
			}
			if cur == unstyled {
				b.WriteString(string(run))
			} else {
				b.WriteString(g.styles[cur].Render(string(run)))
			}
			run = run[:0]
		}
		for _, c := range row {
			if c.style != cur {
				flush()
				cur = c.style
			}
			run = append(run, c.r)
		}
		flush()
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
