package arcpath

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/garrettladley/arcslider/internal/angle"
	"github.com/garrettladley/arcslider/internal/slider"
	"github.com/garrettladley/arcslider/internal/xcolor"
)

const (
	knobFill        = "#ffffff"
	shadowShade     = 0.6
	shadowOpacity   = "0.35"
	disabledOpacity = "opacity:0.5"
)

// Render writes a standalone SVG document for c. c is normalised first, so
// callers may pass a raw configuration.
func Render(w io.Writer, c slider.Config) error {
	c, _ = slider.Normalize(c)
	l := slider.NewLayout(c, angle.Point{})

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	side := int(math.Ceil(c.Size))
	canvas.Start(side, side)

	if c.Disabled {
		canvas.Gstyle(disabledOpacity)
	}

	track := Track(l, c)
	if c.OuterShadow {
		shadowColor := c.ArcBackgroundColor
		if shadowColor == "" {
			shadowColor = c.ArcColor
		}
		canvas.Path(track,
			`fill="none"`,
			stroke(xcolor.Shade(shadowColor, shadowShade), l.HandleSize+2*l.Shadow),
			`stroke-opacity="`+shadowOpacity+`"`,
			`stroke-linecap="round"`,
		)
	}

	if c.ArcBackgroundColor != "" {
		canvas.Path(track, `fill="none"`, stroke(c.ArcBackgroundColor, l.HandleSize), `stroke-linecap="round"`)
	}

	values := c.HandleValues()
	// draw the larger progress first so the smaller one stays visible on top
	order := []int{0}
	if len(values) == 2 {
		order = []int{0, 1}
		if values[0] < values[1] {
			order = []int{1, 0}
		}
	}
	for _, i := range order {
		canvas.Path(Progress(l, c, values[i]), `fill="none"`, stroke(c.ArcColor, l.HandleSize), `stroke-linecap="round"`)
	}

	for _, v := range values {
		canvas.Path(Knob(l, c, v), `fill="`+knobFill+`"`, stroke(c.ArcColor, 2))
	}

	if c.Disabled {
		canvas.Gend()
	}
	canvas.End()

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func stroke(color string, width float64) string {
	return fmt.Sprintf(`stroke="%s" stroke-width="%s"`, html.EscapeString(color), num(width))
}
