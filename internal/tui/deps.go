package tui

import (
	"log/slog"

	"github.com/garrettladley/arcslider/internal/slider"
)

// Slider is one ring to show. Its OnChange callbacks are replaced by the
// model.
type Slider struct {
	Label  string
	Config slider.Config
}

type Deps struct {
	Logger  *slog.Logger
	Sliders []Slider
}
