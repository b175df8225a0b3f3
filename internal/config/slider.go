package config

import (
	"github.com/garrettladley/arcslider/internal/angle"
	"github.com/garrettladley/arcslider/internal/slider"
)

const DefaultArcBackgroundColor = "#aaa"

type HandleValue struct {
	Value float64 `json:"value" toml:"value"`
}

// Slider is the on-disk form of one ring. Keys follow the camelCase names
// the slider's properties have always had.
type Slider struct {
	Label              string       `json:"label,omitempty" toml:"label,omitempty"`
	Size               float64      `json:"size" toml:"size"`
	MinValue           float64      `json:"minValue" toml:"minValue"`
	MaxValue           float64      `json:"maxValue" toml:"maxValue"`
	StartAngle         float64      `json:"startAngle" toml:"startAngle"`
	EndAngle           float64      `json:"endAngle" toml:"endAngle"`
	AngleType          angle.Type   `json:"angleType" toml:"angleType"`
	HandleSize         float64      `json:"handleSize,omitempty" toml:"handleSize,omitempty"`
	Handle1            HandleValue  `json:"handle1" toml:"handle1"`
	Handle2            *HandleValue `json:"handle2,omitempty" toml:"handle2,omitempty"`
	Disabled           bool         `json:"disabled" toml:"disabled"`
	ArcColor           string       `json:"arcColor" toml:"arcColor"`
	ArcBackgroundColor string       `json:"arcBackgroundColor" toml:"arcBackgroundColor"`
	CoerceToInt        bool         `json:"coerceToInt" toml:"coerceToInt"`
	OuterShadow        bool         `json:"outerShadow" toml:"outerShadow"`
}

// Default is the slider used when no file exists, and the base every file
// entry is decoded over.
func Default() Slider {
	return Slider{
		Size:               slider.DefaultSize,
		MinValue:           0,
		MaxValue:           100,
		StartAngle:         40,
		EndAngle:           320,
		AngleType:          angle.Default,
		Handle1:            HandleValue{Value: 20},
		ArcColor:           slider.DefaultArcColor,
		ArcBackgroundColor: DefaultArcBackgroundColor,
	}
}

func (s Slider) ToConfig() slider.Config {
	c := slider.Config{
		Size:               s.Size,
		Angles:             slider.AngleRange{Start: s.StartAngle, End: s.EndAngle},
		AngleType:          s.AngleType,
		Values:             slider.ValueRange{Min: s.MinValue, Max: s.MaxValue},
		HandleSize:         s.HandleSize,
		Handle1:            slider.Handle{Value: s.Handle1.Value},
		Disabled:           s.Disabled,
		ArcColor:           s.ArcColor,
		ArcBackgroundColor: s.ArcBackgroundColor,
		CoerceToInt:        s.CoerceToInt,
		OuterShadow:        s.OuterShadow,
	}
	if s.Handle2 != nil {
		c.Handle2 = &slider.Handle{Value: s.Handle2.Value}
	}
	return c
}

// Validate reports every field Normalize would have to correct.
func (s Slider) Validate() map[string]string {
	_, issues := slider.Normalize(s.ToConfig())
	if len(issues) == 0 {
		return nil
	}
	fields := make(map[string]string, len(issues))
	for _, issue := range issues {
		fields[issue.Field] = issue.Message
	}
	return fields
}
