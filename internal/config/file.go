package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"

	"github.com/garrettladley/arcslider/internal/validator"
	"github.com/garrettladley/arcslider/internal/xerrors"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTOML:
		return FormatTOML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", xerrors.InvalidFormat(xerrors.WithMessage(fmt.Sprintf("unknown format %q (valid: toml, json)", s)))
	}
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

const slidersKey = "sliders"

// File is a loaded slider file: one slider at the top level, or several
// under a sliders list.
type File struct {
	Sliders []Slider
}

type sliderList struct {
	Sliders []Slider `json:"sliders" toml:"sliders"`
}

// Load reads path and decodes every slider over Default. A missing file
// yields a single default slider.
func Load(path string) (File, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return File{}, err
	}
	return doc.File()
}

// ValidateStrict fails with a validation error naming every field of every
// slider that would be corrected. Fields are prefixed with sliders.N. when
// the file holds a list.
func (f File) ValidateStrict() error {
	fields := map[string]string{}
	for i, s := range f.Sliders {
		err := validator.Validate(s)
		if err == nil {
			continue
		}
		for k, v := range err.Validation.Fields {
			if len(f.Sliders) > 1 {
				k = slidersKey + "." + strconv.Itoa(i) + "." + k
			}
			fields[k] = v
		}
	}
	if len(fields) > 0 {
		return xerrors.Validation(fields, xerrors.WithMessage("slider file needs corrections"))
	}
	return nil
}

// Encode writes f in the given format, flattening a single slider to the
// top level.
func (f File) Encode(format Format) ([]byte, error) {
	var v any = sliderList{Sliders: f.Sliders}
	if len(f.Sliders) == 1 {
		v = f.Sliders[0]
	}
	return marshal(format, v)
}

func marshal(format Format, v any) ([]byte, error) {
	switch format {
	case FormatTOML:
		b, err := toml.Marshal(v)
		if err != nil {
			return nil, xerrors.Internal(xerrors.WithMessage("failed to encode toml"), xerrors.WithCause(err))
		}
		return b, nil
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, xerrors.Internal(xerrors.WithMessage("failed to encode json"), xerrors.WithCause(err))
		}
		return append(b, '\n'), nil
	default:
		return nil, xerrors.InvalidFormat(xerrors.WithMessage(fmt.Sprintf("unknown format %q", format)))
	}
}

// toJSON converts a slider file of either format into JSON, the form path
// lookups and decoding work on.
func toJSON(format Format, data []byte) ([]byte, error) {
	switch format {
	case FormatJSON:
		if !gjson.ValidBytes(data) {
			return nil, xerrors.InvalidFormat(xerrors.WithMessage("invalid json"))
		}
		return data, nil
	case FormatTOML:
		doc := map[string]any{}
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, xerrors.InvalidFormat(xerrors.WithMessage("invalid toml"), xerrors.WithCause(err))
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, xerrors.Internal(xerrors.WithMessage("failed to convert toml"), xerrors.WithCause(err))
		}
		return b, nil
	default:
		return nil, xerrors.InvalidFormat(xerrors.WithMessage(fmt.Sprintf("unknown format %q", format)))
	}
}

// fromJSON converts the JSON form back into format for writing.
func fromJSON(format Format, data []byte) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return marshal(format, doc)
}

func decodeFile(data []byte) (File, error) {
	list := gjson.GetBytes(data, slidersKey)
	if !list.Exists() {
		s, err := decodeSlider(data)
		if err != nil {
			return File{}, err
		}
		return File{Sliders: []Slider{s}}, nil
	}

	if !list.IsArray() || len(list.Array()) == 0 {
		return File{}, xerrors.Validation(map[string]string{slidersKey: "must be a non-empty list"})
	}
	var f File
	for i, entry := range list.Array() {
		s, err := decodeSlider([]byte(entry.Raw))
		if err != nil {
			return File{}, fmt.Errorf("failed to decode slider %d: %w", i, err)
		}
		f.Sliders = append(f.Sliders, s)
	}
	return f, nil
}

func decodeSlider(raw []byte) (Slider, error) {
	s := Default()
	if err := json.Unmarshal(raw, &s); err != nil {
		return Slider{}, xerrors.InvalidFormat(xerrors.WithMessage("invalid slider"), xerrors.WithCause(err))
	}
	return s, nil
}

func readFile(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, true, nil
}
