package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/garrettladley/arcslider/internal/xerrors"
)

// Document is a slider file held in its JSON form so that dotted paths
// such as "handle1.value" or "sliders.1.arcColor" address it directly.
// Format remembers how it was stored so writes keep the original format.
type Document struct {
	Format Format
	data   []byte
}

// ReadDocument loads path. A missing file yields the default slider in the
// format implied by the extension.
func ReadDocument(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	raw, ok, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DocumentOf(format, File{Sliders: []Slider{Default()}})
	}

	data, err := toJSON(format, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return &Document{Format: format, data: data}, nil
}

func DocumentOf(format Format, f File) (*Document, error) {
	data, err := f.Encode(FormatJSON)
	if err != nil {
		return nil, err
	}
	return &Document{Format: format, data: data}, nil
}

func (d *Document) File() (File, error) {
	return decodeFile(d.data)
}

// Get looks up a dotted path. The second result is false when nothing is
// stored there, which includes fields left at their defaults.
func (d *Document) Get(path string) (gjson.Result, bool) {
	r := gjson.GetBytes(d.data, path)
	return r, r.Exists()
}

// Set stores value at path. value is parsed as a boolean or a number when
// it looks like one and kept as a string otherwise. The document must
// still decode afterwards.
func (d *Document) Set(path, value string) error {
	if strings.TrimSpace(path) == "" {
		return xerrors.Validation(map[string]string{"path": "must not be empty"})
	}

	data, err := sjson.SetBytes(d.data, path, parseValue(value))
	if err != nil {
		return xerrors.InvalidFormat(xerrors.WithMessage(fmt.Sprintf("cannot set %q", path)), xerrors.WithCause(err))
	}
	if _, err := decodeFile(data); err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	d.data = data
	return nil
}

// Delete removes path, letting the field fall back to its default.
func (d *Document) Delete(path string) error {
	data, err := sjson.DeleteBytes(d.data, path)
	if err != nil {
		return xerrors.InvalidFormat(xerrors.WithMessage(fmt.Sprintf("cannot delete %q", path)), xerrors.WithCause(err))
	}
	d.data = data
	return nil
}

// Bytes renders the document in format.
func (d *Document) Bytes(format Format) ([]byte, error) {
	return fromJSON(format, d.data)
}

func (d *Document) WriteFile(path string) error {
	b, err := d.Bytes(d.Format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func parseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}
