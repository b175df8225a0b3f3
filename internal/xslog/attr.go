package xslog

import (
	"log/slog"

	"github.com/garrettladley/arcslider/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Handle(index int) slog.Attr {
	const handleKey = "handle"
	// handles are numbered from 1 everywhere users see them
	return slog.Int(handleKey, index+1)
}

func Value(v float64) slog.Attr {
	const valueKey = "value"
	return slog.Float64(valueKey, v)
}

func PointerID(id int) slog.Attr {
	const pointerIDKey = "pointer_id"
	return slog.Int(pointerIDKey, id)
}

func Session(id string) slog.Attr {
	const sessionKey = "session"
	return slog.String(sessionKey, id)
}

func Field(name string) slog.Attr {
	const fieldKey = "field"
	return slog.String(fieldKey, name)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Slider(name string) slog.Attr {
	const sliderKey = "slider"
	return slog.String(sliderKey, name)
}
