package xslog

import (
	"fmt"
	"log/slog"
)

const (
	groupDrag  = "drag"
	groupError = "error"
)

const (
	keyMessage = "message"
	keyType    = "type"
	keyOrigin  = "origin_angle"
)

// DragGroup describes one pointer session on a slider.
func DragGroup(session string, handle, pointerID int, originAngle float64) slog.Attr {
	return slog.Group(groupDrag,
		Session(session),
		Handle(handle),
		PointerID(pointerID),
		slog.Float64(keyOrigin, originAngle),
	)
}

func ErrorGroup(err error) slog.Attr {
	if err == nil {
		return slog.Group(groupError)
	}
	return slog.Group(groupError,
		slog.String(keyMessage, err.Error()),
		slog.String(keyType, fmt.Sprintf("%T", err)),
	)
}
