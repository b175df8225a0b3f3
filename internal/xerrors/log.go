package xerrors

import (
	"context"
	"log/slog"

	"github.com/garrettladley/arcslider/internal/xslog"
)

// Log records err on the context logger, at warn for caller mistakes and
// error for everything else.
func Log(ctx context.Context, err error) {
	logger := xslog.FromContext(ctx)

	e := As(err)
	if e == nil {
		logger.ErrorContext(ctx, "unexpected error", xslog.ErrorGroup(err))
		return
	}

	attrs := []any{
		slog.String("kind", e.Kind.String()),
		slog.String("message", e.Message),
	}
	if e.Cause != nil {
		attrs = append(attrs, xslog.Error(e.Cause))
	}
	if e.Validation != nil {
		attrs = append(attrs, slog.Any("fields", e.Validation.Fields))
	}

	switch e.Kind {
	case KindValidation, KindFormat, KindNotFound:
		logger.WarnContext(ctx, "request failed", attrs...)
	default:
		logger.ErrorContext(ctx, "request failed", attrs...)
	}
}
