package xerrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/garrettladley/arcslider/internal/xslog"
)

func TestValidationMessageIsSorted(t *testing.T) {
	t.Parallel()

	err := Validation(map[string]string{
		"size":     "must be positive",
		"maxValue": "must be greater than minValue",
	}, WithMessage("invalid slider"))

	want := "invalid slider: maxValue must be greater than minValue; size must be positive"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAsAndIsThroughWrapping(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected EOF")
	err := fmt.Errorf("failed to load: %w", InvalidFormat(WithCause(cause)))

	if e := As(err); e == nil || e.Kind != KindFormat {
		t.Fatalf("As() = %v", e)
	}
	if !Is(err, KindFormat) || Is(err, KindValidation) {
		t.Error("Is() kind mismatch")
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	if As(cause) != nil {
		t.Error("As() on plain error should be nil")
	}
}

func TestLogLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := xslog.WithLogger(context.Background(), xslog.NewLogger(&buf, xslog.LevelDebug))

	Log(ctx, Validation(map[string]string{"size": "bad"}))
	Log(ctx, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"level":"WARN"`) || !strings.Contains(lines[0], `"size":"bad"`) {
		t.Errorf("validation log line = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"level":"ERROR"`) {
		t.Errorf("plain error log line = %s", lines[1])
	}
}
