package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderFillsWidth(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(New("q quit", "Basic 20.0", 80).Render())
	if !strings.Contains(out, "q quit") || !strings.HasSuffix(strings.TrimRight(out, " "), "Basic 20.0") {
		t.Errorf("Render() = %q", out)
	}
	if w := ansi.StringWidth(out); w != 80 {
		t.Errorf("width = %d, want 80", w)
	}
}

func TestRenderNarrowKeepsBothSides(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(New("help", "status", 4).Render())
	if !strings.Contains(out, "help status") {
		t.Errorf("Render() = %q", out)
	}
}
