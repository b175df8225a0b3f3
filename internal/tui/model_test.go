package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/garrettladley/arcslider/internal/angle"
	"github.com/garrettladley/arcslider/internal/slider"
	"github.com/garrettladley/arcslider/internal/tui/components/ring"
	"github.com/garrettladley/arcslider/internal/xslog"
)

func demoSlider(label string) Slider {
	return Slider{
		Label: label,
		Config: slider.Config{
			Size:               200,
			Angles:             slider.AngleRange{Start: 40, End: 320},
			AngleType:          angle.Default,
			Values:             slider.ValueRange{Min: 0, Max: 100},
			Handle1:            slider.Handle{Value: 20},
			ArcColor:           "#690",
			ArcBackgroundColor: "#aaa",
		},
	}
}

func newModel(t *testing.T, sliders ...Slider) (*Model, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	m := New(Deps{Logger: xslog.NewLogger(&buf, xslog.LevelDebug), Sliders: sliders})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return &m, &buf
}

// cellAt returns the terminal cell holding the knob of ring i at value v.
func cellAt(m *Model, i int, v float64) (x, y int) {
	ctl := m.rings[i].ctl
	p := ctl.Layout().Knob(v, ctl.Config())
	return int(p.X / 2), int(p.Y / 4)
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestLayoutCentresRings(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, demoSlider("a"), demoSlider("b"))

	rowWidth := 2*ring.Cols + ringGap
	wantLeft := (120 - rowWidth) / 2
	if m.rings[0].col != wantLeft || m.rings[1].col != wantLeft+ring.Cols+ringGap {
		t.Errorf("cols = %d, %d", m.rings[0].col, m.rings[1].col)
	}
	if m.rings[0].row != m.rings[1].row {
		t.Errorf("rings on different rows: %d, %d", m.rings[0].row, m.rings[1].row)
	}
	origin := m.rings[1].ctl.Layout().Origin
	if origin != (angle.Point{X: float64(m.rings[1].col * 2), Y: float64(m.rings[1].row * 4)}) {
		t.Errorf("controller origin %+v does not match the ring cell", origin)
	}
}

func TestLayoutWrapsNarrowViewport(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, demoSlider("a"), demoSlider("b"))
	m.Update(tea.WindowSizeMsg{Width: ring.Cols + 2, Height: 40})

	if m.rings[0].col != m.rings[1].col || m.rings[1].row != m.rings[0].row+ring.Rows+rowGap {
		t.Errorf("rings not stacked: %+v, %+v", *m.rings[0], *m.rings[1])
	}
}

func TestMouseDrag(t *testing.T) {
	t.Parallel()

	b := demoSlider("b")
	// cells are coarse; rounding keeps the expected value exact
	b.Config.CoerceToInt = true
	m, logs := newModel(t, demoSlider("a"), b)

	x, y := cellAt(m, 1, 20)
	m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	if m.focus != 1 || m.rings[1].ctl.Phase() != slider.PhaseDragging {
		t.Fatalf("press on ring b: focus=%d phase=%v", m.focus, m.rings[1].ctl.Phase())
	}
	if m.pointer.owner != 1 {
		t.Errorf("pointer owner = %d, want 1", m.pointer.owner)
	}

	// a second press elsewhere is ignored while the drag holds the pointer
	ox, oy := cellAt(m, 0, 20)
	m.Update(tea.MouseClickMsg{X: ox, Y: oy, Button: tea.MouseLeft})
	if m.rings[0].ctl.Phase() != slider.PhaseIdle {
		t.Error("ring a started a drag while b held the pointer")
	}

	// the top row straight above the centre is value 50 for this arc
	center := m.rings[1].ctl.Layout().Center
	m.Update(tea.MouseMotionMsg{X: int(center.X / 2), Y: 0, Button: tea.MouseLeft})
	if diff := cmp.Diff([]float64{50}, m.rings[1].ctl.Values(), approx); diff != "" {
		t.Errorf("values after move mismatch (-want +got):\n%s", diff)
	}

	m.Update(tea.MouseReleaseMsg{X: int(center.X / 2), Y: 0, Button: tea.MouseLeft})
	if m.rings[1].ctl.Phase() != slider.PhaseIdle || m.pointer.captured() {
		t.Errorf("release left phase=%v owner=%d", m.rings[1].ctl.Phase(), m.pointer.owner)
	}
	if diff := cmp.Diff([]float64{20}, m.rings[0].ctl.Values()); diff != "" {
		t.Errorf("ring a changed (-want +got):\n%s", diff)
	}

	if !strings.Contains(logs.String(), `"msg":"value changed"`) {
		t.Errorf("value change not logged:\n%s", logs.String())
	}
}

func TestMouseIgnoresOtherButtonsAndMisses(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, demoSlider("a"))
	x, y := cellAt(m, 0, 20)

	m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseRight})
	m.Update(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	if m.rings[0].ctl.Phase() != slider.PhaseIdle || m.pointer.captured() {
		t.Error("right click or click outside started a drag")
	}

	// motion without a captured pointer goes nowhere
	m.Update(tea.MouseMotionMsg{X: x + 3, Y: y, Button: tea.MouseLeft})
	if diff := cmp.Diff([]float64{20}, m.rings[0].ctl.Values()); diff != "" {
		t.Errorf("values changed (-want +got):\n%s", diff)
	}
}

func TestBlurCancelsDrag(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, demoSlider("a"))
	x, y := cellAt(m, 0, 20)
	m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	m.Update(tea.BlurMsg{})

	if m.rings[0].ctl.Phase() != slider.PhaseIdle || m.pointer.captured() {
		t.Error("focus loss did not cancel the drag")
	}
}

func TestKeys(t *testing.T) {
	t.Parallel()

	two := demoSlider("b")
	two.Config.Handle2 = &slider.Handle{Value: 60}
	m, _ := newModel(t, demoSlider("a"), two)

	press := func(msg tea.KeyPressMsg) tea.Cmd {
		_, cmd := m.Update(msg)
		return cmd
	}

	press(tea.KeyPressMsg{Code: tea.KeyRight})
	press(tea.KeyPressMsg{Code: tea.KeyTab})
	press(tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift})
	press(tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift})

	if diff := cmp.Diff([]float64{21}, m.rings[0].ctl.Values(), approx); diff != "" {
		t.Errorf("ring a values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{20, 58}, m.rings[1].ctl.Values(), approx); diff != "" {
		t.Errorf("ring b values mismatch (-want +got):\n%s", diff)
	}

	press(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if !m.rings[1].ctl.Disabled() {
		t.Error("d did not disable the focused ring")
	}
	press(tea.KeyPressMsg{Code: tea.KeyUp})
	if diff := cmp.Diff([]float64{20, 58}, m.rings[1].ctl.Values(), approx); diff != "" {
		t.Errorf("disabled ring stepped (-want +got):\n%s", diff)
	}
	if got := ansi.Strip(m.status()); got != "b  h1=20  h2=58  disabled" {
		t.Errorf("status() = %q", got)
	}

	press(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.focus != 0 {
		t.Errorf("focus after shift+tab = %d, want 0", m.focus)
	}

	if cmd := press(tea.KeyPressMsg{Code: 'q', Text: "q"}); cmd == nil {
		t.Fatal("q returned no command")
	} else if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestViewShowsRingsAndStatus(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, demoSlider("volume"))
	view := m.View()
	if !view.AltScreen || view.MouseMode != tea.MouseModeCellMotion || !view.ReportFocus {
		t.Errorf("view modes = alt:%v mouse:%v focus:%v", view.AltScreen, view.MouseMode, view.ReportFocus)
	}

	out := ansi.Strip(m.screen())
	lines := strings.Split(out, "\n")
	if len(lines) != 40 {
		t.Errorf("screen has %d lines, want 40", len(lines))
	}
	for _, want := range []string{"volume", "20.0", "h1=20", "q quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestLogsCorrectedConfig(t *testing.T) {
	t.Parallel()

	bad := demoSlider("bad")
	bad.Config.Handle1.Value = 900
	_, logs := newModel(t, bad)

	out := logs.String()
	if !strings.Contains(out, `"field":"handle1.value"`) || !strings.Contains(out, `"slider":"bad"`) {
		t.Errorf("correction not logged:\n%s", out)
	}
}
