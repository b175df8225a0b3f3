package tui

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arcslider/internal/angle"
	"github.com/garrettladley/arcslider/internal/slider"
	"github.com/garrettladley/arcslider/internal/tui/components/footer"
	"github.com/garrettladley/arcslider/internal/tui/components/ring"
	"github.com/garrettladley/arcslider/internal/tui/theme"
	"github.com/garrettladley/arcslider/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

const (
	ringGap      = 4 // columns between rings
	rowGap       = 1 // lines between rows of rings
	footerHeight = 1
)

type ringState struct {
	label string
	ctl   *slider.Controller
	// top-left cell of the ring on screen
	col, row int
}

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	logger         *slog.Logger
	rings          []*ringState
	focus          int
	pointer        *pointerCapture
}

func New(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		theme:   theme.New(),
		logger:  logger,
		pointer: newPointerCapture(),
	}

	for i, s := range deps.Sliders {
		cfg, issues := ring.Fit(s.Config)
		for _, issue := range issues {
			logger.Warn("slider config corrected", xslog.Slider(s.Label), xslog.Field(issue.Field), slog.String("reason", issue.Message))
		}
		cfg.Handle1.OnChange = m.onChange(s.Label, 0)
		if cfg.Handle2 != nil {
			cfg.Handle2.OnChange = m.onChange(s.Label, 1)
		}

		ctl := slider.NewController(cfg,
			slider.WithCapturer(m.pointer.forRing(i)),
			slider.WithLogger(logger.With(xslog.Slider(s.Label))),
		)
		m.rings = append(m.rings, &ringState{label: s.Label, ctl: ctl})
	}

	return m
}

func (m *Model) onChange(label string, handle int) func(float64) {
	logger := m.logger
	return func(v float64) {
		logger.Debug("value changed", xslog.Slider(label), xslog.Handle(handle), xslog.Value(v))
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true
		m.layout()

	case tea.KeyPressMsg:
		return m, m.handleKey(msg.String())

	case tea.MouseClickMsg:
		m.pointerDown(msg.Mouse())

	case tea.MouseMotionMsg:
		if m.pointer.captured() {
			m.rings[m.pointer.owner].ctl.PointerMove(pointerEvent(msg.Mouse()))
		}

	case tea.MouseReleaseMsg:
		if m.pointer.captured() {
			m.rings[m.pointer.owner].ctl.PointerUp(pointerEvent(msg.Mouse()))
		}

	// the terminal lost focus: a release may never arrive
	case tea.BlurMsg:
		m.cancelDrags()
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c":
		m.cancelDrags()
		return tea.Quit
	case "esc":
		m.cancelDrags()
		return nil
	}

	if len(m.rings) == 0 {
		return nil
	}
	focused := m.rings[m.focus]

	switch key {
	case "tab":
		m.focus = (m.focus + 1) % len(m.rings)
	case "shift+tab":
		m.focus = (m.focus + len(m.rings) - 1) % len(m.rings)
	case "d":
		focused.ctl.SetDisabled(!focused.ctl.Disabled())
	default:
		if a, ok := stepKeys[key]; ok {
			focused.ctl.Step(a.handle, a.dir*stepSize(focused.ctl.Config()))
		}
	}
	return nil
}

func (m *Model) pointerDown(mouse tea.Mouse) {
	if mouse.Button != tea.MouseLeft || m.pointer.captured() {
		return
	}
	e := pointerEvent(mouse)
	for i, r := range m.rings {
		if !r.ctl.Layout().Contains(e.Point()) {
			continue
		}
		m.focus = i
		r.ctl.PointerDown(e)
		return
	}
}

func (m *Model) cancelDrags() {
	for _, r := range m.rings {
		r.ctl.Cancel()
	}
}

// layout flows the rings into centred rows and moves each controller's hit
// area to match.
func (m *Model) layout() {
	perRow := max(1, (m.viewportWidth+ringGap)/(ring.Cols+ringGap))
	rows := (len(m.rings) + perRow - 1) / perRow
	blockHeight := rows*ring.Rows + max(rows-1, 0)*rowGap
	top := max(0, (m.viewportHeight-footerHeight-blockHeight)/2)

	for i, r := range m.rings {
		line, idx := i/perRow, i%perRow
		inRow := min(perRow, len(m.rings)-line*perRow)
		rowWidth := inRow*ring.Cols + (inRow-1)*ringGap
		left := max(0, (m.viewportWidth-rowWidth)/2)

		r.col = left + idx*(ring.Cols+ringGap)
		r.row = top + line*(ring.Rows+rowGap)
		r.ctl.SetOrigin(angle.Point{X: float64(r.col * 2), Y: float64(r.row * 4)})
	}
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.ReportFocus = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	view.SetContent(m.screen())
	return view
}

func (m *Model) screen() string {
	body := make([]map[int]string, max(m.viewportHeight-footerHeight, 0))
	for i, r := range m.rings {
		for j, text := range strings.Split(m.renderRing(i, r), "\n") {
			y := r.row + j
			if y >= len(body) {
				break
			}
			if body[y] == nil {
				body[y] = map[int]string{}
			}
			body[y][r.col] = text
		}
	}

	out := make([]string, 0, len(body)+footerHeight)
	for _, segments := range body {
		out = append(out, joinSegments(segments))
	}
	out = append(out, footer.New(help, m.status(), m.viewportWidth).Render())
	return strings.Join(out, "\n")
}

// joinSegments lays out pre-rendered segments keyed by starting column,
// padding the space between them.
func joinSegments(segments map[int]string) string {
	if len(segments) == 0 {
		return ""
	}
	var (
		b   strings.Builder
		pos int
	)
	for _, col := range slices.Sorted(maps.Keys(segments)) {
		if col > pos {
			b.WriteString(strings.Repeat(" ", col-pos))
			pos = col
		}
		b.WriteString(segments[col])
		pos += lipgloss.Width(segments[col])
	}
	return b.String()
}

func (m *Model) renderRing(i int, r *ringState) string {
	opts := []ring.Option{
		ring.WithFocus(i == m.focus),
		ring.WithBackground(m.theme.Background()),
	}
	if state, ok := r.ctl.State(); ok {
		opts = append(opts, ring.WithActive(state.ActiveHandle))
	}
	return ring.New(r.ctl.Config(), r.label, opts...).Render()
}

func (m *Model) status() string {
	if len(m.rings) == 0 {
		return "no sliders"
	}
	r := m.rings[m.focus]

	var parts []string
	if r.label != "" {
		parts = append(parts, r.label)
	}
	for i, v := range r.ctl.Values() {
		parts = append(parts, fmt.Sprintf("h%d=%g", i+1, v))
	}
	switch {
	case r.ctl.Disabled():
		parts = append(parts, "disabled")
		return m.theme.Muted().Render(strings.Join(parts, "  "))
	case r.ctl.Phase() == slider.PhaseDragging:
		state, _ := r.ctl.State()
		parts = append(parts, fmt.Sprintf("dragging h%d", state.ActiveHandle+1))
	}
	return m.theme.Base().Render(strings.Join(parts, "  "))
}
