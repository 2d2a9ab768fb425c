package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/techsphere/internal/orbit"
	"github.com/san-kum/techsphere/internal/scene"
)

const (
	width           = 72
	height          = 22
	historyCapacity = 240
	dragStep        = 0.08
	releaseAfter    = 0.25 // seconds without a drag key before release
	labelCount      = 3
)

type TickMsg time.Time

// Model is the live viewer. It owns the scene's controls for its lifetime.
type Model struct {
	scene    *scene.Scene
	controls *orbit.Controls
	names    []string
	fps      int
	frame    int
	t        float64
	canvas   *Canvas
	camera   *Camera
	theme    Theme
	styles   styles
	running  bool
	labels   bool
	quiet    int
	clamps   int
	history  []float64
	title    string
}

func NewModel(s *scene.Scene, fps int, theme, title string) Model {
	if fps <= 0 {
		fps = 60
	}
	placed := s.Icons()
	names := make([]string, len(placed))
	for i, p := range placed {
		names[i] = p.Name
	}
	th := GetTheme(theme)
	return Model{
		scene:    s,
		controls: s.Controls(),
		names:    names,
		fps:      fps,
		canvas:   NewCanvas(width, height),
		camera:   NewCamera(),
		theme:    th,
		styles:   newStyles(th),
		running:  true,
		labels:   true,
		history:  make([]float64, 0, historyCapacity),
		title:    title,
	}
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the scene.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		case "n":
			m.labels = !m.labels
		case "up", "k":
			m.drag(-dragStep, 0)
		case "down", "j":
			m.drag(dragStep, 0)
		case "left", "h":
			m.drag(0, -dragStep)
		case "right", "l":
			m.drag(0, dragStep)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// drag presses on the first key and keeps the drag alive while keys repeat.
func (m *Model) drag(dPolar, dAzimuth float64) {
	if !m.controls.Dragging() {
		m.controls.BeginDrag()
	}
	m.controls.Drag(dPolar, dAzimuth)
	m.quiet = int(math.Ceil(releaseAfter * float64(m.fps)))
}

func (m *Model) step() {
	if m.controls.Dragging() {
		m.quiet--
		if m.quiet <= 0 {
			m.controls.EndDrag()
		}
	}
	if m.controls.Tick() {
		m.clamps++
	}
	m.frame++
	m.t = float64(m.frame) / float64(m.fps)

	m.history = append(m.history, m.controls.Polar())
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) reset() {
	m.controls.Reset()
	m.frame, m.t, m.quiet, m.clamps = 0, 0, 0, 0
	m.history = m.history[:0]
}

// draw renders the cloud and returns the projected icons.
func (m *Model) draw() []Projected {
	m.camera.SetOrbit(m.controls.Polar(), m.controls.Azimuth())
	m.canvas.Clear()
	return RenderCloud(m.canvas, m.scene.Positions(m.t), m.camera)
}

func (m Model) status() string {
	switch {
	case !m.running:
		return m.styles.warning.Render("PAUSED")
	case m.controls.Dragging():
		return m.styles.active.Render("DRAGGING")
	default:
		return m.styles.value.Render("RUNNING")
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	proj := m.draw()
	canvasView := m.styles.canvas.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(m.styles.header.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.status() + "\n\n")

	st := m.controls.State()
	offset := st.Polar - st.Rest
	gauge := 0.0
	if st.Range > 0 {
		gauge = offset / st.Range
	}
	row := func(label, value string) {
		s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", m.t))
	row("Polar", fmt.Sprintf("%.1f°", st.Polar*180/math.Pi))
	row("Offset", fmt.Sprintf("%+.3f %s", offset, Gauge(gauge, 15)))
	row("Azimuth", fmt.Sprintf("%.1f°", m.controls.Azimuth()*180/math.Pi))
	row("Clamps", fmt.Sprintf("%d", m.clamps))
	row("Icons", fmt.Sprintf("%d visible", len(proj)))

	if m.labels && len(proj) > 0 {
		s.WriteString("\nFACING\n")
		for i := 0; i < labelCount && i < len(proj); i++ {
			p := proj[len(proj)-1-i]
			s.WriteString("  " + m.styles.tooltip.Render(m.names[p.Index]) + "\n")
		}
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("polar (rad)"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	s.WriteString(m.styles.help.Render("─────────────────────\n←↑↓→:Drag SP:Pause R:Reset\nT:Theme N:Labels Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.panel.Render(s.String()))
}
