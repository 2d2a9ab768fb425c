package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	canvas  lipgloss.Style
	panel   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	active  lipgloss.Style
	warning lipgloss.Style
	graph   lipgloss.Style
	help    lipgloss.Style
	tooltip lipgloss.Style
}

func newStyles(th Theme) styles {
	return styles{
		canvas:  lipgloss.NewStyle().Padding(1, 2).Foreground(th.Icon),
		panel:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(th.Muted).Padding(1, 2).Width(44),
		header:  lipgloss.NewStyle().Foreground(th.Accent).Bold(true).MarginBottom(1),
		label:   lipgloss.NewStyle().Foreground(th.Muted).Width(12),
		value:   lipgloss.NewStyle().Foreground(th.Text),
		active:  lipgloss.NewStyle().Foreground(th.Hub).Bold(true),
		warning: lipgloss.NewStyle().Foreground(th.Warning).Bold(true),
		graph:   lipgloss.NewStyle().Foreground(th.Accent).Padding(1, 0),
		help:    lipgloss.NewStyle().Foreground(th.Muted).MarginTop(1),
		tooltip: lipgloss.NewStyle().Foreground(th.Text).Background(lipgloss.Color("#1e293b")).Padding(0, 1),
	}
}

// Gauge renders pos in [-1, 1] as a centered bar of the given width.
func Gauge(pos float64, width int) string {
	if width < 3 {
		width = 3
	}
	if pos < -1 {
		pos = -1
	}
	if pos > 1 {
		pos = 1
	}
	cells := []rune(strings.Repeat("─", width))
	mid := width / 2
	cells[mid] = '┼'
	idx := mid + int(pos*float64(mid))
	if idx >= width {
		idx = width - 1
	}
	cells[idx] = '●'
	return "[" + string(cells) + "]"
}
