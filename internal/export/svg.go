package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/techsphere/internal/layout"
	"github.com/san-kum/techsphere/internal/viz"
)

func header(sb *strings.Builder, width, height float64, background string) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64, th viz.Theme) string {
	if canvas == nil {
		return ""
	}

	pw, ph := canvas.PixelSize()
	width, height := float64(pw)*scale, float64(ph)*scale

	var sb strings.Builder
	header(&sb, width, height, string(th.Background))
	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", th.Icon))

	dotRadius := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CloudToSVG renders the icon cloud seen through cam as labelled discs.
// Far icons are drawn first and faded.
func CloudToSVG(pts []layout.Vec3, names []string, cam *viz.Camera, width, height int, th viz.Theme) string {
	if cam == nil {
		return ""
	}

	var sb strings.Builder
	header(&sb, float64(width), float64(height), string(th.Background))

	if hx, hy, hz, ok := cam.Project(layout.Vec3{}, width, height); ok {
		r := cam.ProjectedSize(1, hz, height)
		sb.WriteString(fmt.Sprintf("<circle cx=\"%d\" cy=\"%d\" r=\"%.1f\" fill=\"%s\"/>\n", hx, hy, r, th.Hub))
	}

	for _, p := range viz.Project(pts, cam, width, height) {
		opacity := 1.0
		if p.Depth > cam.Distance {
			opacity = 0.45
		}
		sb.WriteString(fmt.Sprintf("<g opacity=\"%.2f\">\n", opacity))
		sb.WriteString(fmt.Sprintf("<circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"%s\"/>\n", p.X, p.Y, p.Size, th.Icon))
		if p.Index < len(names) {
			sb.WriteString(fmt.Sprintf("<text x=\"%d\" y=\"%d\" fill=\"%s\" font-family=\"sans-serif\" font-size=\"12\" text-anchor=\"middle\">%s</text>\n",
				p.X, p.Y-p.Size-4, th.Text, html.EscapeString(names[p.Index])))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG plots values against times, with dashed guide lines at each
// of the given levels (e.g. the elastic bounds).
func SeriesToSVG(times, values []float64, levels []float64, width, height int, th viz.Theme) string {
	n := len(values)
	if len(times) < n {
		n = len(times)
	}
	if n < 2 {
		return ""
	}

	minX, maxX := times[0], times[n-1]
	minY, maxY := values[0], values[0]
	for _, v := range append(values[:n:n], levels...) {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	px := func(t float64) float64 { return (t - minX) / rangeX * float64(width) }
	py := func(v float64) float64 { return float64(height) - (v-minY)/rangeY*float64(height) }

	var sb strings.Builder
	header(&sb, float64(width), float64(height), string(th.Background))

	for _, l := range levels {
		sb.WriteString(fmt.Sprintf("<line x1=\"0\" y1=\"%.1f\" x2=\"%d\" y2=\"%.1f\" stroke=\"%s\" stroke-dasharray=\"4 4\"/>\n",
			py(l), width, py(l), th.Muted))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, th.Accent))
	for i := 0; i < n; i++ {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(times[i]), py(values[i])))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px(times[i]), py(values[i])))
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
