package export

import (
	"strings"
	"testing"

	"github.com/san-kum/techsphere/internal/layout"
	"github.com/san-kum/techsphere/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(3, 5)

	svg := CanvasToSVG(c, 2, viz.ThemeSky)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an SVG document")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if !strings.Contains(svg, `width="16" height="16"`) {
		t.Error("unexpected document size")
	}
	if CanvasToSVG(nil, 1, viz.ThemeSky) != "" {
		t.Error("nil canvas should export nothing")
	}
}

func TestCloudToSVG(t *testing.T) {
	icons := layout.DefaultIcons()
	names := make([]string, len(icons))
	for i, ic := range icons {
		names[i] = ic.Name
	}
	pts := layout.Sphere(len(icons), layout.Radius)

	svg := CloudToSVG(pts, names, viz.NewCamera(), 800, 600, viz.ThemeMint)
	// hub plus one disc per icon
	if got := strings.Count(svg, "<circle"); got != len(icons)+1 {
		t.Errorf("expected %d circles, got %d", len(icons)+1, got)
	}
	if !strings.Contains(svg, ">Django</text>") || !strings.Contains(svg, ">.NET</text>") {
		t.Error("labels missing")
	}
	if !strings.Contains(svg, string(viz.ThemeMint.Hub)) {
		t.Error("hub color missing")
	}
	if CloudToSVG(pts, names, nil, 800, 600, viz.ThemeMint) != "" {
		t.Error("nil camera should export nothing")
	}
}

func TestSeriesToSVG(t *testing.T) {
	times := []float64{0, 0.1, 0.2, 0.3}
	values := []float64{1.57, 2.07, 1.9, 1.6}

	svg := SeriesToSVG(times, values, []float64{1.07, 2.07}, 400, 200, viz.ThemeSky)
	if strings.Count(svg, "<line") != 2 {
		t.Error("expected two guide lines")
	}
	if strings.Count(svg, " L") != 3 {
		t.Errorf("expected 3 segments, got %d", strings.Count(svg, " L"))
	}
	if SeriesToSVG(times[:1], values[:1], nil, 400, 200, viz.ThemeSky) != "" {
		t.Error("a single sample cannot be plotted")
	}
	if values[0] != 1.57 || len(values) != 4 {
		t.Error("input slice modified")
	}
}
