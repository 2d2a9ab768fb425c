package viz

import (
	"math"
	"sort"

	"github.com/san-kum/techsphere/internal/layout"
)

const (
	iconSize = 1.0
	hubSize  = 1.0
)

// Projected is an icon after projection, in dot coordinates.
type Projected struct {
	Index int
	X, Y  int
	Depth float64
	Size  int
}

// Project projects every visible point, farthest first.
func Project(pts []layout.Vec3, cam *Camera, sw, sh int) []Projected {
	out := make([]Projected, 0, len(pts))
	for i, p := range pts {
		x, y, z, ok := cam.Project(p, sw, sh)
		if !ok {
			continue
		}
		size := int(math.Round(cam.ProjectedSize(iconSize/2, z, sh)))
		if size < 1 {
			size = 1
		}
		out = append(out, Projected{Index: i, X: x, Y: y, Depth: z, Size: size})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth > out[j].Depth })
	return out
}

// RenderCloud draws the hub and the icons at pts onto the canvas and
// returns the projected icons, farthest first.
func RenderCloud(c *Canvas, pts []layout.Vec3, cam *Camera) []Projected {
	if c == nil || cam == nil {
		return nil
	}
	sw, sh := c.PixelSize()

	if hx, hy, hz, ok := cam.Project(layout.Vec3{}, sw, sh); ok {
		c.DrawCircle(hx, hy, int(math.Round(cam.ProjectedSize(hubSize, hz, sh))))
	}

	proj := Project(pts, cam, sw, sh)
	for _, p := range proj {
		// Nearer icons are drawn solid, the far hemisphere as outlines.
		if p.Depth < cam.Distance {
			c.FillDisc(p.X, p.Y, p.Size)
		} else {
			c.DrawCircle(p.X, p.Y, p.Size)
		}
	}
	return proj
}

// Nearest returns the projected icon closest to the camera.
func Nearest(proj []Projected) (Projected, bool) {
	if len(proj) == 0 {
		return Projected{}, false
	}
	return proj[len(proj)-1], true
}
