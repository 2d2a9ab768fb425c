package viz

import (
	"math"

	"github.com/san-kum/techsphere/internal/layout"
)

// Defaults of the portfolio canvas.
const (
	CameraDistance = 14.0
	CameraFOV      = 60 * math.Pi / 180
	cameraNear     = 0.1
)

// Camera orbits the origin. Polar is measured from +Y and azimuth around
// +Y, so polar pi/2 and azimuth 0 looks down -Z from (0, 0, distance).
type Camera struct {
	Distance float64
	FOV      float64
	Polar    float64
	Azimuth  float64
}

func NewCamera() *Camera {
	return &Camera{Distance: CameraDistance, FOV: CameraFOV, Polar: math.Pi / 2}
}

// SetOrbit moves the camera to the given orbit angles.
func (c *Camera) SetOrbit(polar, azimuth float64) {
	c.Polar, c.Azimuth = polar, azimuth
}

func (c *Camera) Position() layout.Vec3 {
	s := math.Sin(c.Polar)
	return layout.Vec3{
		X: c.Distance * s * math.Sin(c.Azimuth),
		Y: c.Distance * math.Cos(c.Polar),
		Z: c.Distance * s * math.Cos(c.Azimuth),
	}
}

// basis returns the right, up and forward unit vectors of the view.
func (c *Camera) basis() (right, up, fwd layout.Vec3) {
	pos := c.Position()
	fwd = pos.Scale(-1).Normalize()
	right = fwd.Cross(layout.Vec3{Y: 1})
	if right.Length() < 1e-9 {
		right = layout.Vec3{X: 1}
	}
	right = right.Normalize()
	up = right.Cross(fwd).Normalize()
	return right, up, fwd
}

// Project maps p to dot coordinates on a sw x sh surface. It returns the
// screen position, the view depth and whether the point is in front of the
// camera and on screen.
func (c *Camera) Project(p layout.Vec3, sw, sh int) (int, int, float64, bool) {
	right, up, fwd := c.basis()
	d := p.Sub(c.Position())
	z := d.Dot(fwd)
	if z <= cameraNear {
		return 0, 0, z, false
	}
	scale := c.focal(sh)
	sx := sw/2 + int(math.Round(d.Dot(right)/z*scale))
	sy := sh/2 - int(math.Round(d.Dot(up)/z*scale))
	return sx, sy, z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// ProjectedSize returns the on-screen size in dots of a world length at depth z.
func (c *Camera) ProjectedSize(length, z float64, sh int) float64 {
	if z <= cameraNear {
		return 0
	}
	return length / z * c.focal(sh)
}

func (c *Camera) focal(sh int) float64 {
	return float64(sh) / 2 / math.Tan(c.FOV/2)
}
