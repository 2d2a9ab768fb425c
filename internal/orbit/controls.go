package orbit

import "github.com/charmbracelet/harmonica"

// Azimuth spring tuning: close to critically damped so a fling glides to a
// stop without swinging back.
const (
	azimuthFrequency = 6.0
	azimuthDamping   = 0.9
)

// Controls models an orbit-controls widget driven by pointer events.
type Controls struct {
	state State

	azimuth    float64
	azimuthVel float64
	azTarget   float64
	spring     harmonica.Spring

	// set by Drag when it had to clamp, consumed by the next Tick
	dragClamped bool
}

// NewControls returns controls at rest for a host rendering at fps.
// A negative range is treated as zero.
func NewControls(fps int, elasticRange float64) *Controls {
	if fps <= 0 {
		fps = 60
	}
	if elasticRange < 0 {
		elasticRange = 0
	}
	return &Controls{
		state:  State{Polar: RestAngle, Rest: RestAngle, Range: elasticRange},
		spring: harmonica.NewSpring(harmonica.FPS(fps), azimuthFrequency, azimuthDamping),
	}
}

// SetPolar places the camera at an arbitrary polar angle. The next Tick
// clamps it.
func (c *Controls) SetPolar(a float64) { c.state.Polar = a }

func (c *Controls) BeginDrag() { c.state.Dragging = true }
func (c *Controls) EndDrag()   { c.state.Dragging = false }

// Drag moves the camera by a pointer delta. It is ignored unless a drag is
// in progress. The polar angle is clamped immediately.
func (c *Controls) Drag(dPolar, dAzimuth float64) {
	if !c.state.Dragging {
		return
	}
	c.state.Polar += dPolar
	if c.state.Clamped() {
		c.dragClamped = true
	}
	c.state = c.state.Clamp()
	c.azTarget += dAzimuth
}

// Tick runs one frame: the elastic polar constraint plus azimuth inertia.
// It reports whether the clamp engaged on this frame, including clamps
// applied by Drag since the previous Tick.
func (c *Controls) Tick() bool {
	next := relax(c.state)
	hit := next.Clamped() || c.dragClamped
	c.dragClamped = false
	c.state = next.Clamp()
	c.azimuth, c.azimuthVel = c.spring.Update(c.azimuth, c.azimuthVel, c.azTarget)
	return hit
}

func (c *Controls) State() State        { return c.state }
func (c *Controls) Polar() float64      { return c.state.Polar }
func (c *Controls) Azimuth() float64    { return c.azimuth }
func (c *Controls) Dragging() bool      { return c.state.Dragging }
func (c *Controls) AzimuthVel() float64 { return c.azimuthVel }

// Reset returns the camera to rest and drops any drag.
func (c *Controls) Reset() {
	c.state.Polar = c.state.Rest
	c.state.Dragging = false
	c.dragClamped = false
	c.azimuth, c.azimuthVel, c.azTarget = 0, 0, 0
}
