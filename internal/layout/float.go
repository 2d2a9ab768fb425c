package layout

import "math"

// Floating animation of an icon around its resting point.
const (
	BobFrequency  = 0.8
	BobAmplitude  = 0.25
	RollFrequency = 0.5
	RollAmplitude = 0.15
)

// Bob returns the displaced position and roll (rad) of an icon resting at
// base, t seconds into the animation. Each icon is phase shifted by the
// sum of its coordinates so neighbours do not move in lockstep.
func Bob(base Vec3, t float64) (Vec3, float64) {
	phase := t + base.X + base.Y + base.Z
	p := base
	p.Y += math.Sin(phase*BobFrequency) * BobAmplitude
	return p, math.Sin(phase*RollFrequency) * RollAmplitude
}

// Animate applies Bob to every point.
func Animate(pts []Vec3, t float64) []Vec3 {
	out := make([]Vec3, len(pts))
	for i, p := range pts {
		out[i], _ = Bob(p, t)
	}
	return out
}
