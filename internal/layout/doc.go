// Package layout places technology icons on the surface of a sphere.
//
// The placement is a spiral over the inclination angle:
//
//	phi   = acos(-1 + 2i/n)
//	theta = sqrt(n*pi) * phi
//
// which spreads points by area rather than by angle, so they do not
// bunch up at the poles. [Place] is the raw formula and is total over
// its inputs; [Generate] validates a count and radius before building
// the full set.
//
// # Example
//
//	pts := layout.Sphere(len(icons), layout.Radius)
//	stats := layout.Spacing(pts)
package layout
