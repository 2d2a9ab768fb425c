package layout

import (
	"fmt"
	"math"
)

// Radius is the sphere radius used by the portfolio scene.
const Radius = 5.5

// Place maps item i of n onto a sphere of the given radius.
//
// Callers are expected to pass 0 <= i < n, n > 0 and radius > 0. Indices
// past n extrapolate the same spiral; n == 0 yields NaN coordinates.
func Place(i, n int, radius float64) Vec3 {
	phi := math.Acos(-1 + 2*float64(i)/float64(n))
	theta := math.Sqrt(float64(n)*math.Pi) * phi

	sinPhi := math.Sin(phi)
	return Vec3{
		X: radius * math.Cos(theta) * sinPhi,
		Y: radius * math.Sin(theta) * sinPhi,
		Z: radius * math.Cos(phi),
	}
}

// Sphere returns the placements of all n items.
func Sphere(n int, radius float64) []Vec3 {
	if n <= 0 {
		return nil
	}
	pts := make([]Vec3, n)
	for i := range pts {
		pts[i] = Place(i, n, radius)
	}
	return pts
}

// Generate is Sphere for untrusted input.
func Generate(n int, radius float64) ([]Vec3, error) {
	if err := Validate(n, radius); err != nil {
		return nil, err
	}
	return Sphere(n, radius), nil
}

// Validate checks the preconditions of Place.
func Validate(n int, radius float64) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	return nil
}
