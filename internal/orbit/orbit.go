package orbit

import (
	"errors"
	"fmt"
	"math"
)

const (
	// RestAngle is the equator-on polar angle the camera returns to.
	RestAngle = math.Pi / 2

	// Damping is the fraction of the remaining distance closed per tick.
	Damping = 0.1

	// DefaultRange is the elastic half-width around RestAngle.
	DefaultRange = 0.5
)

// ErrNegativeRange indicates an elastic range below zero.
var ErrNegativeRange = errors.New("orbit: elastic range must be non-negative")

// State is the polar part of an orbit camera.
type State struct {
	Polar    float64 `json:"polar" yaml:"polar"`
	Dragging bool    `json:"dragging" yaml:"dragging"`
	Rest     float64 `json:"rest" yaml:"rest"`
	Range    float64 `json:"range" yaml:"range"`
}

// NewState returns a released state at polar with the default rest angle.
func NewState(polar, elasticRange float64) (State, error) {
	if elasticRange < 0 || math.IsNaN(elasticRange) {
		return State{}, fmt.Errorf("%w: got %g", ErrNegativeRange, elasticRange)
	}
	return State{Polar: polar, Rest: RestAngle, Range: elasticRange}, nil
}

// Bounds returns the hard limits of the polar angle.
func (s State) Bounds() (lo, hi float64) {
	return s.Rest - s.Range, s.Rest + s.Range
}

// Clamp limits the polar angle to Bounds. A NaN angle snaps to Rest.
func (s State) Clamp() State {
	if math.IsNaN(s.Polar) {
		s.Polar = s.Rest
		return s
	}
	lo, hi := s.Bounds()
	if s.Polar < lo {
		s.Polar = lo
	}
	if s.Polar > hi {
		s.Polar = hi
	}
	return s
}

// Clamped reports whether Clamp would move the angle.
func (s State) Clamped() bool {
	lo, hi := s.Bounds()
	return math.IsNaN(s.Polar) || s.Polar < lo || s.Polar > hi
}

// Step advances the constraint by one frame.
func Step(s State) State {
	return relax(s).Clamp()
}

func relax(s State) State {
	if !s.Dragging {
		s.Polar += (s.Rest - s.Polar) * Damping
	}
	return s
}
