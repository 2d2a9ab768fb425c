package scene

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a frame loop configuration that cannot run.
var ErrInvalidConfig = errors.New("scene: invalid config")

type Action string

const (
	Press   Action = "press"
	Move    Action = "move"
	Release Action = "release"
)

// DragEvent is one scripted pointer event, applied on the first frame whose
// time is at or after At.
type DragEvent struct {
	At       float64 `json:"at" yaml:"at"`
	Action   Action  `json:"action" yaml:"action"`
	DPolar   float64 `json:"d_polar,omitempty" yaml:"d_polar,omitempty"`
	DAzimuth float64 `json:"d_azimuth,omitempty" yaml:"d_azimuth,omitempty"`
}

// Frame is the camera state at one frame. Frame 0 is the state before the
// first tick; every later frame follows one tick.
type Frame struct {
	Index    int     `json:"index"`
	Time     float64 `json:"time"`
	Polar    float64 `json:"polar"`
	Offset   float64 `json:"offset"`
	Azimuth  float64 `json:"azimuth"`
	Dragging bool    `json:"dragging"`
	Clamped  bool    `json:"clamped"`
}

type Observer interface {
	OnFrame(f Frame)
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Config struct {
	FPS      int
	Duration float64
	Script   []DragEvent
}

func DefaultConfig() Config {
	return Config{FPS: 60, Duration: 5}
}

func (c Config) validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, c.Duration)
	}
	for i, ev := range c.Script {
		switch ev.Action {
		case Press, Move, Release:
		default:
			return fmt.Errorf("%w: script event %d has unknown action %q", ErrInvalidConfig, i, ev.Action)
		}
		if ev.At < 0 {
			return fmt.Errorf("%w: script event %d at negative time %f", ErrInvalidConfig, i, ev.At)
		}
	}
	return nil
}

type Result struct {
	Frames      []Frame
	Metrics     map[string]float64
	FramesTaken int
}

// Polar returns the polar angle series, for plotting.
func (r *Result) Polar() []float64 {
	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.Polar
	}
	return out
}
