package scene

import (
	"context"
	"math"
	"sort"

	"github.com/san-kum/techsphere/internal/layout"
	"github.com/san-kum/techsphere/internal/orbit"
)

type Scene struct {
	icons     []layout.Icon
	base      []layout.Vec3
	radius    float64
	controls  *orbit.Controls
	metrics   []Metric
	observers []Observer
}

// New lays the icons out on a sphere of the given radius. The controls
// should be built for the same frame rate the scene is run at.
func New(icons []layout.Icon, radius float64, controls *orbit.Controls) (*Scene, error) {
	if err := layout.Validate(len(icons), radius); err != nil {
		return nil, err
	}
	return &Scene{
		icons:     icons,
		base:      layout.Sphere(len(icons), radius),
		radius:    radius,
		controls:  controls,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}, nil
}

func (s *Scene) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Scene) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Scene) Controls() *orbit.Controls { return s.controls }
func (s *Scene) Radius() float64           { return s.radius }

// Icons returns the icons with their resting positions.
func (s *Scene) Icons() []layout.Placed {
	return layout.Arrange(s.icons, s.radius)
}

// Positions returns the floating icon positions t seconds in.
func (s *Scene) Positions(t float64) []layout.Vec3 {
	return layout.Animate(s.base, t)
}

func (s *Scene) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	frames := int(math.Round(cfg.Duration * float64(cfg.FPS)))
	result := &Result{
		Frames:  make([]Frame, 0, frames+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	first := s.frame(0, 0, false)
	for _, m := range s.metrics {
		m.Observe(first)
	}
	result.Frames = append(result.Frames, first)

	err := s.loop(ctx, cfg, frames, func(f Frame) bool {
		result.Frames = append(result.Frames, f)
		result.FramesTaken++
		return true
	})

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, err
}

// RunWithCallback runs the loop without recording frames. Returning false
// from fn stops the run early.
func (s *Scene) RunWithCallback(ctx context.Context, cfg Config, fn func(Frame) bool) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	return s.loop(ctx, cfg, int(math.Round(cfg.Duration*float64(cfg.FPS))), fn)
}

func (s *Scene) loop(ctx context.Context, cfg Config, frames int, fn func(Frame) bool) error {
	script := make([]DragEvent, len(cfg.Script))
	copy(script, cfg.Script)
	sort.SliceStable(script, func(i, j int) bool { return script[i].At < script[j].At })

	dt := 1 / float64(cfg.FPS)
	next := 0
	for i := 1; i <= frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t := float64(i) * dt
		for next < len(script) && script[next].At <= t {
			s.apply(script[next])
			next++
		}

		hit := s.controls.Tick()
		f := s.frame(i, t, hit)

		for _, m := range s.metrics {
			m.Observe(f)
		}
		for _, obs := range s.observers {
			obs.OnFrame(f)
		}
		if !fn(f) {
			return nil
		}
	}
	return nil
}

func (s *Scene) apply(ev DragEvent) {
	switch ev.Action {
	case Press:
		s.controls.BeginDrag()
		s.controls.Drag(ev.DPolar, ev.DAzimuth)
	case Move:
		s.controls.Drag(ev.DPolar, ev.DAzimuth)
	case Release:
		s.controls.Drag(ev.DPolar, ev.DAzimuth)
		s.controls.EndDrag()
	}
}

func (s *Scene) frame(i int, t float64, clamped bool) Frame {
	st := s.controls.State()
	return Frame{
		Index:    i,
		Time:     t,
		Polar:    st.Polar,
		Offset:   st.Polar - st.Rest,
		Azimuth:  s.controls.Azimuth(),
		Dragging: st.Dragging,
		Clamped:  clamped,
	}
}
