package scene

import "math"

// SettleTolerance is how close to rest the camera must be to count as settled.
const SettleTolerance = 1e-3

// MaxDeviation tracks the largest distance from the rest angle.
type MaxDeviation struct {
	max float64
}

func NewMaxDeviation() *MaxDeviation { return &MaxDeviation{} }

func (m *MaxDeviation) Name() string { return "max_deviation" }
func (m *MaxDeviation) Observe(f Frame) {
	m.max = math.Max(m.max, math.Abs(f.Offset))
}
func (m *MaxDeviation) Value() float64 { return m.max }
func (m *MaxDeviation) Reset()         { m.max = 0 }

// ClampHits counts frames on which the hard bound engaged.
type ClampHits struct {
	hits int
}

func NewClampHits() *ClampHits { return &ClampHits{} }

func (c *ClampHits) Name() string { return "clamp_hits" }
func (c *ClampHits) Observe(f Frame) {
	if f.Clamped {
		c.hits++
	}
}
func (c *ClampHits) Value() float64 { return float64(c.hits) }
func (c *ClampHits) Reset()         { c.hits = 0 }

// SettleTime is the delay between the last release and the camera coming
// within SettleTolerance of rest. It is -1 while unsettled.
type SettleTime struct {
	released float64
	settled  float64
	dragging bool
}

func NewSettleTime() *SettleTime { return &SettleTime{settled: -1} }

func (s *SettleTime) Name() string { return "settle_time" }

func (s *SettleTime) Observe(f Frame) {
	if f.Dragging {
		s.dragging = true
		s.settled = -1
		return
	}
	if s.dragging {
		s.dragging = false
		s.released = f.Time
		s.settled = -1
	}
	if s.settled < 0 && math.Abs(f.Offset) < SettleTolerance {
		s.settled = f.Time - s.released
	}
}

func (s *SettleTime) Value() float64 { return s.settled }

func (s *SettleTime) Reset() {
	s.released, s.settled, s.dragging = 0, -1, false
}

// DefaultMetrics returns the metrics recorded for every run.
func DefaultMetrics() []Metric {
	return []Metric{NewMaxDeviation(), NewClampHits(), NewSettleTime()}
}
