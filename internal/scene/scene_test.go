package scene_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/techsphere/internal/layout"
	"github.com/san-kum/techsphere/internal/orbit"
	"github.com/san-kum/techsphere/internal/scene"
)

type recorder struct {
	frames []scene.Frame
}

func (r *recorder) OnFrame(f scene.Frame) { r.frames = append(r.frames, f) }

var _ = Describe("Scene", func() {
	var (
		controls *orbit.Controls
		s        *scene.Scene
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		controls = orbit.NewControls(60, orbit.DefaultRange)
		var err error
		s, err = scene.New(layout.DefaultIcons(), layout.Radius, controls)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an empty icon set", func() {
		_, err := scene.New(nil, layout.Radius, controls)
		Expect(err).To(MatchError(layout.ErrInvalidCount))
	})

	It("places every icon on the sphere", func() {
		placed := s.Icons()
		Expect(placed).To(HaveLen(19))
		for _, p := range placed {
			Expect(p.Position.Length()).To(BeNumerically("~", layout.Radius, 1e-9))
		}
	})

	It("animates positions with the floating bob", func() {
		Expect(s.Positions(2.5)).To(Equal(layout.Animate(layout.Sphere(19, layout.Radius), 2.5)))
	})

	It("records one frame per tick plus the initial frame", func() {
		result, err := s.Run(ctx, scene.Config{FPS: 60, Duration: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Frames).To(HaveLen(61))
		Expect(result.FramesTaken).To(Equal(60))
		Expect(result.Frames[0].Time).To(Equal(0.0))
		Expect(result.Frames[60].Time).To(BeNumerically("~", 1.0, 1e-9))
		Expect(result.Polar()).To(HaveLen(61))
	})

	DescribeTable("invalid configs",
		func(cfg scene.Config) {
			_, err := s.Run(ctx, cfg)
			Expect(err).To(MatchError(scene.ErrInvalidConfig))
		},
		Entry("zero fps", scene.Config{FPS: 0, Duration: 1}),
		Entry("negative fps", scene.Config{FPS: -30, Duration: 1}),
		Entry("zero duration", scene.Config{FPS: 60, Duration: 0}),
		Entry("unknown action", scene.Config{FPS: 60, Duration: 1, Script: []scene.DragEvent{{At: 0.1, Action: "spin"}}}),
		Entry("negative time", scene.Config{FPS: 60, Duration: 1, Script: []scene.DragEvent{{At: -1, Action: scene.Press}}}),
	)

	Context("with a fling past the bound", func() {
		var cfg scene.Config

		BeforeEach(func() {
			cfg = scene.Config{
				FPS:      60,
				Duration: 3,
				Script: []scene.DragEvent{
					{At: 0.5, Action: scene.Release},
					{At: 0.1, Action: scene.Press, DPolar: 2, DAzimuth: 0.4},
					{At: 0.2, Action: scene.Move, DPolar: 1},
				},
			}
			for _, m := range scene.DefaultMetrics() {
				s.AddMetric(m)
			}
		})

		It("holds the bound while dragging and relaxes after release", func() {
			rec := &recorder{}
			s.AddObserver(rec)

			result, err := s.Run(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.frames).To(HaveLen(result.FramesTaken))

			_, hi := controls.State().Bounds()
			for _, f := range result.Frames {
				Expect(math.Abs(f.Offset)).To(BeNumerically("<=", orbit.DefaultRange+1e-12))
				if f.Dragging {
					Expect(f.Polar).To(BeNumerically("~", hi, 1e-12))
				}
			}

			last := result.Frames[len(result.Frames)-1]
			Expect(last.Dragging).To(BeFalse())
			Expect(math.Abs(last.Offset)).To(BeNumerically("<", 1e-4))
			Expect(last.Azimuth).To(BeNumerically("~", 0.4, 1e-3))
		})

		It("reports deviation and settle time", func() {
			result, err := s.Run(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Metrics["max_deviation"]).To(BeNumerically("~", orbit.DefaultRange, 1e-12))
			// press and move each pushed past the upper bound
			Expect(result.Metrics["clamp_hits"]).To(Equal(2.0))
			Expect(result.Metrics["settle_time"]).To(BeNumerically(">", 0.9))
			Expect(result.Metrics["settle_time"]).To(BeNumerically("<", 1.1))
		})

		It("resets metrics between runs", func() {
			first, err := s.Run(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())
			controls.Reset()
			second, err := s.Run(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Metrics).To(Equal(first.Metrics))
		})
	})

	It("counts clamp hits when started outside the bound", func() {
		s.AddMetric(scene.NewClampHits())
		controls.SetPolar(3)
		result, err := s.Run(ctx, scene.Config{FPS: 60, Duration: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Metrics["clamp_hits"]).To(Equal(1.0))
	})

	It("includes the initial frame in the metrics", func() {
		s.AddMetric(scene.NewMaxDeviation())
		controls.SetPolar(3)
		result, err := s.Run(ctx, scene.Config{FPS: 60, Duration: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Frames[0].Polar).To(Equal(3.0))
		Expect(result.Metrics["max_deviation"]).To(BeNumerically("~", math.Abs(result.Frames[0].Offset), 1e-12))
	})

	It("stops on a cancelled context", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		result, err := s.Run(cctx, scene.Config{FPS: 60, Duration: 1})
		Expect(err).To(MatchError(context.Canceled))
		Expect(result.Frames).To(HaveLen(1))
	})

	It("stops when the callback returns false", func() {
		calls := 0
		err := s.RunWithCallback(ctx, scene.Config{FPS: 60, Duration: 10}, func(f scene.Frame) bool {
			calls++
			return f.Index < 5
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(5))
	})
})
