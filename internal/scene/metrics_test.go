package scene_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/techsphere/internal/scene"
)

var _ = Describe("SettleTime", func() {
	It("is -1 until the camera settles", func() {
		m := scene.NewSettleTime()
		m.Observe(scene.Frame{Time: 0.1, Offset: 0.3, Dragging: true})
		Expect(m.Value()).To(Equal(-1.0))
		m.Observe(scene.Frame{Time: 0.2, Offset: 0.2})
		Expect(m.Value()).To(Equal(-1.0))
		m.Observe(scene.Frame{Time: 0.7, Offset: 1e-4})
		Expect(m.Value()).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("restarts on a new drag", func() {
		m := scene.NewSettleTime()
		m.Observe(scene.Frame{Time: 0.1, Offset: 0})
		Expect(m.Value()).To(BeNumerically("~", 0.1, 1e-12))
		m.Observe(scene.Frame{Time: 0.2, Offset: 0.4, Dragging: true})
		Expect(m.Value()).To(Equal(-1.0))
		m.Reset()
		Expect(m.Value()).To(Equal(-1.0))
	})
})

var _ = Describe("MaxDeviation", func() {
	It("tracks the absolute offset", func() {
		m := scene.NewMaxDeviation()
		m.Observe(scene.Frame{Offset: -0.4})
		m.Observe(scene.Frame{Offset: 0.2})
		Expect(m.Value()).To(Equal(0.4))
		m.Reset()
		Expect(m.Value()).To(Equal(0.0))
	})
})
