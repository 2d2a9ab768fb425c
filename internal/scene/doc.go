// Package scene drives the technology cloud frame by frame.
//
// A [Scene] owns the icon placements and the orbit [orbit.Controls]. [Scene.Run]
// advances a fixed frame clock, replays a scripted drag sequence, notifies
// observers and collects metrics, which makes it the headless counterpart of
// the live viewer:
//
//	c := orbit.NewControls(60, orbit.DefaultRange)
//	s, _ := scene.New(layout.DefaultIcons(), layout.Radius, c)
//	s.AddMetric(scene.NewMaxDeviation())
//	result, _ := s.Run(ctx, scene.Config{FPS: 60, Duration: 5})
//
// # Thread Safety
//
// Scene instances are NOT thread-safe; run one scene per goroutine.
package scene
