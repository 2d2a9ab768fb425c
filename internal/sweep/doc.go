// Package sweep runs a scene over a grid of configuration values and ranks
// the outcomes by one metric.
//
// Each grid point gets its own controls and scene, so points run
// concurrently on a bounded number of workers.
//
// # Example
//
//	grid, _ := sweep.NewGrid([]sweep.Param{
//		{Name: "range", Values: []float64{0.25, 0.5}},
//		{Name: "polar", Values: []float64{1.2, 2.0}},
//	}, 4)
//	points, err := grid.Run(ctx, config.GetPreset("idle"))
//	best, ok := sweep.Best(points, "settle_time")
package sweep
