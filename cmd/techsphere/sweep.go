package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/techsphere/internal/log"
	"github.com/san-kum/techsphere/internal/scene"
	"github.com/san-kum/techsphere/internal/sweep"
)

var (
	sweepParams []string
	sweepMetric string
	workers     int
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "run a scene over a parameter grid and rank by a metric",
		Example: "  techsphere sweep --preset idle --param range=0.25,0.5,0.75 --param polar=1.2,2.0 --metric settle_time",
		RunE:    runSweep,
	}
	addSceneFlags(cmd)
	cmd.Flags().StringArrayVar(&sweepParams, "param", nil,
		fmt.Sprintf("swept parameter name=v1,v2,... (%s)", strings.Join(sweep.ParamNames(), ", ")))
	cmd.Flags().StringVar(&sweepMetric, "metric", "settle_time", "metric to minimize")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel scenes (0 = GOMAXPROCS)")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	if len(sweepParams) == 0 {
		return fmt.Errorf("at least one --param is required")
	}
	params := make([]sweep.Param, 0, len(sweepParams))
	for _, s := range sweepParams {
		p, err := sweep.ParseParam(s)
		if err != nil {
			return err
		}
		params = append(params, p)
	}

	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	grid, err := sweep.NewGrid(params, workers)
	if err != nil {
		return err
	}

	start := time.Now()
	points, err := grid.Run(context.Background(), base)
	if err != nil {
		return err
	}
	log.Info("sweep finished", "points", len(points), "took", time.Since(start))

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	metrics := make([]string, 0, 3)
	for _, m := range scene.DefaultMetrics() {
		metrics = append(metrics, m.Name())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(append(append([]string{}, names...), metrics...), "\t")))
	for _, pt := range points {
		cols := make([]string, 0, len(names)+len(metrics))
		for _, n := range names {
			cols = append(cols, fmt.Sprintf("%g", pt.Params[n]))
		}
		for _, m := range metrics {
			cols = append(cols, fmt.Sprintf("%.4f", pt.Metrics[m]))
		}
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best, ok := sweep.Best(points, sweepMetric)
	if !ok {
		return nil
	}
	if v, ok := best.Metrics[sweepMetric]; !ok || math.IsNaN(v) || v < 0 {
		fmt.Printf("\nno point produced a usable %s\n", sweepMetric)
		return nil
	}
	fmt.Printf("\nbest %s = %.4f at", sweepMetric, best.Metrics[sweepMetric])
	for _, n := range names {
		fmt.Printf(" %s=%g", n, best.Params[n])
	}
	fmt.Println()
	return nil
}
