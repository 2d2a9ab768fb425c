package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/techsphere/internal/config"
	"github.com/san-kum/techsphere/internal/scene"
)

var ErrUnknownParam = errors.New("sweep: unknown parameter")

// Param is one swept configuration field and the values it takes.
type Param struct {
	Name   string
	Values []float64
}

// ParseParam parses "name=v1,v2,...".
func ParseParam(s string) (Param, error) {
	name, list, ok := strings.Cut(s, "=")
	if !ok || name == "" || list == "" {
		return Param{}, fmt.Errorf("sweep: expected name=v1,v2,... got %q", s)
	}
	if _, ok := setters[name]; !ok {
		return Param{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownParam, name, ParamNames())
	}
	p := Param{Name: name}
	for _, f := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Param{}, fmt.Errorf("sweep: %s: %w", name, err)
		}
		p.Values = append(p.Values, v)
	}
	return p, nil
}

var setters = map[string]func(*config.Config, float64){
	"range":    func(c *config.Config, v float64) { c.ElasticRange = v },
	"polar":    func(c *config.Config, v float64) { c.InitialPolar = v },
	"radius":   func(c *config.Config, v float64) { c.Radius = v },
	"icons":    func(c *config.Config, v float64) { c.Icons = int(v) },
	"fps":      func(c *config.Config, v float64) { c.FPS = int(v) },
	"duration": func(c *config.Config, v float64) { c.Duration = v },
}

// ParamNames lists the fields that can be swept.
func ParamNames() []string {
	names := make([]string, 0, len(setters))
	for n := range setters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Point is the outcome of one grid cell.
type Point struct {
	Params  map[string]float64
	Metrics map[string]float64
}

type Grid struct {
	params  []Param
	workers int
}

// NewGrid returns a grid over params. workers <= 0 uses GOMAXPROCS.
func NewGrid(params []Param, workers int) (*Grid, error) {
	for _, p := range params {
		if _, ok := setters[p.Name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParam, p.Name)
		}
		if len(p.Values) == 0 {
			return nil, fmt.Errorf("sweep: %s has no values", p.Name)
		}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Grid{params: params, workers: workers}, nil
}

// Points enumerates the cartesian product of the parameter values, first
// parameter varying slowest.
func (g *Grid) Points() []map[string]float64 {
	var out []map[string]float64
	g.enumerate(0, map[string]float64{}, &out)
	return out
}

func (g *Grid) enumerate(depth int, current map[string]float64, out *[]map[string]float64) {
	if depth == len(g.params) {
		*out = append(*out, current)
		return
	}
	p := g.params[depth]
	for _, v := range p.Values {
		next := make(map[string]float64, len(current)+1)
		for k, cv := range current {
			next[k] = cv
		}
		next[p.Name] = v
		g.enumerate(depth+1, next, out)
	}
}

// Run evaluates every grid point against base with the default metrics.
// The first failing point cancels the rest. Results keep Points order.
func (g *Grid) Run(ctx context.Context, base *config.Config) ([]Point, error) {
	if base == nil {
		base = config.DefaultConfig()
	}
	cells := g.Points()
	results := make([]Point, len(cells))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, params := range cells {
		i, params := i, params
		eg.Go(func() error {
			cfg := *base
			for name, v := range params {
				setters[name](&cfg, v)
			}
			metrics, err := evaluate(ctx, &cfg)
			if err != nil {
				return fmt.Errorf("sweep: point %v: %w", params, err)
			}
			results[i] = Point{Params: params, Metrics: metrics}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func evaluate(ctx context.Context, cfg *config.Config) (map[string]float64, error) {
	sc, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	for _, m := range scene.DefaultMetrics() {
		sc.AddMetric(m)
	}
	res, err := sc.Run(ctx, cfg.SceneConfig())
	if err != nil {
		return nil, err
	}
	return res.Metrics, nil
}

// Best returns the point with the lowest value of metric. Negative values
// mean the metric never triggered (settle_time) and rank last, as do
// missing or NaN values; among those the first point in grid order wins.
// It reports false only for an empty slice.
func Best(points []Point, metric string) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	best, bestVal := points[0], math.Inf(1)
	for _, p := range points {
		v, ok := p.Metrics[metric]
		if !ok || math.IsNaN(v) || v < 0 {
			continue
		}
		if v < bestVal {
			best, bestVal = p, v
		}
	}
	return best, true
}
