package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/techsphere/internal/config"
	"github.com/san-kum/techsphere/internal/export"
	"github.com/san-kum/techsphere/internal/layout"
	"github.com/san-kum/techsphere/internal/log"
	"github.com/san-kum/techsphere/internal/scene"
	"github.com/san-kum/techsphere/internal/storage"
	"github.com/san-kum/techsphere/internal/viz"
)

var (
	dataDir  string
	logLevel string
	// Scene parameters
	preset       string
	configFile   string
	numIcons     int
	radius       float64
	elasticRange float64
	fps          int
	duration     float64
	polar        float64
	theme        string
	saveConfig   string
	// layout
	format  string
	bobTime float64
	// export
	outFile string
	kind    string
	svgW    int
	svgH    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "techsphere",
		Short: "technology cloud layout and orbit lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".techsphere", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "print sphere placements",
		RunE:  printLayout,
	}
	layoutCmd.Flags().IntVarP(&numIcons, "icons", "n", config.DefaultIcons, "number of icons")
	layoutCmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "sphere radius")
	layoutCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	layoutCmd.Flags().Float64Var(&bobTime, "t", 0, "apply the floating animation at this time (s)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless scene and store the frames",
		RunE:  runScene,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().StringVar(&saveConfig, "save-config", "", "write the resolved config to this path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot polar angle and azimuth of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the last frame of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().StringVar(&kind, "kind", "cloud", "what to draw (cloud, canvas, polar)")
	exportSVGCmd.Flags().StringVar(&theme, "theme", "sky", "color theme")
	exportSVGCmd.Flags().IntVar(&svgW, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgH, "height", 600, "image height")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view of the cloud",
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(layoutCmd, runCmd, listCmd, plotCmd, exportCSVCmd, exportSVGCmd, liveCmd, presetsCmd, newSweepCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVarP(&numIcons, "icons", "n", config.DefaultIcons, "number of icons")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "sphere radius")
	cmd.Flags().Float64Var(&elasticRange, "range", config.DefaultRange, "elastic half-width around the rest angle (rad)")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
	cmd.Flags().Float64Var(&polar, "polar", config.DefaultConfig().InitialPolar, "initial polar angle (rad)")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme")
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if preset != "" && fileCfg.Preset == "custom" {
			fileCfg.Preset = preset
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("icons") {
		cfg.Icons = numIcons
	}
	if flags.Changed("radius") {
		cfg.Radius = radius
	}
	if flags.Changed("range") {
		cfg.ElasticRange = elasticRange
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("polar") {
		cfg.InitialPolar = polar
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printLayout(cmd *cobra.Command, args []string) error {
	pts, err := layout.Generate(numIcons, radius)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("t") {
		pts = layout.Animate(pts, bobTime)
	}
	icons := layout.Icons(numIcons)

	switch format {
	case "json":
		type row struct {
			layout.Icon
			Index    int         `json:"index"`
			Position layout.Vec3 `json:"position"`
		}
		rows := make([]row, len(pts))
		for i, p := range pts {
			rows[i] = row{Icon: icons[i], Index: i, Position: p}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)

	case "csv":
		w := csv.NewWriter(os.Stdout)
		if err := w.Write([]string{"index", "name", "x", "y", "z"}); err != nil {
			return err
		}
		for i, p := range pts {
			rec := []string{fmt.Sprint(i), icons[i].Name,
				fmt.Sprintf("%.6f", p.X), fmt.Sprintf("%.6f", p.Y), fmt.Sprintf("%.6f", p.Z)}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()

	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tICON\tX\tY\tZ")
		for i, p := range pts {
			fmt.Fprintf(w, "%d\t%s\t%.3f\t%.3f\t%.3f\n", i, icons[i].Name, p.X, p.Y, p.Z)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		sp := layout.Spacing(pts)
		fmt.Printf("\nnearest neighbour separation (rad): min %.4f  mean %.4f  max %.4f\n", sp.Min, sp.Mean, sp.Max)
		return nil

	default:
		return fmt.Errorf("unknown format: %s (available: table, csv, json)", format)
	}
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if saveConfig != "" {
		if err := config.Save(saveConfig, cfg); err != nil {
			return err
		}
		log.Info("config saved", "path", saveConfig)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sc, err := cfg.Build()
	if err != nil {
		return err
	}
	for _, m := range scene.DefaultMetrics() {
		sc.AddMetric(m)
	}

	fmt.Printf("running %s scene...\n", cfg.Preset)
	log.Debug("scene", "icons", cfg.Icons, "radius", cfg.Radius, "range", cfg.ElasticRange,
		"fps", cfg.FPS, "duration", cfg.Duration, "events", len(cfg.Script))
	start := time.Now()

	result, err := sc.Run(context.Background(), cfg.SceneConfig())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Preset:       cfg.Preset,
		Icons:        cfg.Icons,
		Radius:       cfg.Radius,
		ElasticRange: cfg.ElasticRange,
		FPS:          cfg.FPS,
		Duration:     cfg.Duration,
	}, result)
	if err != nil {
		return err
	}
	log.Info("run stored", "id", runID, "dir", dataDir)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(result.Frames))
	fmt.Println("\nmetrics:")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tICONS\tRANGE\tFPS\tDURATION\tCLAMPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%d\t%.2fs\t%.0f\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Icons,
			run.ElasticRange,
			run.FPS,
			run.Duration,
			run.Metrics["clamp_hits"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("frames: %d\n\n", len(frames))

	polarSeries := make([]float64, len(frames))
	azimuth := make([]float64, len(frames))
	for i, f := range frames {
		polarSeries[i] = f.Polar
		azimuth[i] = f.Azimuth
	}

	rest := frames[0].Polar - frames[0].Offset
	lo := constant(len(frames), rest-meta.ElasticRange)
	hi := constant(len(frames), rest+meta.ElasticRange)

	fmt.Println(asciigraph.PlotMany([][]float64{polarSeries, lo, hi},
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("polar angle (rad) with elastic bounds"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(azimuth,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("azimuth (rad)"),
	))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := storage.WriteFrames(csv.NewWriter(out), frames); err != nil {
		return err
	}
	if outFile != "" {
		log.Info("frames exported", "run", runID, "path", outFile, "rows", len(frames))
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("run %s has no frames", runID)
	}
	last := frames[len(frames)-1]
	th := viz.GetTheme(theme)

	pts := layout.Animate(layout.Sphere(meta.Icons, meta.Radius), last.Time)
	cam := viz.NewCamera()
	cam.SetOrbit(last.Polar, last.Azimuth)

	var svg string
	switch kind {
	case "cloud":
		icons := layout.Icons(meta.Icons)
		names := make([]string, len(icons))
		for i, ic := range icons {
			names[i] = ic.Name
		}
		svg = export.CloudToSVG(pts, names, cam, svgW, svgH, th)
	case "canvas":
		c := viz.NewCanvas(svgW/8, svgH/16)
		viz.RenderCloud(c, pts, cam)
		svg = export.CanvasToSVG(c, 4, th)
	case "polar":
		times := make([]float64, len(frames))
		values := make([]float64, len(frames))
		for i, f := range frames {
			times[i], values[i] = f.Time, f.Polar
		}
		rest := frames[0].Polar - frames[0].Offset
		svg = export.SeriesToSVG(times, values, []float64{rest - meta.ElasticRange, rest + meta.ElasticRange}, svgW, svgH, th)
	default:
		return fmt.Errorf("unknown kind: %s (available: cloud, canvas, polar)", kind)
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	log.Info("svg exported", "run", runID, "kind", kind, "path", outFile)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sc, err := cfg.Build()
	if err != nil {
		return err
	}

	m := viz.NewModel(sc, cfg.FPS, cfg.Theme, cfg.Preset)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tICONS\tRADIUS\tRANGE\tFPS\tDURATION\tEVENTS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.2f\t%d\t%.1fs\t%d\n",
			name, p.Icons, p.Radius, p.ElasticRange, p.FPS, p.Duration, len(p.Script))
	}
	return w.Flush()
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
