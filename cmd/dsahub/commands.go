package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/export"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/input"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/lesson"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/logging"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/metrics"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/player"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/session"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/storage"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/viz"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
		cfg = loaded
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// openLogger logs to the configured file, or to stderr with --verbose.
func openLogger(cfg *config.Config) (logging.Logger, func() error, error) {
	lc := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File}
	if verbose {
		lc = logging.Config{Level: "debug", Format: cfg.Log.Format, Output: os.Stderr}
	}
	return logging.Open(lc)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// flagDataset collects the dataset flags the user actually set.
func flagDataset(cmd *cobra.Command, cfg *config.Config) (config.Dataset, error) {
	var ds config.Dataset
	flags := cmd.Flags()
	if flags.Changed("values") {
		v, err := input.ParseIntsLimit(values, cfg.MaxValues)
		if err != nil {
			return ds, err
		}
		ds.Values = v
	}
	if flags.Changed("target") {
		ds.Target = config.IntPtr(target)
	}
	if flags.Changed("window") {
		ds.Window = window
	}
	if flags.Changed("mode") {
		ds.Mode = mode
	}
	if flags.Changed("start") {
		ds.Start = start
	}
	if flags.Changed("k") {
		ds.K = k
	}
	if flags.Changed("workers") {
		ds.Workers = workers
	}
	if flags.Changed("threshold") {
		ds.Threshold = threshold
	}
	if flags.Changed("produce") {
		ds.ProduceRate = produce
	}
	if flags.Changed("consume") {
		ds.ConsumeRate = consume
	}
	return ds, nil
}

func writeOut(write func(io.Writer) error) error {
	if outFile == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", outFile)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outFile)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// The TUI owns the terminal, so logs only go to the configured file.
	log, closeLog, err := logging.Open(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer closeLog()

	opts := viz.Options{
		Config:    cfg,
		Registry:  lesson.NewRegistry(),
		Logger:    log,
		Observers: []player.Observer{player.LogObserver{Log: log}},
	}
	if len(args) == 1 {
		opts.Lesson = args[0]
	}
	if watch {
		if configFile == "" {
			return errors.New("--watch needs --config")
		}
		opts.WatchPath = configFile
	}

	ctx, stop := signalContext()
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Metrics.Addr != "" {
		collector, err := metrics.NewCollector(prometheus.NewRegistry())
		if err != nil {
			return err
		}
		opts.Observers = append(opts.Observers, collector)
		g.Go(func() error { return collector.Serve(gctx, cfg.Metrics.Addr) })
	}
	g.Go(func() error {
		defer stop()
		return viz.Run(gctx, opts)
	})
	return g.Wait()
}

func listLessons(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tFRAMES\tLENGTH\tCOMPLEXITY")
	for _, l := range lesson.NewRegistry().List() {
		frames, length := lessonLength(cfg, l)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.ID(), l.Title(), frames, length, l.Deck().Complexity)
	}
	return w.Flush()
}

// lessonLength is the frame count and paced play time of a lesson's
// configured dataset, or "-" when it does not build.
func lessonLength(cfg *config.Config, l lesson.Lesson) (string, string) {
	ds, err := session.Resolve(cfg, l.ID(), "", config.Dataset{})
	if err != nil {
		return "-", "-"
	}
	seq, err := l.Build(ds)
	if err != nil {
		return "-", "-"
	}
	length := player.Scale(step.Duration(seq), cfg.Speed)
	return fmt.Sprint(step.Len(seq)), length.Round(100 * time.Millisecond).String()
}

func printDeck(cmd *cobra.Command, args []string) error {
	l, err := lesson.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(strings.ToUpper(l.Title()))
	fmt.Println()
	fmt.Println(l.Deck().String())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Printf("no presets for lesson: %s\n", args[0])
		return nil
	}
	fmt.Printf("presets for %s:\n", args[0])
	for _, p := range presets {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	log, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	l, err := lesson.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}
	flags, err := flagDataset(cmd, cfg)
	if err != nil {
		return err
	}
	ds, err := session.Resolve(cfg, l.ID(), preset, flags)
	if err != nil {
		return err
	}
	sess := session.New(cfg)
	if err := sess.Setup(l, ds); err != nil {
		return err
	}

	th := viz.GetTheme(cfg.Theme)
	observers := []player.Observer{
		player.FuncObserver(func(_ string, f step.Frame) {
			fmt.Println(viz.RenderFrame(f, th, bars))
		}),
		player.LogObserver{Log: log},
	}

	ctx, stop := signalContext()
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	addr := metricsAddr
	if addr == "" {
		addr = cfg.Metrics.Addr
	}
	if addr != "" {
		collector, err := metrics.NewCollector(prometheus.NewRegistry())
		if err != nil {
			return err
		}
		observers = append(observers, collector)
		g.Go(func() error { return collector.Serve(gctx, addr) })
	}

	fmt.Printf("%s\n\n", strings.ToUpper(l.Title()))
	res, runErr := sess.Run(gctx, sess.Player(), observers...)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		stop()
		_ = g.Wait()
		return runErr
	}
	printSummary(res)

	if record {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	if addr != "" && runErr == nil {
		fmt.Printf("metrics on http://%s/metrics, ctrl-c to stop\n", addr)
		<-gctx.Done()
	}
	stop()
	return g.Wait()
}

func printSummary(res *session.Result) {
	if res.Completed {
		fmt.Printf("completed in %v\n", res.Elapsed.Round(time.Millisecond))
	} else {
		fmt.Printf("stopped after %d frames\n", len(res.Frames))
	}
	keys := make([]string, 0, len(res.Summary))
	for name := range res.Summary {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	fmt.Println("\nsummary:")
	for _, name := range keys {
		fmt.Printf("  %s: %d\n", name, res.Summary[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLESSON\tTIME\tFRAMES\tCOMPLETED\tELAPSED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\t%dms\n",
			run.ID,
			run.Lesson,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Completed,
			run.ElapsedMS,
		)
	}
	return w.Flush()
}

func replayRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(meta.ID)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	th := viz.GetTheme(cfg.Theme)
	fmt.Printf("replaying %s (%s, %d frames)\n\n", meta.ID, meta.Lesson, len(frames))
	p := player.New(meta.Lesson, cfg.Speed)
	_, err = p.Run(ctx, step.FromFrames(frames), player.FuncObserver(func(_ string, f step.Frame) {
		fmt.Println(viz.RenderFrame(f, th, bars))
	}))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func chartRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(meta.ID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return errors.New("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("lesson: %s\n", meta.Lesson)
	fmt.Printf("frames: %d\n\n", len(frames))

	plotted := 0
	if series := frames[len(frames)-1].Series; len(series) > 1 {
		fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(80), asciigraph.Caption(seriesCaption(meta.Lesson))))
		fmt.Println()
		plotted++
	}

	// Counters that change over the run, in order of first appearance.
	const maxPlots = 4
	for _, name := range counterNames(frames) {
		if plotted >= maxPlots {
			break
		}
		data := counterSeries(frames, name)
		if len(data) < 2 || flat(data) {
			continue
		}
		fmt.Println(asciigraph.Plot(data, asciigraph.Height(6), asciigraph.Width(80), asciigraph.Caption(name+" per frame")))
		fmt.Println()
		plotted++
	}
	if plotted == 0 {
		fmt.Println("nothing changes over this run")
	}
	return nil
}

func seriesCaption(lessonID string) string {
	switch lessonID {
	case "sliding-window":
		return "window sum"
	case "stack-queue":
		return "buffer depth (consumer lag)"
	}
	return "series"
}

func counterNames(frames []step.Frame) []string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range frames {
		for _, c := range f.Counters {
			if !seen[c.Name] {
				seen[c.Name] = true
				names = append(names, c.Name)
			}
		}
	}
	return names
}

func counterSeries(frames []step.Frame, name string) []float64 {
	data := make([]float64, 0, len(frames))
	for _, f := range frames {
		if v, ok := f.Counter(name); ok {
			data = append(data, float64(v))
		}
	}
	return data
}

func flat(data []float64) bool {
	for _, v := range data[1:] {
		if v != data[0] {
			return false
		}
	}
	return true
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	name := theme
	if name == "" {
		name = cfg.Theme
	}
	svg, err := renderSVG(frames, frameNo, viz.GetTheme(name).Palette())
	if err != nil {
		return err
	}
	return writeOut(func(w io.Writer) error {
		_, err := io.WriteString(w, svg)
		return err
	})
}

// renderSVG draws frame idx (the last one when out of range), or with
// --series the series it carries.
func renderSVG(frames []step.Frame, idx int, palette export.Palette) (string, error) {
	if len(frames) == 0 {
		return "", errors.New("no frames to export")
	}
	if idx < 0 || idx >= len(frames) {
		idx = len(frames) - 1
	}
	if !seriesOnly {
		return export.FrameSVG(frames[idx], width, height, palette), nil
	}
	svg := export.SeriesSVG(frames[idx].Series, width, height, palette)
	if svg == "" {
		return "", errors.Errorf("frame %d has no series to plot", idx)
	}
	return svg, nil
}

func exportDOT(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags, err := flagDataset(cmd, cfg)
	if err != nil {
		return err
	}
	ds, err := session.Resolve(cfg, "graph", preset, flags)
	if err != nil {
		return err
	}
	g, err := lesson.GraphFor(ds)
	if err != nil {
		return err
	}
	walk, err := lesson.Walk(ds)
	if err != nil {
		return err
	}
	traversal := ds.Mode
	if traversal == "" {
		traversal = "bfs"
	}
	title := fmt.Sprintf("%s from %s: %s", traversal, walk.Order[0], strings.Join(walk.Order, " → "))
	return writeOut(func(w io.Writer) error {
		return export.GraphDOT(w, g, walk.Order, title)
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	return writeOut(func(w io.Writer) error {
		return st.ExportJSON(w, args[0])
	})
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "dsahub.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return errors.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.Sample()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
