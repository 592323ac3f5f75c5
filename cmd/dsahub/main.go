package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	verbose    bool
	// play flags
	values      string
	target      int
	window      int
	mode        string
	start       string
	k           int
	workers     int
	threshold   int
	produce     int
	consume     int
	speed       float64
	preset      string
	record      bool
	metricsAddr string
	bars        bool
	// tui flags
	watch bool
	// export flags
	outFile    string
	theme      string
	width      int
	height     int
	frameNo    int
	seriesOnly bool
)

// main registers the commands and runs the root. Without a subcommand the
// interactive TUI starts.
func main() {
	rootCmd := &cobra.Command{
		Use:           "dsahub [lesson]",
		Short:         "data structures and algorithms, animated in the terminal",
		Args:          cobra.MaximumNArgs(1),
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for recorded runs (default from config)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logs on stderr")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list lessons",
		Args:  cobra.NoArgs,
		RunE:  listLessons,
	}

	deckCmd := &cobra.Command{
		Use:   "deck [lesson]",
		Short: "print a lesson's theory deck",
		Args:  cobra.ExactArgs(1),
		RunE:  printDeck,
	}

	playCmd := &cobra.Command{
		Use:   "play [lesson]",
		Short: "play a lesson in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&values, "values", "", "comma separated integers, e.g. \"40, 30, 60\"")
	playCmd.Flags().IntVar(&target, "target", 0, "binary search target")
	playCmd.Flags().IntVar(&window, "window", 0, "sliding window size")
	playCmd.Flags().StringVar(&mode, "mode", "", "bfs|dfs for graph, queue|stack for stack-queue")
	playCmd.Flags().StringVar(&start, "start", "", "graph start vertex")
	playCmd.Flags().IntVar(&k, "k", 0, "top-k result size")
	playCmd.Flags().IntVar(&workers, "workers", 0, "top-k worker count")
	playCmd.Flags().IntVar(&threshold, "threshold", 0, "backpressure alert threshold")
	playCmd.Flags().IntVar(&produce, "produce", 0, "items produced per tick")
	playCmd.Flags().IntVar(&consume, "consume", 0, "items consumed per tick")
	playCmd.Flags().Float64Var(&speed, "speed", 0, "playback speed (0.25 to 8)")
	playCmd.Flags().StringVar(&preset, "preset", "", "use a preset dataset")
	playCmd.Flags().BoolVar(&record, "record", false, "save the run to the data directory")
	playCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	playCmd.Flags().BoolVar(&bars, "bars", false, "draw values as bars")

	presetsCmd := &cobra.Command{
		Use:   "presets [lesson]",
		Short: "list available presets for a lesson",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "replay a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}
	replayCmd.Flags().Float64Var(&speed, "speed", 0, "playback speed (0.25 to 8)")
	replayCmd.Flags().BoolVar(&bars, "bars", false, "draw values as bars")

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "plot a recorded run's series",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a frame of a recorded run, or its series, as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&frameNo, "frame", -1, "frame index (default last)")
	exportSVGCmd.Flags().StringVar(&theme, "theme", "", "colour theme")
	exportSVGCmd.Flags().IntVar(&width, "width", 640, "image width")
	exportSVGCmd.Flags().IntVar(&height, "height", 320, "image height")
	exportSVGCmd.Flags().BoolVar(&seriesOnly, "series", false, "plot the frame's series (sliding-window sums, stack-queue depth) as a line")

	exportDOTCmd := &cobra.Command{
		Use:   "export-dot",
		Short: "export the traversal graph as DOT, coloured by visit order",
		Args:  cobra.NoArgs,
		RunE:  exportDOT,
	}
	exportDOTCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportDOTCmd.Flags().StringVar(&mode, "mode", "", "bfs or dfs")
	exportDOTCmd.Flags().StringVar(&start, "start", "", "start vertex")
	exportDOTCmd.Flags().StringVar(&preset, "preset", "", "use a preset graph")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a recorded run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file with every default spelled out",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(listCmd, deckCmd, playCmd, presetsCmd, runsCmd, replayCmd, chartCmd, exportSVGCmd, exportDOTCmd, exportJSONCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
