// Package main runs the gridwing terminal preview: it builds the grid
// tree, feeds it a demo command stream, and paints it through tcell.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gridwing/gridwing/internal/config"
	"github.com/gridwing/gridwing/internal/event"
	"github.com/gridwing/gridwing/internal/highlight"
	"github.com/gridwing/gridwing/internal/input"
	"github.com/gridwing/gridwing/internal/logging"
	"github.com/gridwing/gridwing/internal/render"
	"github.com/gridwing/gridwing/internal/ui/command"
	"github.com/gridwing/gridwing/internal/ui/grid"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

type options struct {
	configPath string
	logLevel   string
	showVer    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	if opts.showVer {
		fmt.Printf("gridwing %s\n", version)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level := cfg.Logging.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(level),
		Output: os.Stderr,
		Prefix: "gridwing",
	})
	logging.SetDefault(log)

	bus := event.NewBus()

	hl := highlight.NewTable()
	fg, bg, special := cfg.DefaultColors()
	hl.SetDefaultColors(fg, bg, special)

	tree := grid.NewTree(grid.Config{
		Metrics:    cfg.Metrics(),
		Multigrid:  cfg.UI.Multigrid,
		Highlights: hl,
		Bus:        bus,
		Logger:     log,
	})
	tree.SetMouseEnabled(cfg.UI.Mouse)

	interp := command.NewInterpreter(tree, log)
	router := input.NewRouter(tree, bus, log)

	renderer, err := render.New(tree, router, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := renderer.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer renderer.Fini()

	if opts.configPath != "" {
		watcher := config.NewWatcher(opts.configPath, func(next config.Config) {
			// Theme/font changes invalidate everything; the renderer
			// picks the change up on its next frame.
			nfg, nbg, nsp := next.DefaultColors()
			hl.SetDefaultColors(nfg, nbg, nsp)
			tree.SetMetrics(next.Metrics())
			bus.Publish(event.TopicThemeChanged, next)
		}, log)
		if err := watcher.Start(); err != nil {
			log.Warn("config watch unavailable: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	cols, rows := renderer.Size()
	m := tree.Metrics()
	tree.SetMeasuredPixelSize(m.PixelWidth(cols), m.PixelHeight(rows))

	feedDemo(interp, rows, cols)

	for {
		renderer.Frame()
		if !renderer.HandleEvent(renderer.PollEvent()) {
			return 0
		}
	}
}

// feedDemo drives the interpreter with a small command stream: a
// filled root grid, a floating window, and the cursor parked in it.
func feedDemo(interp *command.Interpreter, rows, cols int) {
	interp.Apply(command.Resize{Grid: grid.RootGridID, Rows: rows, Cols: cols})

	for row := 0; row < rows; row++ {
		text := fmt.Sprintf("line %d", row)
		runs := make([]grid.CellRun, 0, len(text)+1)
		for _, r := range text {
			runs = append(runs, grid.CellRun{Text: string(r)})
		}
		runs = append(runs, grid.CellRun{HlID: -1, Text: " ", Repeat: cols - len(text)})
		interp.Apply(command.Line{Grid: grid.RootGridID, Rows: []command.RowUpdate{
			{Row: row, Runs: runs},
		}})
	}

	const floatID = 2
	interp.Apply(command.Resize{Grid: floatID, Rows: 5, Cols: 24})
	interp.Apply(command.WinFloatPos{
		Grid:       floatID,
		Anchor:     command.AnchorNW,
		AnchorGrid: grid.RootGridID,
		Row:        2,
		Col:        4,
		Focusable:  true,
		ZIndex:     50,
	})
	for row := 0; row < 5; row++ {
		interp.Apply(command.Line{Grid: floatID, Rows: []command.RowUpdate{
			{Row: row, Runs: []grid.CellRun{{Text: "*", Repeat: 24}}},
		}})
	}
	interp.Apply(command.CursorGoto{Grid: floatID, Row: 1, Col: 1})
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", defaultConfigPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.showVer, "version", false, "Show version information")
	flag.Parse()
	return opts
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/gridwing/config.toml"
}
