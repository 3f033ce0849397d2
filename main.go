package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"Sketchpad/internal/config"
	"Sketchpad/internal/ui"
)

type options struct {
	configPath string
	title      string
	width      int
	height     int
	logLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg = applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger.With("component", "gg"))

	ui.RunApp(cfg, logger)
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	flag.StringVar(&opts.title, "title", "", "Window title")
	flag.IntVar(&opts.width, "width", 0, "Surface width in pixels (0 = fill the window)")
	flag.IntVar(&opts.height, "height", 0, "Surface height in pixels (0 = fill the window)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Sketchpad - freehand drawing surface\n\n")
		fmt.Fprintf(os.Stderr, "Usage: sketchpad [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDrag with the primary button or a finger to paint.\n")
		fmt.Fprintf(os.Stderr, "Ctrl/Cmd+Delete clears the surface.\n")
	}
	flag.Parse()
	return opts
}

// applyFlags overrides file settings with the flags that were set.
func applyFlags(cfg config.Config, opts options) config.Config {
	if opts.title != "" {
		cfg.Title = opts.title
	}
	if opts.width != 0 {
		cfg.Width = opts.width
	}
	if opts.height != 0 {
		cfg.Height = opts.height
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return cfg
}
