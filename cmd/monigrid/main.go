package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/monigrid/internal/app"
	"github.com/five82/monigrid/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	paddingX := flag.Int("padding-x", 1, "blank columns between panes (clamped to >= 0)")
	flag.IntVar(paddingX, "px", 1, "shorthand for -padding-x")
	paddingY := flag.Int("padding-y", 0, "blank rows between panes (clamped to >= 0)")
	flag.IntVar(paddingY, "py", 0, "shorthand for -padding-y")
	refresh := flag.Float64("refresh", 0.1, "refresh interval in seconds")
	flag.Float64Var(refresh, "r", 0.1, "shorthand for -refresh")
	configPath := flag.String("config", "", "override config path (optional)")
	logPath := flag.String("log", "", "write diagnostic log to this file (optional)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: monigrid [flags] FILE [FILE...]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return 2
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var overrides config.Overrides
	if set["padding-x"] || set["px"] {
		overrides.PaddingX = paddingX
	}
	if set["padding-y"] || set["py"] {
		overrides.PaddingY = paddingY
	}
	if set["refresh"] || set["r"] {
		overrides.Refresh = refresh
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		Files:      flag.Args(),
		ConfigPath: *configPath,
		LogPath:    *logPath,
		Overrides:  overrides,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "monigrid: %v\n", err)
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			return 2
		}
		return 1
	}
	return 0
}
