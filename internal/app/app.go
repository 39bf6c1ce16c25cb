package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/five82/monigrid/internal/config"
	"github.com/five82/monigrid/internal/render"
	"github.com/five82/monigrid/internal/screen"
)

// Options configure a monigrid run.
type Options struct {
	Files      []string
	ConfigPath string // empty uses ~/.config/monigrid/config.toml
	LogPath    string // empty discards diagnostic logging
	Overrides  config.Overrides
	Output     *os.File // nil uses os.Stdout
}

// Run tiles the files across the terminal and refreshes them until ctx is
// cancelled, the user quits, or the display fails.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Resolve(opts.ConfigPath, opts.Files, opts.Overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := setupLogging(opts.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return &render.DisplayError{Op: "open terminal", Err: errors.New("output is not a terminal")}
	}

	engine, err := render.NewEngine(render.Options{
		Files:    cfg.Files,
		PaddingX: cfg.PaddingX,
		PaddingY: cfg.PaddingY,
		Colors:   cfg.Colors,
	})
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}

	scr := screen.New(screen.TerminalSizer(out))
	if err := engine.Init(scr); err != nil {
		return err
	}

	log.Printf("monitoring %d files in a %dx%d grid every %v", len(cfg.Files), engine.GridSize(), engine.GridSize(), cfg.Refresh)

	program := tea.NewProgram(
		newModel(engine, scr, cfg.Refresh),
		tea.WithAltScreen(),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			program.Quit()
		case <-done:
		}
	}()

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// setupLogging routes the standard logger to path. The grid owns the
// terminal, so without a path log output is dropped.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "monigrid")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
