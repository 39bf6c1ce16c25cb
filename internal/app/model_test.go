package app

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/monigrid/internal/config"
	"github.com/five82/monigrid/internal/render"
	"github.com/five82/monigrid/internal/screen"
)

func newTestModel(t *testing.T, size screen.Sizer, files ...string) Model {
	t.Helper()
	engine, err := render.NewEngine(render.Options{Files: files, PaddingX: 1})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	scr := screen.New(size)
	if err := engine.Init(scr); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return newModel(engine, scr, 50*time.Millisecond)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_InitTicksImmediately(t *testing.T) {
	m := newTestModel(t, func() (int, int, error) { return 5, 20, nil }, "a")
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("Init returned nil cmd")
	}
	if _, ok := cmd().(tickMsg); !ok {
		t.Fatalf("Init cmd did not produce a tick")
	}
}

func TestModel_TickRendersFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m := newTestModel(t, func() (int, int, error) { return 4, 40, nil }, path)

	next, cmd := m.Update(tickMsg(time.Now()))
	model := next.(Model)
	if model.Err() != nil {
		t.Fatalf("tick failed: %v", model.Err())
	}
	if isQuit(cmd) {
		t.Fatalf("tick quit the program")
	}
	if model.State().Generation != 1 {
		t.Fatalf("Generation = %d, want 1", model.State().Generation)
	}
	view := model.View()
	for _, want := range []string{"hello", "world"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View = %q, want it to contain %q", view, want)
		}
	}
	if !model.cursorHidden {
		t.Fatalf("cursor not hidden after tick")
	}
}

func TestModel_RelayoutOnResize(t *testing.T) {
	height, width := 10, 40
	m := newTestModel(t, func() (int, int, error) { return height, width, nil }, "a", "b")

	next, _ := m.Update(tickMsg(time.Now()))
	next, _ = next.Update(tickMsg(time.Now()))
	if got := next.(Model).State().Generation; got != 1 {
		t.Fatalf("Generation after two same-size ticks = %d, want 1", got)
	}

	height, width = 20, 80
	next, _ = next.Update(tickMsg(time.Now()))
	if got := next.(Model).State().Generation; got != 2 {
		t.Fatalf("Generation after resize = %d, want 2", got)
	}
}

func TestModel_DisplayErrorQuits(t *testing.T) {
	boom := errors.New("terminal gone")
	m := newTestModel(t, func() (int, int, error) { return 0, 0, boom }, "a")

	next, cmd := m.Update(tickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Fatalf("display error did not quit")
	}
	err := next.(Model).Err()
	var dispErr *render.DisplayError
	if !errors.As(err, &dispErr) || !errors.Is(err, boom) {
		t.Fatalf("Err = %v, want DisplayError wrapping %v", err, boom)
	}
	if next.View() != "" {
		t.Fatalf("View after fatal error = %q, want empty", next.View())
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t, func() (int, int, error) { return 5, 5, nil }, "a")
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	}
	for _, k := range keys {
		if _, cmd := m.Update(k); !isQuit(cmd) {
			t.Fatalf("key %q did not quit", k.String())
		}
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}); cmd != nil {
		t.Fatalf("key x produced a command")
	}
}

func TestModel_IgnoresOtherMessages(t *testing.T) {
	m := newTestModel(t, func() (int, int, error) { return 5, 5, nil }, "a")
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	if cmd != nil {
		t.Fatalf("WindowSizeMsg produced a command")
	}
	if next.(Model).State().Generation != 0 {
		t.Fatalf("WindowSizeMsg ran a tick")
	}
}

func TestRun_ConfigErrorBeforeTerminal(t *testing.T) {
	err := Run(context.Background(), Options{ConfigPath: filepath.Join(t.TempDir(), "none.toml")})
	var cfgErr *config.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Run error = %v, want *config.ConfigError", err)
	}
}

func TestRun_RequiresTerminal(t *testing.T) {
	out, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer out.Close()

	err = Run(context.Background(), Options{
		Files:      []string{"a.log"},
		ConfigPath: filepath.Join(t.TempDir(), "none.toml"),
		Output:     out,
	})
	var dispErr *render.DisplayError
	if !errors.As(err, &dispErr) {
		t.Fatalf("Run error = %v, want *render.DisplayError", err)
	}
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	prefix, flags := log.Prefix(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix(prefix)
		log.SetFlags(flags)
	})

	path := filepath.Join(t.TempDir(), "monigrid.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	log.Printf("probe %d", 42)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "probe 42") {
		t.Fatalf("log file = %q, want the probe message", data)
	}
}
