package app

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/monigrid/internal/render"
	"github.com/five82/monigrid/internal/screen"
)

const defaultRefresh = 100 * time.Millisecond

type tickMsg time.Time

// tickCmd schedules the next refresh after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model drives the render engine from Bubble Tea's update loop. Every tick
// message runs one engine tick and re-arms the timer, so ticks never overlap.
type Model struct {
	engine       *render.Engine
	screen       *screen.Screen
	state        render.State
	interval     time.Duration
	keys         keyMap
	cursorHidden bool
	err          error
}

func newModel(engine *render.Engine, scr *screen.Screen, interval time.Duration) Model {
	if interval <= 0 {
		interval = defaultRefresh
	}
	return Model{
		engine:   engine,
		screen:   scr,
		interval: interval,
		keys:     defaultKeyMap(),
	}
}

// Init implements tea.Model. The first refresh runs immediately.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	st, err := m.engine.Tick(m.screen, m.state)
	if err != nil {
		log.Printf("render failed: %v", err)
		m.err = err
		return m, tea.Quit
	}
	if st.Generation != m.state.Generation {
		log.Printf("layout %d: terminal %dx%d", st.Generation, st.Height, st.Width)
	}
	m.state = st

	cmds := []tea.Cmd{tickCmd(m.interval)}
	if !m.screen.CursorVisible() && !m.cursorHidden {
		m.cursorHidden = true
		cmds = append(cmds, tea.HideCursor)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return ""
	}
	return m.screen.Frame()
}

// State returns the render state after the last successful tick.
func (m Model) State() render.State { return m.state }

// Err returns the fatal error that stopped the program, if any.
func (m Model) Err() error { return m.err }
