// Package app is the composition root of monigrid.
//
// # Overview
//
// Run wires configuration, logging, the render engine and the terminal
// screen together and hands them to a Bubble Tea program:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Resolve()    flags > config file > defaults
//	       ├─────> setupLogging()      --log file, or discard
//	       ├─────> isatty check        refuse to draw into a pipe
//	       ├─────> render.NewEngine()  grid size from the file count
//	       ├─────> screen.New()        canvas sized by the terminal
//	       └─────> tea.Program.Run()   alt screen, blocks until exit
//
// # Refresh Loop
//
// Model.Init emits a tick immediately. Each tick message runs one
// render.Engine.Tick against the screen and schedules the next tick with
// tea.Tick after the refresh interval. Because the next tick is only
// scheduled once the current one finished, refreshes never overlap and all
// layout state stays on Bubble Tea's update goroutine.
//
// # Shutdown
//
// The program runs with Bubble Tea's own signal handling disabled. Callers
// cancel ctx (main does so on SIGINT and SIGTERM), which quits the program;
// pressing q or ctrl+c does the same. Bubble Tea leaves the alternate screen
// and restores the terminal mode on every exit path. A *render.DisplayError
// from a tick also quits the program and is returned from Run.
package app
