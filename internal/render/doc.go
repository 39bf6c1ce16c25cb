// Package render implements the refresh loop that draws tracked files into
// the grid computed by package layout.
//
// # Tick
//
// The loop is an explicit state transition, Engine.Tick(display, state),
// invoked at a fixed interval by the caller. One tick:
//
//  1. Queries the terminal size. When it differs from the size in state, or
//     no layout exists yet, the grid is recomputed and every binding
//     (file, pane, surface) is rebuilt as one batch. An unchanged size
//     reuses the existing bindings.
//  2. For each file, in argument order, reads at most contentHeight-1
//     trailing lines, builds exactly paneHeight rows (the path, the lines,
//     blank padding), fits each row to the content width, draws the title
//     row in StyleTitle and the rest in StyleContent, pads the right margin,
//     and refreshes the pane's surface.
//  3. Hides the cursor and refreshes the whole screen so the pane updates
//     appear together.
//
// Grid cells with no file are drawn blank when the layout is built and are
// not touched afterwards.
//
// # Errors
//
// A file that cannot be read yields a *FileReadError. It is recorded in
// State.Failures, logged once per distinct failure, and rendered as an
// "error: ..." row under the title. Other panes are drawn normally.
//
// Anything that goes wrong with the display (size query, surface creation,
// writes, refreshes) yields a *DisplayError. Tick stops at the first one
// and returns the state it was given; the caller must stop the loop.
//
// # Display
//
// Display and Surface are the small slice of a curses-like terminal driver
// the engine needs. Package screen provides the real implementation.
package render
