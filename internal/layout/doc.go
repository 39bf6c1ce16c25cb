// Package layout partitions the terminal into an even grid of panes.
//
// # Overview
//
// A run that tracks fileCount files uses an n x n grid where
// n = GridSize(fileCount), the ceiling of the square root. Each axis is cut
// into n spans by DivideSpan: every span is total/n and the last span takes
// the remainder, so the spans always add up to the full terminal size.
//
//	DivideSpan(10, 3) = [3 3 4]
//	DivideSpan(2, 5)  = [0 0 0 0 2]
//
// A terminal smaller than the grid produces zero-sized panes. That is not an
// error; the renderer simply draws nothing into them.
//
// # Panes
//
// Compute returns n*n panes in column-major order. The origin of a pane is
// the sum of the spans before it on each axis. Every pane reserves the
// configured padding as a blank margin on its right and bottom edges,
// except on the last column (no right margin) and the last row (no bottom
// margin), so the outer edge of the grid meets the terminal edge.
//
//	┌───────┬───────┐
//	│ 0     │ 2     │   column-major:
//	│      ▒│       │   index = column*n + row
//	├───────┼───────┤
//	│ 1     │ 3     │   ▒ = margin
//	│      ▒│       │
//	└───────┴───────┘
//
// Everything in this package is a pure function of its inputs.
package layout
