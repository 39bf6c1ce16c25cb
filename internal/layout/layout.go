package layout

import "fmt"

// Rect is the origin and size of one pane, in terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Margin is the blank border reserved on the right (X) and bottom (Y) of a pane.
type Margin struct {
	X int
	Y int
}

// Pane pairs a grid cell's geometry with its margin.
type Pane struct {
	Column int
	Row    int
	Rect   Rect
	Margin Margin
}

// ContentSize returns the pane size minus its margin, never negative.
func (p Pane) ContentSize() (height, width int) {
	return max(p.Rect.Height-p.Margin.Y, 0), max(p.Rect.Width-p.Margin.X, 0)
}

// GridSize returns the smallest n with n*n >= fileCount.
func GridSize(fileCount int) int {
	if fileCount <= 0 {
		return 0
	}
	n := 1
	for n*n < fileCount {
		n++
	}
	return n
}

// DivideSpan splits total into divisions near-equal spans. Every span is
// total/divisions; the last one also absorbs the remainder.
func DivideSpan(total, divisions int) ([]int, error) {
	if divisions <= 0 {
		return nil, fmt.Errorf("divide span: divisions must be positive, got %d", divisions)
	}
	if total < 0 {
		return nil, fmt.Errorf("divide span: total must not be negative, got %d", total)
	}
	each := total / divisions
	spans := make([]int, divisions)
	for i := range spans {
		spans[i] = each
	}
	spans[divisions-1] += total - each*divisions
	return spans, nil
}

// Compute tiles a height x width terminal into an n x n grid. Panes are
// returned column-major: all rows of column 0 first, then column 1, and so
// on. Files are bound to panes in this order.
func Compute(height, width, n, paddingX, paddingY int) ([]Pane, error) {
	widths, err := DivideSpan(width, n)
	if err != nil {
		return nil, fmt.Errorf("compute layout: width: %w", err)
	}
	heights, err := DivideSpan(height, n)
	if err != nil {
		return nil, fmt.Errorf("compute layout: height: %w", err)
	}
	paddingX = max(paddingX, 0)
	paddingY = max(paddingY, 0)

	panes := make([]Pane, 0, n*n)
	x := 0
	for i, w := range widths {
		y := 0
		for j, h := range heights {
			margin := Margin{X: paddingX, Y: paddingY}
			if i == n-1 {
				margin.X = 0
			}
			if j == n-1 {
				margin.Y = 0
			}
			panes = append(panes, Pane{
				Column: i,
				Row:    j,
				Rect:   Rect{X: x, Y: y, Width: w, Height: h},
				Margin: margin,
			})
			y += h
		}
		x += w
	}
	return panes, nil
}
