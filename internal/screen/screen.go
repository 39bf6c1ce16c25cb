// Package screen is the terminal driver behind the render engine: a cell
// canvas that pane surfaces are composed onto, presented as a styled frame.
//
// Surfaces follow curses semantics. Writes land in the surface's own buffer,
// Surface.Refresh copies that buffer onto the screen canvas, and
// Screen.Refresh turns the canvas into the frame the program displays. A
// terminal size change seen by Size starts over with a blank canvas.
package screen

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/five82/monigrid/internal/render"
)

// Sizer reports the terminal size in cells.
type Sizer func() (height, width int, err error)

// TerminalSizer queries the terminal attached to f.
func TerminalSizer(f *os.File) Sizer {
	return func() (int, int, error) {
		width, height, err := term.GetSize(int(f.Fd()))
		if err != nil {
			return 0, 0, fmt.Errorf("get terminal size: %w", err)
		}
		return height, width, nil
	}
}

type cell struct {
	r     rune
	width int // 0 marks the right half of a wide rune
	style render.Style
}

func blankRow(width int) []cell {
	row := make([]cell, width)
	for i := range row {
		row[i] = cell{r: ' ', width: 1}
	}
	return row
}

// Screen implements render.Display.
type Screen struct {
	size          Sizer
	height        int
	width         int
	canvas        [][]cell
	styles        map[render.Style]lipgloss.Style
	cursorVisible bool
	frame         string
}

// New returns an empty screen sized by size.
func New(size Sizer) *Screen {
	return &Screen{
		size:          size,
		styles:        make(map[render.Style]lipgloss.Style),
		cursorVisible: true,
	}
}

// Size queries the terminal. A size different from the last one resets the
// canvas.
func (s *Screen) Size() (int, int, error) {
	height, width, err := s.size()
	if err != nil {
		return 0, 0, err
	}
	if height < 0 || width < 0 {
		return 0, 0, fmt.Errorf("invalid terminal size %dx%d", height, width)
	}
	if height != s.height || width != s.width || s.canvas == nil {
		s.height, s.width = height, width
		s.canvas = make([][]cell, height)
		for y := range s.canvas {
			s.canvas[y] = blankRow(width)
		}
	}
	return height, width, nil
}

// NewSurface creates a surface at row y, column x of the screen.
func (s *Screen) NewSurface(height, width, y, x int) (render.Surface, error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", height, width)
	}
	if y < 0 || x < 0 {
		return nil, fmt.Errorf("invalid surface origin (%d,%d)", y, x)
	}
	sf := &surface{screen: s, y: y, x: x, width: width, cells: make([][]cell, height)}
	for i := range sf.cells {
		sf.cells[i] = blankRow(width)
	}
	return sf, nil
}

// DefineStyle registers the colors drawn for id. Empty colors leave the
// terminal default.
func (s *Screen) DefineStyle(id render.Style, fg, bg string) error {
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	s.styles[id] = style
	return nil
}

// SetCursorVisible records the cursor state the program should apply.
func (s *Screen) SetCursorVisible(visible bool) error {
	s.cursorVisible = visible
	return nil
}

// CursorVisible reports the last state passed to SetCursorVisible.
func (s *Screen) CursorVisible() bool { return s.cursorVisible }

// Refresh renders the canvas into a new frame.
func (s *Screen) Refresh() error {
	rows := make([]string, len(s.canvas))
	for y, row := range s.canvas {
		rows[y] = s.renderRow(row)
	}
	s.frame = strings.Join(rows, "\n")
	return nil
}

// Frame returns the most recently refreshed frame.
func (s *Screen) Frame() string { return s.frame }

// Lines returns the canvas as plain text, one string per row.
func (s *Screen) Lines() []string {
	lines := make([]string, len(s.canvas))
	for y, row := range s.canvas {
		var b strings.Builder
		for _, c := range row {
			if c.width > 0 {
				b.WriteRune(c.r)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

// renderRow groups runs of equally styled cells so each run is styled once.
func (s *Screen) renderRow(row []cell) string {
	var out, run strings.Builder
	current := render.Style(0)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if style, ok := s.styles[current]; ok {
			out.WriteString(style.Render(run.String()))
		} else {
			out.WriteString(run.String())
		}
		run.Reset()
	}
	for _, c := range row {
		if c.width == 0 {
			continue
		}
		if c.style != current {
			flush()
			current = c.style
		}
		run.WriteRune(c.r)
	}
	flush()
	return out.String()
}

type surface struct {
	screen *Screen
	y, x   int
	width  int
	cells  [][]cell
}

// WriteStyled writes text starting at (row, col). Text past the right edge is
// clipped; a row or column outside the surface is an error.
func (sf *surface) WriteStyled(row, col int, text string, style render.Style) error {
	if row < 0 || row >= len(sf.cells) {
		return fmt.Errorf("row %d outside surface of height %d", row, len(sf.cells))
	}
	if col < 0 || col > sf.width {
		return fmt.Errorf("column %d outside surface of width %d", col, sf.width)
	}
	line := sf.cells[row]
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > sf.width {
			break
		}
		put(line, col, cell{r: r, width: w, style: style})
		for i := 1; i < w; i++ {
			put(line, col+i, cell{style: style})
		}
		col += w
	}
	return nil
}

// put stores c at line[col], blanking any wide rune it partly overwrites.
func put(line []cell, col int, c cell) {
	old := line[col]
	if old.width == 0 && c.width != 0 && col > 0 && line[col-1].width > 1 {
		line[col-1] = cell{r: ' ', width: 1, style: line[col-1].style}
	}
	if old.width > 1 && c.width < 2 && col+1 < len(line) && line[col+1].width == 0 {
		line[col+1] = cell{r: ' ', width: 1, style: old.style}
	}
	line[col] = c
}

// Refresh copies the surface onto the screen canvas, clipped to the screen.
func (sf *surface) Refresh() error {
	canvas := sf.screen.canvas
	for i, row := range sf.cells {
		y := sf.y + i
		if y >= len(canvas) {
			break
		}
		for j, c := range row {
			x := sf.x + j
			if x >= len(canvas[y]) {
				break
			}
			canvas[y][x] = c
		}
	}
	return nil
}
