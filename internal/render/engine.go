package render

import (
	"fmt"
	"log"
	"strings"

	"github.com/five82/monigrid/internal/config"
	"github.com/five82/monigrid/internal/layout"
	"github.com/five82/monigrid/internal/logtail"
)

// LineReader returns at most maxLines trailing lines of the file at path.
type LineReader func(path string, maxLines int) ([]string, error)

// Options configure an Engine.
type Options struct {
	Files    []string
	PaddingX int
	PaddingY int
	Colors   config.Colors
	Reader   LineReader  // nil uses logtail.Read
	Logger   *log.Logger // nil uses the standard logger
}

// Binding ties one grid cell to its surface and, unless the cell is unused,
// to a tracked file.
type Binding struct {
	File    string
	Pane    layout.Pane
	Surface Surface
}

// State is everything the render loop carries from one tick to the next.
type State struct {
	Height     int
	Width      int
	Bindings   []Binding
	Generation int // number of layouts computed so far
	Failures   []*FileReadError
}

// Engine renders the tracked files into an evenly tiled grid. It holds only
// immutable settings; all mutable state travels through Tick.
type Engine struct {
	files    []string
	grid     int
	paddingX int
	paddingY int
	colors   config.Colors
	read     LineReader
	logger   *log.Logger
}

// NewEngine validates opts and derives the grid size from the file count.
func NewEngine(opts Options) (*Engine, error) {
	if len(opts.Files) == 0 {
		return nil, &config.ConfigError{Field: "files", Reason: "at least one file is required"}
	}
	e := &Engine{
		files:    append([]string(nil), opts.Files...),
		grid:     layout.GridSize(len(opts.Files)),
		paddingX: max(opts.PaddingX, 0),
		paddingY: max(opts.PaddingY, 0),
		colors:   opts.Colors,
		read:     opts.Reader,
		logger:   opts.Logger,
	}
	if e.colors == (config.Colors{}) {
		e.colors = config.DefaultColors()
	}
	if e.read == nil {
		e.read = logtail.Read
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	return e, nil
}

// GridSize returns n for the engine's n x n grid.
func (e *Engine) GridSize() int { return e.grid }

// Init registers the title and content styles with d.
func (e *Engine) Init(d Display) error {
	if err := d.DefineStyle(StyleTitle, e.colors.TitleFg, e.colors.TitleBg); err != nil {
		return &DisplayError{Op: "define title style", Err: err}
	}
	if err := d.DefineStyle(StyleContent, e.colors.ContentFg, e.colors.ContentBg); err != nil {
		return &DisplayError{Op: "define content style", Err: err}
	}
	return nil
}

// Tick runs one refresh: re-tile if the terminal size changed, redraw every
// tracked file, then refresh the screen. File read failures are recorded in
// the returned state and shown in their pane; any error returned is a
// *DisplayError and leaves st unchanged.
func (e *Engine) Tick(d Display, st State) (State, error) {
	height, width, err := d.Size()
	if err != nil {
		return st, &DisplayError{Op: "query terminal size", Err: err}
	}

	next := st
	if st.Generation == 0 || height != st.Height || width != st.Width {
		bindings, err := e.bind(d, height, width)
		if err != nil {
			return st, err
		}
		next = State{
			Height:     height,
			Width:      width,
			Bindings:   bindings,
			Generation: st.Generation + 1,
		}
	}

	previous := make(map[string]string, len(st.Failures))
	for _, f := range st.Failures {
		previous[f.Path] = f.Err.Error()
	}
	next.Failures = nil

	for _, b := range next.Bindings {
		if b.File == "" {
			continue
		}
		lines, readErr := e.lines(b)
		if readErr != nil {
			next.Failures = append(next.Failures, readErr)
			if previous[readErr.Path] != readErr.Err.Error() {
				e.logger.Printf("pane read failed: %v", readErr)
			}
		}
		if err := drawPane(b, BuildRows(logtail.Sanitize(b.File), lines, b.Pane.Rect.Height)); err != nil {
			return st, err
		}
	}

	if err := d.SetCursorVisible(false); err != nil {
		return st, &DisplayError{Op: "hide cursor", Err: err}
	}
	if err := d.Refresh(); err != nil {
		return st, &DisplayError{Op: "refresh screen", Err: err}
	}
	return next, nil
}

// bind lays out a fresh grid for the given size. Cells beyond the last file
// are bound to no file and drawn blank once.
func (e *Engine) bind(d Display, height, width int) ([]Binding, error) {
	panes, err := layout.Compute(height, width, e.grid, e.paddingX, e.paddingY)
	if err != nil {
		return nil, &DisplayError{Op: "layout", Err: err}
	}
	bindings := make([]Binding, 0, len(panes))
	for i, p := range panes {
		surface, err := d.NewSurface(p.Rect.Height, p.Rect.Width, p.Rect.Y, p.Rect.X)
		if err != nil {
			return nil, &DisplayError{Op: fmt.Sprintf("create surface %dx%d at (%d,%d)", p.Rect.Height, p.Rect.Width, p.Rect.Y, p.Rect.X), Err: err}
		}
		b := Binding{Pane: p, Surface: surface}
		if i < len(e.files) {
			b.File = e.files[i]
		} else if err := drawPane(b, make([]string, p.Rect.Height)); err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

// lines reads the content rows for b. On failure the single content row
// describes the error, if the pane has room for it.
func (e *Engine) lines(b Binding) ([]string, *FileReadError) {
	contentHeight, _ := b.Pane.ContentSize()
	room := max(contentHeight-1, 0)
	raw, err := e.read(b.File, room)
	if err != nil {
		readErr := &FileReadError{Path: b.File, Err: err}
		if room == 0 {
			return nil, readErr
		}
		return []string{logtail.Sanitize("error: " + err.Error())}, readErr
	}
	if len(raw) > room {
		raw = raw[len(raw)-room:]
	}
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = logtail.Sanitize(line)
	}
	return lines, nil
}

// drawPane writes rows into b's surface, fitted to the content width and
// followed by the right margin, and refreshes it.
func drawPane(b Binding, rows []string) error {
	_, contentWidth := b.Pane.ContentSize()
	margin := min(b.Pane.Margin.X, b.Pane.Rect.Width)
	for i, row := range rows {
		style := StyleContent
		if i == 0 && b.File != "" {
			style = StyleTitle
		}
		text := FitRow(row, contentWidth)
		if err := b.Surface.WriteStyled(i, 0, text, style); err != nil {
			return &DisplayError{Op: fmt.Sprintf("write row %d of %s", i, paneName(b)), Err: err}
		}
		if margin > 0 {
			if err := b.Surface.WriteStyled(i, contentWidth, strings.Repeat(" ", margin), StyleContent); err != nil {
				return &DisplayError{Op: fmt.Sprintf("write margin %d of %s", i, paneName(b)), Err: err}
			}
		}
	}
	if err := b.Surface.Refresh(); err != nil {
		return &DisplayError{Op: "refresh " + paneName(b), Err: err}
	}
	return nil
}

func paneName(b Binding) string {
	if b.File != "" {
		return "pane " + b.File
	}
	return fmt.Sprintf("empty pane %d,%d", b.Pane.Column, b.Pane.Row)
}
