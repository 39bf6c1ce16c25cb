package render

// Style identifies a foreground/background pair registered with a Display.
type Style int

const (
	// StyleTitle is used for the first row of a pane (the file path).
	StyleTitle Style = iota + 1
	// StyleContent is used for file lines, blank rows and margins.
	StyleContent
)

// Display is the terminal driver the engine draws through.
type Display interface {
	// Size reports the current terminal size in cells.
	Size() (height, width int, err error)
	// NewSurface creates a height x width drawing surface whose top-left
	// corner sits at row y, column x of the screen.
	NewSurface(height, width, y, x int) (Surface, error)
	DefineStyle(id Style, fg, bg string) error
	SetCursorVisible(visible bool) error
	// Refresh makes everything surfaces have refreshed so far visible at once.
	Refresh() error
}

// Surface is a rectangular region of the screen owned by one pane.
type Surface interface {
	WriteStyled(row, col int, text string, style Style) error
	// Refresh stages the surface's contents for the next Display.Refresh.
	Refresh() error
}
