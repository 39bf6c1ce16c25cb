package render

import "fmt"

// FileReadError reports a tracked file that could not be read on one tick.
// It is recovered locally: the pane shows the failure and the loop goes on.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// DisplayError reports a terminal failure. The render loop cannot continue
// after one.
type DisplayError struct {
	Op  string
	Err error
}

func (e *DisplayError) Error() string {
	return fmt.Sprintf("display: %s: %v", e.Op, e.Err)
}

func (e *DisplayError) Unwrap() error { return e.Err }
