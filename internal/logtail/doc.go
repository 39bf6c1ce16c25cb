// Package logtail reads the trailing lines of text files.
//
// # Overview
//
// Read extracts the last maxLines lines of a file in one sequential pass
// using a ring buffer, so memory stays O(maxLines) no matter how large the
// file grows:
//
//	1. Allocate a ring of size maxLines
//	2. For each line, store it at the current index and advance (wrapping)
//	3. If fewer than maxLines were seen, return the filled prefix
//	4. Otherwise return the ring starting at the oldest entry
//
// The whole file is scanned on every call. There is no offset tracking and
// no file watching; callers poll.
//
// # Errors
//
// Unlike a best-effort log viewer, a missing file is reported: callers
// render the failure in place of the content. Errors are wrapped, so
// errors.Is(err, os.ErrNotExist) and errors.Is(err, os.ErrPermission) work.
// Lines longer than 1MB fail the read with bufio.ErrTooLong.
//
// # Sanitizing
//
// Sanitize strips ANSI escape sequences (colored log output), expands tabs
// and removes control characters, so that one printable rune maps onto the
// terminal cells it will occupy.
package logtail
