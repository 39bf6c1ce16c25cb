package logtail

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	scanBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024
	tabWidth       = 4
)

// Read returns at most maxLines from the end of the file at path, oldest
// first. Line terminators are not included. A missing or unreadable file is
// an error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if maxLines <= 0 {
		return nil, nil
	}

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, scanBufferSize), maxLineSize)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Sanitize prepares a raw file line for a fixed-width cell grid: escape
// sequences are dropped, tabs become spaces, and any remaining control
// characters are removed.
func Sanitize(line string) string {
	line = ansi.Strip(strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth)))
	if !strings.ContainsFunc(line, isControl) {
		return line
	}
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return -1
		}
		return r
	}, line)
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
