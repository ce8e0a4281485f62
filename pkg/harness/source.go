package harness

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// SourceReader reads source files to show the line a failed check sits on.
type SourceReader struct {
	fs afero.Fs
}

// NewSourceReader returns a SourceReader over fs. A nil fs means the OS
// filesystem.
func NewSourceReader(fs afero.Fs) *SourceReader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &SourceReader{fs: fs}
}

// Exists reports whether path exists.
func (s *SourceReader) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// ReadLines returns the lines of the file at path.
func (s *SourceReader) ReadLines(path string) ([]string, error) {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// Line returns the 1-indexed line n of path. ok is false when the file is
// missing or unreadable or n is out of range.
func (s *SourceReader) Line(path string, n int) (line string, ok bool) {
	if path == "" || !s.Exists(path) {
		return "", false
	}
	lines, err := s.ReadLines(path)
	if err != nil || n < 1 || n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}
