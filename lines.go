package aoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// LineSource is a re-readable sequence of input lines.
type LineSource interface {
	// ForLines calls onLine for each line of input until onLine returns
	// an error or the input is exhausted.
	ForLines(onLine func(line string) error) error
	// ForLinesY is like ForLines but also passes the row number,
	// starting with 0.
	ForLinesY(onLine func(y int, line string) error) error
	// Rewind moves back to the first line.
	Rewind() error
}

// Lines reads newline-delimited text from a seekable reader.
type Lines struct {
	r io.ReadSeeker
	c io.Closer // nil for in-memory input
}

// Open opens the file at path for reading. The returned error matches
// ErrFileAccess.
func Open(path string) (*Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return &Lines{r: f, c: f}, nil
}

// NewLines returns Lines reading from r.
func NewLines(r io.ReadSeeker) *Lines {
	return &Lines{r: r}
}

// LinesOf returns Lines over an in-memory string.
func LinesOf(s string) *Lines {
	return NewLines(strings.NewReader(s))
}

func (l *Lines) ForLines(onLine func(line string) error) error {
	return l.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

func (l *Lines) ForLinesY(onLine func(y int, line string) error) error {
	s := bufio.NewScanner(l.r)
	y := -1
	for s.Scan() {
		y++
		line := strings.TrimSuffix(s.Text(), "\r")
		if !utf8.ValidString(line) {
			return &InputError{Kind: ErrDecode, Line: y + 1, Err: errors.New("invalid UTF-8")}
		}
		if err := onLine(y, line); err != nil {
			var ie *InputError
			if errors.As(err, &ie) && ie.Line == 0 {
				ie.Line = y + 1
				ie.Text = line
			}
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrDecode, y+2, err)
	}
	return nil
}

func (l *Lines) Rewind() error {
	if _, err := l.r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: rewind: %w", ErrFileAccess, err)
	}
	return nil
}

// Close releases the underlying file, if any.
func (l *Lines) Close() error {
	if l.c == nil {
		return nil
	}
	return l.c.Close()
}
