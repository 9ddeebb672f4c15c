// Package pkg is a package that provides utilities for grademill.
package pkg

import (
	"bufio"
	"io"
	"log/slog"
)

// LineBuffer is a bounded, append-only line buffer. Build logs have no size
// bound of their own, so callers cap what the engine retains; lines past the
// capacity are counted but dropped.
type LineBuffer struct {
	capacity int
	lines    []string
	dropped  uint64
}

// NewLineBuffer creates a LineBuffer retaining at most capacity lines. A
// non-positive capacity means unbounded.
func NewLineBuffer(capacity int) *LineBuffer {
	return &LineBuffer{capacity: capacity}
}

// Append adds a line, dropping it when the buffer is full.
func (b *LineBuffer) Append(line string) {
	if b.capacity > 0 && len(b.lines) >= b.capacity {
		b.dropped++
		return
	}

	b.lines = append(b.lines, line)
}

// ReadFrom fills the buffer from a newline-delimited reader.
func (b *LineBuffer) ReadFrom(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		b.Append(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		slog.Error("failed to read lines", "error", err)
		return err
	}

	if b.dropped > 0 {
		slog.Warn("line buffer capacity reached", "capacity", b.capacity, "dropped", b.dropped)
	}

	return nil
}

// Lines returns the retained lines in arrival order.
func (b *LineBuffer) Lines() []string {
	return b.lines
}

// Len returns the number of retained lines.
func (b *LineBuffer) Len() int {
	return len(b.lines)
}

// Dropped returns the number of lines discarded over capacity.
func (b *LineBuffer) Dropped() uint64 {
	return b.dropped
}
