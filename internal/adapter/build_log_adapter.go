package adapter

import (
	"fmt"
	"os"

	m "grademill.dev/pkg/grademill/internal/model"
	pkg "grademill.dev/pkg/grademill/pkg"
)

// BuildLogAdapter abstracts reading the captured build console output.
type BuildLogAdapter interface {
	// ReadLines returns the log as ordered lines, capped at the adapter's
	// retention limit.
	ReadLines(path m.Path) ([]string, error)
}

// LocalBuildLogAdapter reads build logs from disk with a retention cap.
type LocalBuildLogAdapter struct {
	maxLines int
}

// DefaultMaxLogLines bounds how much console output the engine retains per
// submission. Logs of crashed builds can grow without limit.
const DefaultMaxLogLines = 50000

// NewLocalBuildLogAdapter constructs a LocalBuildLogAdapter with the default
// retention cap.
func NewLocalBuildLogAdapter() *LocalBuildLogAdapter {
	return &LocalBuildLogAdapter{maxLines: DefaultMaxLogLines}
}

// ReadLines reads the log file at path into a capped line slice.
func (a *LocalBuildLogAdapter) ReadLines(path m.Path) ([]string, error) {
	file, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open build log %s: %w", path, err)
	}
	defer file.Close()

	buffer := pkg.NewLineBuffer(a.maxLines)
	if err := buffer.ReadFrom(file); err != nil {
		return nil, fmt.Errorf("failed to read build log %s: %w", path, err)
	}

	return buffer.Lines(), nil
}
