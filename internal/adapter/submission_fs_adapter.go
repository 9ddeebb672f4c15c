package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	m "grademill.dev/pkg/grademill/internal/model"
)

// SubmissionFSAdapter abstracts locating submission directories.
type SubmissionFSAdapter interface {
	// ListGroupDirs returns one directory per submission group under root,
	// sorted by name.
	ListGroupDirs(root m.Path) ([]m.Path, error)
}

// LocalSubmissionFSAdapter lists group directories on the local filesystem.
type LocalSubmissionFSAdapter struct{}

// NewLocalSubmissionFSAdapter constructs a LocalSubmissionFSAdapter.
func NewLocalSubmissionFSAdapter() *LocalSubmissionFSAdapter {
	return &LocalSubmissionFSAdapter{}
}

// ListGroupDirs lists the immediate subdirectories of root. Hidden
// directories are skipped.
func (a *LocalSubmissionFSAdapter) ListGroupDirs(root m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(root))
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions in %s: %w", root, err)
	}

	dirs := make([]m.Path, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}

		dirs = append(dirs, m.Path(filepath.Join(string(root), entry.Name())))
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })

	return dirs, nil
}

// GroupID derives the submission group identity from its directory name.
func GroupID(dir m.Path) string {
	return filepath.Base(string(dir))
}
