package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "grademill.dev/pkg/grademill/internal/model"
)

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.log")
	require.NoError(t, os.WriteFile(path, []byte("[INFO] Scanning for projects...\n[INFO] BUILD SUCCESS\n"), 0o644))

	lines, err := NewLocalBuildLogAdapter().ReadLines(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, []string{"[INFO] Scanning for projects...", "[INFO] BUILD SUCCESS"}, lines)
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := NewLocalBuildLogAdapter().ReadLines(m.Path(filepath.Join(t.TempDir(), "missing.log")))
	assert.Error(t, err)
}

func TestReadLines_CapsRetainedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.log")

	content := ""
	for i := 0; i < 10; i++ {
		content += "line\n"
	}

	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	adapter := &LocalBuildLogAdapter{maxLines: 3}

	lines, err := adapter.ReadLines(m.Path(path))
	require.NoError(t, err)

	assert.Len(t, lines, 3)
}
