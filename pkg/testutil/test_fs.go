package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pathological/pkg/filesystem"
	"github.com/arthur-debert/pathological/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	fs, _ := NewMemMapFs()
	return fs
}

// NewMemMapFs creates an in-memory filesystem and returns both the types.FS
// view used by the code under test and the afero.Fs used to build fixtures.
func NewMemMapFs() (types.FS, afero.Fs) {
	mem := afero.NewMemMapFs()
	return filesystem.NewAferoFS(mem), mem
}

// MemDir creates a directory and its parents in an afero filesystem.
func MemDir(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	if err := fs.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// MemFile writes a file, creating parent directories as needed.
func MemFile(t *testing.T, fs afero.Fs, path, content string) string {
	t.Helper()

	MemDir(t, fs, filepath.Dir(path))
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// MemPathfile writes a Pathfile with the given lines into dir.
func MemPathfile(t *testing.T, fs afero.Fs, dir string, lines ...string) string {
	t.Helper()

	return MemFile(t, fs, filepath.Join(dir, "Pathfile"), joinLines(lines))
}

func joinLines(lines []string) string {
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	return content
}
