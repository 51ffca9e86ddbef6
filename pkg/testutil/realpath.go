package testutil

import (
	"github.com/arthur-debert/pathological/pkg/types"
)

// RealPathFS overrides symlink resolution of an underlying filesystem.
// Resolve receives the path passed to RealPath and returns its real path.
type RealPathFS struct {
	types.FS
	Resolve func(path string) string
}

// NewRealPathFS wraps fs with a custom RealPath.
func NewRealPathFS(fs types.FS, resolve func(path string) string) *RealPathFS {
	return &RealPathFS{FS: fs, Resolve: resolve}
}

// RealPath implements types.FS
func (r *RealPathFS) RealPath(name string) (string, error) {
	return r.Resolve(name), nil
}
