package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/pathological/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	// MemMapFs and friends have no symlinks, Stat is equivalent.
	return a.fs.Stat(name)
}

func (a *aferoFS) RealPath(name string) (string, error) {
	abs := name
	if !filepath.IsAbs(abs) {
		var err error
		if abs, err = filepath.Abs(name); err != nil {
			return "", err
		}
	}

	reader, ok := a.fs.(afero.LinkReader)
	if !ok {
		abs = filepath.Clean(abs)
		if _, err := a.fs.Stat(abs); err != nil {
			return "", err
		}
		return abs, nil
	}
	return evalSymlinks(abs, a.Lstat, reader.ReadlinkIfPossible)
}
