package types

import (
	"io/fs"
)

// FS is the read-only filesystem interface used to locate and validate Pathfiles
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Lstat does not follow a trailing symlink.
	// Implementations without symlink support fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	// RealPath returns the absolute, symlink-free form of name.
	RealPath(name string) (string, error)
}

// LoadPath is a caller-owned, ordered search path.
// Resolvers only ever append to it.
type LoadPath interface {
	Append(paths ...string)
}
