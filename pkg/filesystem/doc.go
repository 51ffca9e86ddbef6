// Package filesystem provides filesystem implementations for pathological.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and afero-backed filesystems.
package filesystem
