// Package testutil provides utilities for testing pathological components.
//
// Key components:
//   - NewTestFS / NewMemMapFs: in-memory afero filesystem behind types.FS
//   - RealPathFS: wraps a types.FS and substitutes symlink resolution
//   - MemDir / MemFile / MemPathfile: in-memory fixture builders
//   - TempDir / CreateFile / CreateDir / CreateSymlink: real-disk fixtures
//
// Usage guidelines:
//   - Parser and resolver tests run against the in-memory filesystem
//   - Symlink behaviour is tested on the real filesystem, afero's MemMapFs
//     has no symlinks
package testutil
