package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// maxLinkHops matches the usual kernel SYMLOOP_MAX.
const maxLinkHops = 40

var errTooManyLinks = errors.New("too many levels of symbolic links")

// evalSymlinks resolves every symlink in the absolute, clean path abs one
// component at a time. It is used for filesystems that cannot delegate to
// filepath.EvalSymlinks.
func evalSymlinks(abs string, lstat func(string) (fs.FileInfo, error), readlink func(string) (string, error)) (string, error) {
	sep := string(filepath.Separator)
	resolved := sep
	pending := splitPath(abs)
	hops := 0

	for len(pending) > 0 {
		part := pending[0]
		pending = pending[1:]

		switch part {
		case "", ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}

		next := filepath.Join(resolved, part)
		info, err := lstat(next)
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", &fs.PathError{Op: "realpath", Path: abs, Err: errTooManyLinks}
		}

		target, err := readlink(next)
		if err != nil {
			return "", err
		}
		if filepath.IsAbs(target) {
			resolved = sep
		}
		pending = append(splitPath(target), pending...)
	}

	return resolved, nil
}

func splitPath(p string) []string {
	return strings.Split(filepath.ToSlash(p), "/")
}
