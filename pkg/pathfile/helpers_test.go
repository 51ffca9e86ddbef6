package pathfile_test

import (
	"io/fs"

	"github.com/arthur-debert/pathological/pkg/types"
)

// statCounter records how often each path is stat'ed
type statCounter struct {
	types.FS
	seen map[string]int
}

func (s *statCounter) Stat(name string) (fs.FileInfo, error) {
	s.seen[name]++
	return s.FS.Stat(name)
}
