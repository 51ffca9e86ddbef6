package pathfile

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/pathological/pkg/errors"
	"github.com/arthur-debert/pathological/pkg/logging"
	"github.com/arthur-debert/pathological/pkg/types"
)

// DefaultName is the file name searched for by default
const DefaultName = "Pathfile"

// Locator finds the nearest Pathfile above a directory
type Locator struct {
	fs   types.FS
	name string
}

// NewLocator creates a Locator probing fs for files called name.
// An empty name means DefaultName.
func NewLocator(fs types.FS, name string) *Locator {
	if name == "" {
		name = DefaultName
	}
	return &Locator{fs: fs, name: name}
}

// Name returns the file name the locator searches for
func (l *Locator) Name() string {
	return l.name
}

// Locate walks upward from startDir, after resolving it to its real path,
// and returns the path of the first Pathfile found. The filesystem root is
// checked once; if no Pathfile exists there either, the returned error has
// code errors.ErrNoPathfile.
func (l *Locator) Locate(startDir string) (string, error) {
	logger := logging.GetLogger("pathfile.locate")

	dir, err := l.fs.RealPath(startDir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve start directory %s", startDir).
			WithDetail("dir", startDir)
	}
	if dir != startDir {
		logger.Debug().Str("from", startDir).Str("to", dir).Msg("Resolved start directory")
	}

	for {
		candidate := filepath.Join(dir, l.name)
		info, err := l.fs.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			logger.Debug().Str("pathfile", candidate).Msg("Found Pathfile")
			return candidate, nil
		case err != nil && !stderrors.Is(err, fs.ErrNotExist):
			logger.Debug().Err(err).Str("path", candidate).Msg("Skipping unreadable candidate")
		default:
			logger.Trace().Str("dir", dir).Msg("No Pathfile")
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf(errors.ErrNoPathfile, "no %s found in %s or any parent directory", l.name, startDir).
				WithDetail("dir", startDir)
		}
		dir = parent
	}
}

// IsNotFound reports whether err means no Pathfile was located
func IsNotFound(err error) bool {
	return errors.IsErrorCode(err, errors.ErrNoPathfile)
}
