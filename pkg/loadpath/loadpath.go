package loadpath

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pathological/pkg/errors"
	"github.com/arthur-debert/pathological/pkg/filesystem"
	"github.com/arthur-debert/pathological/pkg/logging"
	"github.com/arthur-debert/pathological/pkg/pathfile"
	"github.com/arthur-debert/pathological/pkg/types"
)

// Options configures a Resolver. Zero values select the defaults.
type Options struct {
	// FS defaults to the OS filesystem
	FS types.FS
	// PathfileName defaults to pathfile.DefaultName
	PathfileName string
	// Getwd defaults to os.Getwd
	Getwd func() (string, error)
	// Warnings defaults to os.Stderr
	Warnings io.Writer
}

// Resolver locates and parses Pathfiles on behalf of a host
type Resolver struct {
	locator  *pathfile.Locator
	parser   *pathfile.Parser
	getwd    func() (string, error)
	warnings io.Writer
}

// New creates a Resolver
func New(opts Options) *Resolver {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Getwd == nil {
		opts.Getwd = os.Getwd
	}
	if opts.Warnings == nil {
		opts.Warnings = os.Stderr
	}

	return &Resolver{
		locator:  pathfile.NewLocator(opts.FS, opts.PathfileName),
		parser:   pathfile.NewParser(opts.FS),
		getwd:    opts.Getwd,
		warnings: opts.Warnings,
	}
}

// FindPathfile returns the nearest Pathfile at or above dir
func (r *Resolver) FindPathfile(dir string) (string, error) {
	return r.locator.Locate(dir)
}

// FindLoadPaths locates the Pathfile governing dir and parses it.
// Unlike Resolve, a missing Pathfile is returned as an ErrNoPathfile error.
func (r *Resolver) FindLoadPaths(dir string) ([]string, error) {
	path, err := r.locator.Locate(dir)
	if err != nil {
		return nil, err
	}
	return r.parser.ParseFile(path)
}

// Resolve returns explicit followed by the entries of the Pathfile governing
// the working directory.
func (r *Resolver) Resolve(explicit []string) ([]string, error) {
	cwd, err := r.getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
	}
	return r.ResolveFrom(cwd, explicit)
}

// ResolveFrom is Resolve starting from dir instead of the working directory
func (r *Resolver) ResolveFrom(dir string, explicit []string) ([]string, error) {
	logger := logging.GetLogger("loadpath")
	done := logging.LogOperationStart(logger, "resolve")
	defer done()

	result := make([]string, 0, len(explicit)+8)
	result = append(result, explicit...)

	found, err := r.FindLoadPaths(dir)
	if err != nil {
		if !pathfile.IsNotFound(err) {
			return nil, err
		}
		r.warnNotFound(dir)
		return result, nil
	}

	logger.Debug().
		Int("explicit", len(explicit)).
		Strs("pathfile", found).
		Msg("Resolved load paths")

	return append(result, found...), nil
}

// AddPaths resolves from the working directory and appends the result to lp.
// lp is left untouched when an error is returned.
func (r *Resolver) AddPaths(lp types.LoadPath, explicit ...string) error {
	paths, err := r.Resolve(explicit)
	if err != nil {
		return err
	}
	lp.Append(paths...)
	return nil
}

func (r *Resolver) warnNotFound(dir string) {
	_, _ = fmt.Fprintf(r.warnings, "Warning: no %s found in %s or any parent directory; no load paths added\n",
		r.locator.Name(), dir)
}

// Inspection describes the Pathfile governing a directory
type Inspection struct {
	Dir      string
	Pathfile string
	Paths    []string
	// Err is set when no Pathfile was found or it failed to parse
	Err error
}

// Inspect locates and parses the Pathfile governing dir, keeping the
// Pathfile location even when parsing fails.
func (r *Resolver) Inspect(dir string) Inspection {
	in := Inspection{Dir: dir}

	path, err := r.locator.Locate(dir)
	if err != nil {
		in.Err = err
		return in
	}
	in.Pathfile = path

	in.Paths, in.Err = r.parser.ParseFile(path)
	return in
}
