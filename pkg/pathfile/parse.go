package pathfile

import (
	"bufio"
	stderrors "errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pathological/pkg/errors"
	"github.com/arthur-debert/pathological/pkg/logging"
	"github.com/arthur-debert/pathological/pkg/types"
)

// maxLineSize bounds a single Pathfile line
const maxLineSize = 1 << 20

// byteOrderMark is dropped from the start of the first line
const byteOrderMark = "\ufeff"

// Parser turns Pathfile contents into an ordered list of load paths
type Parser struct {
	fs types.FS
}

// NewParser creates a Parser that validates entries against fs
func NewParser(fs types.FS) *Parser {
	return &Parser{fs: fs}
}

// Parse reads Pathfile contents from r. dir is the directory containing the
// Pathfile: relative entries are resolved against it and it is appended as
// the last entry unless exclude-root is present.
//
// Parsing stops at the first unrecognized directive (ErrMalformedPathfile) or,
// without no-exceptions, at the first entry that does not exist
// (ErrInvalidPath).
func (p *Parser) Parse(r io.Reader, dir string) ([]string, error) {
	logger := logging.GetLogger("pathfile.parse")

	opts := DefaultOptions()
	result := make([]string, 0, 8)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		raw := strings.TrimRight(scanner.Text(), "\r")
		if lineNo == 1 {
			raw = strings.TrimPrefix(raw, byteOrderMark)
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if token, ok := isDirectiveLine(line); ok {
			directive, known := ParseDirective(token)
			if !known {
				return nil, errors.Newf(errors.ErrMalformedPathfile, "unrecognized directive %q", raw).
					WithDetail("line", lineNo).
					WithDetail("text", raw)
			}
			opts.Apply(directive)
			logger.Trace().Str("directive", directive.String()).Int("line", lineNo).Msg("Applied directive")
			continue
		}

		path := resolveEntry(line, dir)
		if !p.exists(path) {
			if opts.AllowMissingPaths {
				logger.Debug().Str("path", path).Int("line", lineNo).Msg("Dropping missing path")
				continue
			}
			return nil, errors.Newf(errors.ErrInvalidPath, "path %s does not exist", path).
				WithDetail("line", lineNo).
				WithDetail("entry", line).
				WithDetail("path", path)
		}
		result = append(result, path)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrPathfileRead, "cannot scan Pathfile")
	}

	if opts.IncludeRoot {
		result = append(result, dir)
	}

	return result, nil
}

// ParseString parses Pathfile contents held in memory
func (p *Parser) ParseString(text, dir string) ([]string, error) {
	return p.Parse(strings.NewReader(text), dir)
}

// ParseFile reads and parses the Pathfile at path
func (p *Parser) ParseFile(path string) ([]string, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPathfileRead, "cannot read %s", path).
			WithDetail("path", path)
	}
	return p.ParseString(string(data), filepath.Dir(path))
}

// exists treats any stat failure as absence. Failures other than
// not-exist are logged at debug level.
func (p *Parser) exists(path string) bool {
	_, err := p.fs.Stat(path)
	if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		logger := logging.GetLogger("pathfile.parse")
		logger.Debug().Err(err).Str("path", path).Msg("Cannot stat path entry")
	}
	return err == nil
}

func resolveEntry(entry, dir string) string {
	if filepath.IsAbs(entry) {
		return filepath.Clean(entry)
	}
	return filepath.Join(dir, entry)
}
