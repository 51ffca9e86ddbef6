// Package render writes resolved load paths in machine-friendly formats.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects how load paths are written
type Format int

const (
	// FormatLines writes one path per line
	FormatLines Format = iota
	// FormatList joins paths with the OS list separator, ready for an env var
	FormatList
	// FormatJSON writes a JSON document
	FormatJSON
	// FormatYAML writes a YAML document
	FormatYAML
	// FormatTOML writes a TOML document
	FormatTOML
)

var formatNames = []string{"lines", "list", "json", "yaml", "toml"}

// String returns the configuration name of the format
func (f Format) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// Formats returns the accepted format names
func Formats() []string {
	names := make([]string, len(formatNames))
	copy(names, formatNames)
	return names
}

// ParseFormat parses a format name. The empty string means lines.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatLines, nil
	}
	if name == "yml" {
		return FormatYAML, nil
	}
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return FormatLines, fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(formatNames, ", "))
}

// Result is the document written by the structured formats
type Result struct {
	Paths []string `json:"paths" yaml:"paths" toml:"paths"`
}

// Render writes res to w in the given format
func Render(w io.Writer, f Format, res Result) error {
	if res.Paths == nil {
		res.Paths = []string{}
	}

	switch f {
	case FormatLines:
		return renderLines(w, res.Paths)
	case FormatList:
		return renderList(w, res.Paths)
	case FormatJSON:
		return renderJSON(w, res)
	case FormatYAML:
		return renderYAML(w, res)
	case FormatTOML:
		return renderTOML(w, res)
	default:
		return fmt.Errorf("unsupported format %d", int(f))
	}
}

func renderLines(w io.Writer, paths []string) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

func renderList(w io.Writer, paths []string) error {
	_, err := fmt.Fprintln(w, strings.Join(paths, string(os.PathListSeparator)))
	return err
}
