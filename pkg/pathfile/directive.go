package pathfile

import (
	"fmt"
	"strings"
)

// DirectiveMarker starts a directive line
const DirectiveMarker = ">"

// Directive is one of the recognized Pathfile directives
type Directive int

const (
	// NoExceptions drops missing path entries instead of failing
	NoExceptions Directive = iota + 1
	// ExcludeRoot omits the Pathfile's directory from the result
	ExcludeRoot
)

var directiveNames = map[Directive]string{
	NoExceptions: "no-exceptions",
	ExcludeRoot:  "exclude-root",
}

// String returns the token used for the directive in a Pathfile
func (d Directive) String() string {
	if name, ok := directiveNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Directive(%d)", int(d))
}

// Directives returns all recognized directives
func Directives() []Directive {
	return []Directive{NoExceptions, ExcludeRoot}
}

// ParseDirective maps a directive token to its Directive.
// The boolean is false for unrecognized tokens.
func ParseDirective(token string) (Directive, bool) {
	token = strings.TrimSpace(token)
	for d, name := range directiveNames {
		if name == token {
			return d, true
		}
	}
	return 0, false
}

// isDirectiveLine reports whether a trimmed line is a directive line and
// returns its token.
func isDirectiveLine(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, DirectiveMarker) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, DirectiveMarker)), true
}

// Options are the parse settings derived from directives
type Options struct {
	// AllowMissingPaths is set by no-exceptions
	AllowMissingPaths bool
	// IncludeRoot is cleared by exclude-root
	IncludeRoot bool
}

// DefaultOptions returns the options in effect before any directive is seen
func DefaultOptions() Options {
	return Options{IncludeRoot: true}
}

// Apply updates the options for a directive
func (o *Options) Apply(d Directive) {
	switch d {
	case NoExceptions:
		o.AllowMissingPaths = true
	case ExcludeRoot:
		o.IncludeRoot = false
	}
}
