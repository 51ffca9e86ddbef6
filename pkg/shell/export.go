package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Shells lists the supported shells
var Shells = []string{"bash", "zsh", "fish"}

var variablePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidVariable reports whether name can be used as an environment variable
func ValidVariable(name string) bool {
	return variablePattern.MatchString(name)
}

// Detect returns the shell named by $SHELL, falling back to bash
func Detect() string {
	name := filepath.Base(os.Getenv("SHELL"))
	for _, s := range Shells {
		if s == name {
			return s
		}
	}
	return "bash"
}

// ExportSnippet returns a statement that sets variable to paths joined with
// the OS list separator. An empty path list unsets the variable.
func ExportSnippet(shell, variable string, paths []string) (string, error) {
	if !ValidVariable(variable) {
		return "", fmt.Errorf("invalid variable name %q", variable)
	}

	value := quote(strings.Join(paths, string(os.PathListSeparator)))

	switch shell {
	case "bash", "zsh", "sh":
		if len(paths) == 0 {
			return fmt.Sprintf("unset %s", variable), nil
		}
		return fmt.Sprintf("export %s=%s", variable, value), nil
	case "fish":
		if len(paths) == 0 {
			return fmt.Sprintf("set -e %s", variable), nil
		}
		return fmt.Sprintf("set -gx %s %s", variable, value), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: %s)", shell, strings.Join(Shells, ", "))
	}
}

// quote wraps s in single quotes. Single quotes inside s are closed,
// escaped and reopened, which works in POSIX shells and fish alike.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
