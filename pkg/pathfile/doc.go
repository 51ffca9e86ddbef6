// Package pathfile locates and parses Pathfiles.
//
// A Pathfile is a plain-text, line-oriented manifest that lists directories
// to add to a load path. The nearest Pathfile is found by walking upward
// from a start directory after resolving symlinks, so a process started in a
// symlinked directory is governed by the Pathfile of the real tree.
//
// # Format
//
//	> exclude-root
//	> no-exceptions
//	lib
//	vendor/gems
//	/opt/shared/lib
//
// Blank lines are ignored. Lines whose first non-blank character is ">" are
// directives:
//
//   - no-exceptions: entries that do not exist are dropped instead of failing
//   - exclude-root: the Pathfile's own directory is not appended
//
// Any other line is a path, absolute or relative to the Pathfile's directory.
// Directives are file-global: once seen they stay in effect for the rest of
// the parse, and exclude-root applies no matter where it appears.
package pathfile
