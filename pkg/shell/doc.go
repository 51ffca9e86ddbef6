// Package shell renders load paths as shell statements, so a shell can
// pick them up with eval:
//
//	eval "$(pathological env)"
package shell
