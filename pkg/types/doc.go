// Package types defines the interfaces shared across pathological: the
// read-only filesystem the locator and parser probe, and the append-only
// load path that resolved entries are written into.
package types
