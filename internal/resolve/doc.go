// Package resolve answers which profile, if any, applies to a directory.
//
// Resolution is a single pass: find the repository root above the start
// directory, find the nearest .gswitch marker between the start directory and
// that root, then look the named profile up in the store. Every step ends in
// one of the Outcome values; none of them loop back.
//
// Resolve is the verbose mode used by "gsw auto". It distinguishes every
// outcome and only returns an error for invalid paths and I/O failures.
// Quiet is the fast mode used by "gsw prompt". It reports a profile or
// nothing and never fails.
package resolve
