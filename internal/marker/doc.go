// Package marker finds and writes .gswitch project markers.
//
// A marker is a plain text file whose trimmed content names one profile.
// Lookups walk from a start directory up to a repository root, inclusive,
// and the marker nearest the start directory wins. Lookups never look above
// the root they are given.
package marker
