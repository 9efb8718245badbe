// Package gitcfg reads and writes git configuration values at global or
// repository-local scope.
//
// Git runs the git CLI, so includes and conditional includes resolve the same
// way they do for git itself. Memory is an in-process Store for tests that
// records every write.
package gitcfg
