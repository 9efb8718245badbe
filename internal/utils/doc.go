// Package utils provides shared helpers for gsw.
//
// # String Utilities
//
//   - IsValidEmail: checks an address has non-empty local and domain parts
//   - IsValidProfileName: checks a profile name has no whitespace or control characters
//
// # Terminal Utilities
//
//   - IsTerminal / IsStdoutTerminal: terminal detection for prompting and spinners
//   - PromptForInput: reads one line of interactive input with an optional default
package utils
