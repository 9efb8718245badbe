// Package errors provides typed error values for gswitch.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. The
// resolution core returns rich outcomes for expected negative cases (no
// repository, no marker) and reserves errors for genuine failures.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Path errors: contract violations on caller supplied paths (ErrInvalidPath)
//   - Storage errors: filesystem and parse failures (ErrIO, ErrConfigCorrupt)
//   - Resolution outcomes: ErrNotInRepository, ErrNoMarker, ErrMalformedMarker,
//     ErrUnknownProfile
//   - Profile errors: ErrProfileNotFound, ErrProfileExists, ErrInvalidProfile
//   - Git errors: ErrGitConfig, ErrIdentityNotConfigured
//   - Input errors: ErrUnsupportedShell, ErrInvalidDateFormat, ErrInvalidFormat
//
// # Usage
//
// Return errors from internal packages:
//
//	if !inside {
//	    return "", fmt.Errorf("%w: %s is outside %s", errors.ErrInvalidPath, start, boundary)
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Switch(ctx, env, opts)
//	if errors.Is(err, gerrors.ErrProfileNotFound) {
//	    // Show the list of available profiles
//	}
package errors
