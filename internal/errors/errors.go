package errors

import "errors"

// Path and storage errors indicate a failed precondition or a broken filesystem.
var (
	// ErrInvalidPath indicates a caller supplied a path that violates an operation's contract,
	// such as a start directory that does not exist or lies outside its boundary.
	ErrInvalidPath = errors.New("invalid path")

	// ErrIO indicates a filesystem read or write failed.
	ErrIO = errors.New("filesystem error")

	// ErrConfigCorrupt indicates the persisted profile store could not be parsed.
	ErrConfigCorrupt = errors.New("profile store is corrupt")
)

// Resolution errors describe why no identity applies to a directory.
// NotInRepository and NoMarker are normal outcomes and only surface as errors
// when a command explicitly asks for a resolved identity.
var (
	// ErrNotInRepository indicates the directory is not inside a git repository.
	ErrNotInRepository = errors.New("not in a git repository")

	// ErrNoMarker indicates no .gswitch marker exists between the directory and the repository root.
	ErrNoMarker = errors.New("no .gswitch file found in current git repository")

	// ErrMalformedMarker indicates a .gswitch marker is empty or whitespace only.
	ErrMalformedMarker = errors.New(".gswitch file is empty")

	// ErrUnknownProfile indicates a marker names a profile that is not in the store.
	ErrUnknownProfile = errors.New("profile specified in .gswitch file not found")

	// ErrMarkerExists indicates a .gswitch marker is already present in the directory.
	ErrMarkerExists = errors.New(".gswitch file already exists")
)

// Profile errors indicate issues with profile records or lookups.
var (
	// ErrProfileNotFound indicates the named profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileExists indicates a profile with that name already exists.
	ErrProfileExists = errors.New("profile already exists")

	// ErrInvalidProfile indicates a profile record is missing required fields or is malformed.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidEmail indicates the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
)

// Git errors indicate failures talking to git configuration.
var (
	// ErrGitConfig indicates a git config invocation failed.
	ErrGitConfig = errors.New("git config failed")

	// ErrIdentityNotConfigured indicates git has no user.name or user.email configured.
	ErrIdentityNotConfigured = errors.New("git identity is not configured")
)

// Command input errors.
var (
	// ErrUnsupportedShell indicates activation was requested for an unknown shell.
	ErrUnsupportedShell = errors.New("unsupported shell")

	// ErrInvalidDateFormat indicates a history date filter is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidFormat indicates an unknown output format was requested.
	ErrInvalidFormat = errors.New("invalid output format")
)
