package marker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
)

// FileName is the marker file name.
const FileName = ".gswitch"

// Marker is a marker file and the profile name it selects.
type Marker struct {
	Path    string
	Profile string
}

// MalformedError reports a marker whose content is empty after trimming.
type MalformedError struct {
	Path string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s", gerrors.ErrMalformedMarker, e.Path)
}

func (e *MalformedError) Unwrap() error {
	return gerrors.ErrMalformedMarker
}

// Find walks from start up to boundary, inclusive, and returns the first
// marker file found. start must be boundary or one of its descendants.
//
// A malformed marker stops the walk: Find returns its path together with a
// *MalformedError rather than looking further up.
func Find(fs afero.Fs, start, boundary string) (Marker, bool, error) {
	start, boundary, err := checkWithin(start, boundary)
	if err != nil {
		return Marker{}, false, err
	}

	current := start
	for {
		path := filepath.Join(current, FileName)
		if info, err := fs.Stat(path); err == nil && !info.IsDir() {
			profile, err := Read(fs, path)
			if err != nil {
				return Marker{Path: path}, true, err
			}
			return Marker{Path: path, Profile: profile}, true, nil
		}

		if current == boundary {
			return Marker{}, false, nil
		}
		current = filepath.Dir(current)
	}
}

// Read returns the trimmed profile name in the marker at path.
func Read(fs afero.Fs, path string) (string, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", gerrors.ErrIO, path, err)
	}

	profile := strings.TrimSpace(string(content))
	if profile == "" {
		return "", &MalformedError{Path: path}
	}
	return profile, nil
}

// Write creates dir/.gswitch naming profile. An existing marker is never
// overwritten.
func Write(fs afero.Fs, dir, profile string) (string, error) {
	path := filepath.Join(dir, FileName)

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", gerrors.ErrMarkerExists, path)
		}
		return "", fmt.Errorf("%w: creating %s: %v", gerrors.ErrIO, path, err)
	}

	if _, err := f.WriteString(profile + "\n"); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: writing %s: %v", gerrors.ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: closing %s: %v", gerrors.ErrIO, path, err)
	}
	return path, nil
}

func checkWithin(start, boundary string) (string, string, error) {
	if start == "" || boundary == "" {
		return "", "", fmt.Errorf("%w: start and boundary are required", gerrors.ErrInvalidPath)
	}

	absStart, err := filepath.Abs(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", gerrors.ErrInvalidPath, start, err)
	}
	absBoundary, err := filepath.Abs(boundary)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", gerrors.ErrInvalidPath, boundary, err)
	}

	rel, err := filepath.Rel(absBoundary, absStart)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %s is not inside %s", gerrors.ErrInvalidPath, absStart, absBoundary)
	}
	return absStart, absBoundary, nil
}
