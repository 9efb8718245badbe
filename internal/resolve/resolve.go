package resolve

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	logger "github.com/PolarWolf314/gswitch/internal/logging"
	"github.com/PolarWolf314/gswitch/internal/marker"
	"github.com/PolarWolf314/gswitch/internal/profiles"
	"github.com/PolarWolf314/gswitch/internal/repo"
)

// Outcome is the terminal state of a resolution.
type Outcome int

const (
	NotInRepository Outcome = iota
	NoMarker
	MalformedMarker
	UnknownProfile
	Resolved
)

func (o Outcome) String() string {
	switch o {
	case NotInRepository:
		return "not-in-repository"
	case NoMarker:
		return "no-marker"
	case MalformedMarker:
		return "malformed-marker"
	case UnknownProfile:
		return "unknown-profile"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Resolution records how far resolution got. Fields past the failing step are
// empty.
type Resolution struct {
	Outcome     Outcome
	Start       string
	RepoRoot    string
	MarkerPath  string
	ProfileName string
	Profile     profiles.Profile
}

// Err returns the sentinel error describing a non-resolved outcome, or nil.
func (r *Resolution) Err() error {
	switch r.Outcome {
	case NotInRepository:
		return fmt.Errorf("%w: %s", gerrors.ErrNotInRepository, r.Start)
	case NoMarker:
		return fmt.Errorf("%w (searched %s up to %s)", gerrors.ErrNoMarker, r.Start, r.RepoRoot)
	case MalformedMarker:
		return &marker.MalformedError{Path: r.MarkerPath}
	case UnknownProfile:
		return fmt.Errorf("%w: %q (%s)", gerrors.ErrUnknownProfile, r.ProfileName, r.MarkerPath)
	default:
		return nil
	}
}

// Engine resolves directories against one loaded profile store.
type Engine struct {
	FS    afero.Fs
	Store *profiles.Store
	Log   logger.Logger
}

func New(fs afero.Fs, store *profiles.Store) *Engine {
	return &Engine{FS: fs, Store: store}
}

// Resolve runs resolution from start. Only ErrInvalidPath and ErrIO are
// returned as errors; every other outcome is reported in the Resolution.
func (e *Engine) Resolve(start string) (*Resolution, error) {
	root, found, err := repo.FindRoot(e.FS, start)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gerrors.ErrInvalidPath, start, err)
	}
	res := &Resolution{Start: abs}

	if !found {
		e.Log.Debugf("%s is not inside a git repository", abs)
		res.Outcome = NotInRepository
		return res, nil
	}
	res.RepoRoot = root
	e.Log.Debugf("Repository root for %s is %s", abs, root)

	m, found, err := marker.Find(e.FS, abs, root)
	var malformed *marker.MalformedError
	switch {
	case errors.As(err, &malformed):
		e.Log.Debugf("Marker %s is empty", malformed.Path)
		res.Outcome = MalformedMarker
		res.MarkerPath = malformed.Path
		return res, nil
	case err != nil:
		return nil, err
	case !found:
		e.Log.Debugf("No %s between %s and %s", marker.FileName, abs, root)
		res.Outcome = NoMarker
		return res, nil
	}
	res.MarkerPath = m.Path
	res.ProfileName = m.Profile
	e.Log.Debugf("Marker %s selects profile %q", m.Path, m.Profile)

	p, ok := e.Store.Get(m.Profile)
	if !ok {
		res.Outcome = UnknownProfile
		return res, nil
	}
	res.Profile = p
	res.Outcome = Resolved
	return res, nil
}

// Quiet resolves start and returns the profile only when resolution
// succeeds. Every other outcome, including errors, is (zero, false).
func (e *Engine) Quiet(start string) (profiles.Profile, bool) {
	if e == nil || e.FS == nil {
		return profiles.Profile{}, false
	}
	res, err := e.Resolve(start)
	if err != nil || res.Outcome != Resolved {
		return profiles.Profile{}, false
	}
	return res.Profile, true
}
