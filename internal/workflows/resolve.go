package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/gswitch/internal/audit"
	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/gitcfg"
	"github.com/PolarWolf314/gswitch/internal/identity"
	"github.com/PolarWolf314/gswitch/internal/marker"
	"github.com/PolarWolf314/gswitch/internal/profiles"
	"github.com/PolarWolf314/gswitch/internal/repo"
	"github.com/PolarWolf314/gswitch/internal/resolve"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Profile is the profile the new marker selects. It must exist.
	Profile string
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	MarkerPath string

	// InRepository is false when the marker was written outside any git
	// repository, where auto switching never reads it.
	InRepository bool
	RepoRoot     string
}

// Init writes a .gswitch marker naming opts.Profile into env.Cwd.
//
// Returns ErrProfileNotFound if the profile does not exist.
// Returns ErrMarkerExists if env.Cwd already has a marker.
func Init(ctx context.Context, env Env, opts InitOptions) (*InitResult, error) {
	store, err := env.loadStore()
	if err != nil {
		return nil, err
	}
	if _, ok := store.Get(opts.Profile); !ok {
		return nil, fmt.Errorf("%w: %s", gerrors.ErrProfileNotFound, opts.Profile)
	}

	root, inRepo, err := repo.FindRoot(env.FS, env.Cwd)
	if err != nil {
		return nil, err
	}

	path, err := marker.Write(env.FS, env.Cwd, opts.Profile)
	if err != nil {
		return nil, err
	}

	env.record(audit.Entry{Operation: "init", Profile: opts.Profile, Marker: path})
	return &InitResult{MarkerPath: path, InRepository: inRepo, RepoRoot: root}, nil
}

// AutoResult contains the outcome of an auto operation.
type AutoResult struct {
	// Resolution is how far resolution got from env.Cwd.
	Resolution *resolve.Resolution

	// Applied is true when the resolved profile was written to the
	// repository configuration.
	Applied bool

	// Changed is true when the repository used a different identity before.
	Changed bool

	StaleSigningKey string
}

// Auto resolves the marker for env.Cwd and applies the selected profile to
// the repository's local configuration.
//
// Non-resolved outcomes are returned in the result, not as errors. Only
// invalid paths, I/O failures, a corrupt store and git failures are errors.
func Auto(ctx context.Context, env Env) (*AutoResult, error) {
	store, err := env.loadStore()
	if err != nil {
		return nil, err
	}

	engine := &resolve.Engine{FS: env.FS, Store: store, Log: env.Log}
	res, err := engine.Resolve(env.Cwd)
	if err != nil {
		return nil, err
	}

	result := &AutoResult{Resolution: res}
	if res.Outcome != resolve.Resolved {
		env.Log.Debugf("Auto switch stopped at %s", res.Outcome)
		return result, nil
	}

	scope := gitcfg.LocalScope(res.RepoRoot)
	changed, err := identityDiffers(ctx, env.Git, res.Profile, scope)
	if err != nil {
		return nil, err
	}

	stale, err := applyProfile(ctx, env, res.Profile, scope)
	if err != nil {
		return nil, err
	}
	result.Applied = true
	result.Changed = changed
	result.StaleSigningKey = stale

	if changed {
		env.record(audit.Entry{
			Operation: "auto",
			Profile:   res.Profile.Name,
			Email:     res.Profile.Email,
			Scope:     scope.String(),
			RepoRoot:  res.RepoRoot,
			Marker:    res.MarkerPath,
		})
	}
	return result, nil
}

func identityDiffers(ctx context.Context, git gitcfg.Store, p profiles.Profile, scope gitcfg.Scope) (bool, error) {
	name, _, err := git.Get(ctx, gitcfg.KeyUserName, scope)
	if err != nil {
		return false, err
	}
	email, _, err := git.Get(ctx, gitcfg.KeyUserEmail, scope)
	if err != nil {
		return false, err
	}
	return name != p.UserName || email != p.Email, nil
}

// Prompt returns the name of the profile selected for env.Cwd, or "" for
// every other outcome. It never fails and never runs git.
func Prompt(ctx context.Context, env Env) string {
	store, err := profiles.Load(env.FS, env.StorePath)
	if err != nil {
		return ""
	}
	engine := &resolve.Engine{FS: env.FS, Store: store}
	p, ok := engine.Quiet(env.Cwd)
	if !ok {
		return ""
	}
	return p.Name
}

// CurrentResult contains the identity git uses in env.Cwd.
type CurrentResult struct {
	Identity identity.Identity

	// Repository is the working tree around env.Cwd, if any.
	Repository *repo.Detection

	// Profile is the stored profile whose user name and email match the
	// identity, or "".
	Profile string

	// Resolution is what auto switching would select here.
	Resolution *resolve.Resolution
}

// Current reports the identity git uses in env.Cwd and how it relates to the
// stored profiles and markers.
func Current(ctx context.Context, env Env) (*CurrentResult, error) {
	detection, inRepo, err := repo.Detect(env.FS, env.Cwd)
	if err != nil {
		return nil, err
	}

	result := &CurrentResult{}
	root := ""
	if inRepo {
		result.Repository = &detection
		root = detection.Root
	}

	result.Identity, err = env.applier().Current(ctx, env.Cwd, root)
	if err != nil {
		return nil, err
	}

	store, err := env.loadStore()
	if err != nil {
		return nil, err
	}
	for _, p := range store.List() {
		if p.UserName == result.Identity.UserName && p.Email == result.Identity.Email {
			result.Profile = p.Name
			break
		}
	}

	engine := &resolve.Engine{FS: env.FS, Store: store, Log: env.Log}
	if result.Resolution, err = engine.Resolve(env.Cwd); err != nil {
		return nil, err
	}
	return result, nil
}
