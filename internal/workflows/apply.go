package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/gswitch/internal/audit"
	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/gitcfg"
	"github.com/PolarWolf314/gswitch/internal/profiles"
	"github.com/PolarWolf314/gswitch/internal/repo"
)

// SwitchOptions configures the switch workflow.
type SwitchOptions struct {
	Name string
}

// SwitchResult contains the outcome of a switch operation.
type SwitchResult struct {
	Profile profiles.Profile

	// StaleSigningKey is a global signing key left in place because the
	// profile has none of its own.
	StaleSigningKey string
}

// Switch applies a profile to the global git configuration and remembers it
// as the current profile.
//
// Returns ErrProfileNotFound if no profile has that name.
func Switch(ctx context.Context, env Env, opts SwitchOptions) (*SwitchResult, error) {
	store, err := env.loadStore()
	if err != nil {
		return nil, err
	}

	p, ok := store.Get(opts.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", gerrors.ErrProfileNotFound, opts.Name)
	}

	scope := gitcfg.GlobalScope()
	stale, err := applyProfile(ctx, env, p, scope)
	if err != nil {
		return nil, err
	}

	store.Current = p.Name
	if err := env.saveStore(store); err != nil {
		return nil, err
	}

	env.record(audit.Entry{Operation: "switch", Profile: p.Name, Email: p.Email, Scope: scope.String()})
	return &SwitchResult{Profile: p, StaleSigningKey: stale}, nil
}

// LocalOptions configures the local workflow.
type LocalOptions struct {
	Name string
}

// LocalResult contains the outcome of a local operation.
type LocalResult struct {
	Profile         profiles.Profile
	RepoRoot        string
	StaleSigningKey string
}

// Local applies a profile to the repository containing env.Cwd.
//
// Returns ErrProfileNotFound if no profile has that name.
// Returns ErrNotInRepository if env.Cwd is not inside a git repository.
func Local(ctx context.Context, env Env, opts LocalOptions) (*LocalResult, error) {
	store, err := env.loadStore()
	if err != nil {
		return nil, err
	}

	p, ok := store.Get(opts.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", gerrors.ErrProfileNotFound, opts.Name)
	}

	root, found, err := repo.FindRoot(env.FS, env.Cwd)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", gerrors.ErrNotInRepository, env.Cwd)
	}

	scope := gitcfg.LocalScope(root)
	stale, err := applyProfile(ctx, env, p, scope)
	if err != nil {
		return nil, err
	}

	env.record(audit.Entry{Operation: "local", Profile: p.Name, Email: p.Email, Scope: scope.String(), RepoRoot: root})
	return &LocalResult{Profile: p, RepoRoot: root, StaleSigningKey: stale}, nil
}

// applyProfile applies p at scope and returns any signing key p leaves behind.
func applyProfile(ctx context.Context, env Env, p profiles.Profile, scope gitcfg.Scope) (string, error) {
	a := env.applier()
	if err := a.Apply(ctx, p, scope); err != nil {
		return "", err
	}
	env.Log.Debugf("Applied profile %q at %s scope", p.Name, scope)

	stale, ok, err := a.StaleSigningKey(ctx, p, scope)
	if err != nil {
		env.Log.Debugf("Could not read signing key at %s scope: %v", scope, err)
		return "", nil
	}
	if !ok {
		return "", nil
	}
	return stale, nil
}
