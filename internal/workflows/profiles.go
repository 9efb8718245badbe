package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/gswitch/internal/audit"
	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/profiles"
	"github.com/PolarWolf314/gswitch/internal/utils"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	// Profile is stored as given. An existing profile with the same name is
	// replaced entirely.
	Profile profiles.Profile
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	Profile profiles.Profile

	// Replaced is true when a profile with this name already existed.
	Replaced bool
}

// Add validates and stores a profile.
//
// Returns ErrInvalidProfile or ErrInvalidEmail for incomplete profiles.
func Add(ctx context.Context, env Env, opts AddOptions) (*AddResult, error) {
	if err := opts.Profile.Validate(); err != nil {
		return nil, err
	}

	store, err := env.loadStore()
	if err != nil {
		return nil, err
	}

	_, replaced := store.Get(opts.Profile.Name)
	store.Upsert(opts.Profile)
	if err := env.saveStore(store); err != nil {
		return nil, err
	}

	env.record(audit.Entry{Operation: "add", Profile: opts.Profile.Name, Email: opts.Profile.Email})
	return &AddResult{Profile: opts.Profile, Replaced: replaced}, nil
}

// ImportOptions configures the import workflow.
type ImportOptions struct {
	// Name is the name to store the imported identity under.
	Name string

	// Force replaces an existing profile with the same name.
	Force bool
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	Profile  profiles.Profile
	Replaced bool
}

// Import stores the identity git currently uses in env.Cwd as a profile.
//
// Returns ErrProfileExists if Name is taken and Force is not set.
// Returns ErrIdentityNotConfigured if git has no user.name or user.email.
func Import(ctx context.Context, env Env, opts ImportOptions) (*ImportResult, error) {
	if !utils.IsValidProfileName(opts.Name) {
		return nil, fmt.Errorf("%w: name %q must be non-empty and contain no whitespace", gerrors.ErrInvalidProfile, opts.Name)
	}

	store, err := env.loadStore()
	if err != nil {
		return nil, err
	}

	_, exists := store.Get(opts.Name)
	if exists && !opts.Force {
		return nil, fmt.Errorf("%w: %s", gerrors.ErrProfileExists, opts.Name)
	}

	p, err := env.applier().ImportCurrent(ctx, env.Cwd)
	if err != nil {
		return nil, err
	}
	p.Name = opts.Name
	if err := p.Validate(); err != nil {
		return nil, err
	}

	store.Upsert(p)
	if err := env.saveStore(store); err != nil {
		return nil, err
	}

	env.record(audit.Entry{Operation: "import", Profile: p.Name, Email: p.Email})
	return &ImportResult{Profile: p, Replaced: exists}, nil
}

// ListResult contains the stored profiles.
type ListResult struct {
	// Profiles are in insertion order.
	Profiles []profiles.Profile

	// Current is the profile last applied globally, or empty.
	Current string
}

// List returns every stored profile.
func List(ctx context.Context, env Env) (*ListResult, error) {
	store, err := env.loadStore()
	if err != nil {
		return nil, err
	}
	return &ListResult{Profiles: store.List(), Current: store.Current}, nil
}

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	Name string
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	// Removed is false when no profile had that name.
	Removed bool

	// WasCurrent is true when the removed profile was the global one.
	WasCurrent bool
}

// Remove deletes a profile. Removing an unknown name is not an error.
func Remove(ctx context.Context, env Env, opts RemoveOptions) (*RemoveResult, error) {
	store, err := env.loadStore()
	if err != nil {
		return nil, err
	}

	wasCurrent := store.Current != "" && store.Current == opts.Name
	if !store.Remove(opts.Name) {
		return &RemoveResult{}, nil
	}
	if err := env.saveStore(store); err != nil {
		return nil, err
	}

	env.record(audit.Entry{Operation: "remove", Profile: opts.Name})
	return &RemoveResult{Removed: true, WasCurrent: wasCurrent}, nil
}
