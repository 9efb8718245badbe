// Package identity writes profiles into git configuration and reads the
// identity git currently uses.
package identity

import (
	"context"
	"fmt"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/gitcfg"
	"github.com/PolarWolf314/gswitch/internal/profiles"
)

// Scope is where an identity is written.
type Scope = gitcfg.Scope

// Identity is the user.* configuration git resolves for a directory.
type Identity struct {
	UserName   string
	Email      string
	SigningKey string

	// EmailSource is "local", "global" or "other" for the scope that supplied
	// user.email, and empty when no email is configured.
	EmailSource string
}

// Applier writes profiles through a git configuration store.
type Applier struct {
	Git gitcfg.Store
}

// Apply sets user.name and user.email at scope. Profiles with a signing key
// also set user.signingkey and commit.gpgsign, plus gpg.format when the key
// kind is unambiguous. Profiles without one leave any signing configuration
// at scope as it is.
func (a Applier) Apply(ctx context.Context, p profiles.Profile, scope Scope) error {
	if scope.Kind == gitcfg.Local && scope.RepoRoot == "" {
		return fmt.Errorf("%w: local identity needs a repository", gerrors.ErrNotInRepository)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	type setting struct{ key, value string }
	settings := []setting{
		{gitcfg.KeyUserName, p.UserName},
		{gitcfg.KeyUserEmail, p.Email},
	}

	if p.HasSigningKey() {
		kind, err := profiles.SigningKind(p.SigningKey)
		if err != nil {
			return err
		}
		settings = append(settings,
			setting{gitcfg.KeySigningKey, p.SigningKey},
			setting{gitcfg.KeyGPGSign, "true"},
		)
		switch kind {
		case profiles.KeySSH:
			settings = append(settings, setting{gitcfg.KeyGPGFormat, "ssh"})
		case profiles.KeyGPG:
			settings = append(settings, setting{gitcfg.KeyGPGFormat, "openpgp"})
		}
	}

	for _, s := range settings {
		if err := a.Git.Set(ctx, s.key, s.value, scope); err != nil {
			return err
		}
	}
	return nil
}

// StaleSigningKey returns the signing key configured at scope when p has none
// of its own, so callers can warn that it still applies.
func (a Applier) StaleSigningKey(ctx context.Context, p profiles.Profile, scope Scope) (string, bool, error) {
	if p.HasSigningKey() {
		return "", false, nil
	}
	return a.Git.Get(ctx, gitcfg.KeySigningKey, scope)
}

// ImportCurrent reads the effective identity for dir as an unnamed profile.
func (a Applier) ImportCurrent(ctx context.Context, dir string) (profiles.Profile, error) {
	name, hasName, err := a.Git.Effective(ctx, gitcfg.KeyUserName, dir)
	if err != nil {
		return profiles.Profile{}, err
	}
	email, hasEmail, err := a.Git.Effective(ctx, gitcfg.KeyUserEmail, dir)
	if err != nil {
		return profiles.Profile{}, err
	}

	if !hasName || name == "" {
		return profiles.Profile{}, fmt.Errorf("%w: user.name is not set", gerrors.ErrIdentityNotConfigured)
	}
	if !hasEmail || email == "" {
		return profiles.Profile{}, fmt.Errorf("%w: user.email is not set", gerrors.ErrIdentityNotConfigured)
	}

	signingKey, _, err := a.Git.Effective(ctx, gitcfg.KeySigningKey, dir)
	if err != nil {
		return profiles.Profile{}, err
	}

	return profiles.Profile{UserName: name, Email: email, SigningKey: signingKey}, nil
}

// Current reads the identity git uses in dir. repoRoot may be empty when dir
// is outside any repository.
func (a Applier) Current(ctx context.Context, dir, repoRoot string) (Identity, error) {
	var id Identity
	var err error

	if id.UserName, _, err = a.Git.Effective(ctx, gitcfg.KeyUserName, dir); err != nil {
		return Identity{}, err
	}
	if id.SigningKey, _, err = a.Git.Effective(ctx, gitcfg.KeySigningKey, dir); err != nil {
		return Identity{}, err
	}

	email, ok, err := a.Git.Effective(ctx, gitcfg.KeyUserEmail, dir)
	if err != nil {
		return Identity{}, err
	}
	if !ok {
		return id, nil
	}
	id.Email = email

	id.EmailSource, err = a.emailSource(ctx, email, repoRoot)
	if err != nil {
		return Identity{}, err
	}
	return id, nil
}

func (a Applier) emailSource(ctx context.Context, email, repoRoot string) (string, error) {
	scopes := []Scope{gitcfg.GlobalScope()}
	if repoRoot != "" {
		scopes = append([]Scope{gitcfg.LocalScope(repoRoot)}, scopes...)
	}

	for _, scope := range scopes {
		v, ok, err := a.Git.Get(ctx, gitcfg.KeyUserEmail, scope)
		if err != nil {
			return "", err
		}
		if ok && v == email {
			return scope.String(), nil
		}
	}
	return "other", nil
}
