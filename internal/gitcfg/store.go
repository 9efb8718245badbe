package gitcfg

import (
	"context"
	"fmt"
)

// Keys written when applying an identity.
const (
	KeyUserName   = "user.name"
	KeyUserEmail  = "user.email"
	KeySigningKey = "user.signingkey"
	KeyGPGSign    = "commit.gpgsign"
	KeyGPGFormat  = "gpg.format"
)

type ScopeKind int

const (
	Global ScopeKind = iota
	Local
)

// Scope selects a configuration file. Local scopes name the repository root
// whose .git/config is meant.
type Scope struct {
	Kind     ScopeKind
	RepoRoot string
}

func GlobalScope() Scope {
	return Scope{Kind: Global}
}

func LocalScope(repoRoot string) Scope {
	return Scope{Kind: Local, RepoRoot: repoRoot}
}

func (s Scope) String() string {
	if s.Kind == Local {
		return "local"
	}
	return "global"
}

// Store is the subset of git configuration gsw needs.
type Store interface {
	// Get reads key from exactly one scope. A missing key is not an error.
	Get(ctx context.Context, key string, scope Scope) (string, bool, error)

	// Set writes key at scope.
	Set(ctx context.Context, key, value string, scope Scope) error

	// Effective reads key as git would see it from dir, local before global.
	Effective(ctx context.Context, key, dir string) (string, bool, error)
}

func checkScope(scope Scope) error {
	if scope.Kind == Local && scope.RepoRoot == "" {
		return fmt.Errorf("local scope requires a repository root")
	}
	return nil
}
