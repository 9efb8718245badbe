package gitcfg

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
)

// Write is one recorded Set call.
type Write struct {
	Key   string
	Value string
	Scope Scope
}

// Memory is an in-memory Store. Local values are kept per repository root.
type Memory struct {
	global map[string]string
	local  map[string]map[string]string

	// Writes lists every Set in call order.
	Writes []Write
}

func NewMemory() *Memory {
	return &Memory{
		global: make(map[string]string),
		local:  make(map[string]map[string]string),
	}
}

func (m *Memory) Get(_ context.Context, key string, scope Scope) (string, bool, error) {
	if err := checkScope(scope); err != nil {
		return "", false, fmt.Errorf("%w: %v", gerrors.ErrGitConfig, err)
	}
	v, ok := m.values(scope)[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string, scope Scope) error {
	if err := checkScope(scope); err != nil {
		return fmt.Errorf("%w: %v", gerrors.ErrGitConfig, err)
	}
	if m.global == nil {
		m.global = make(map[string]string)
	}
	if m.local == nil {
		m.local = make(map[string]map[string]string)
	}

	if scope.Kind == Local {
		if m.local[scope.RepoRoot] == nil {
			m.local[scope.RepoRoot] = make(map[string]string)
		}
		m.local[scope.RepoRoot][key] = value
	} else {
		m.global[key] = value
	}
	m.Writes = append(m.Writes, Write{Key: key, Value: value, Scope: scope})
	return nil
}

func (m *Memory) Effective(_ context.Context, key, dir string) (string, bool, error) {
	if root := m.rootFor(dir); root != "" {
		if v, ok := m.local[root][key]; ok {
			return v, true, nil
		}
	}
	v, ok := m.global[key]
	return v, ok, nil
}

// Values returns a copy of the values at scope.
func (m *Memory) Values(scope Scope) map[string]string {
	out := make(map[string]string)
	for k, v := range m.values(scope) {
		out[k] = v
	}
	return out
}

func (m *Memory) values(scope Scope) map[string]string {
	if scope.Kind == Local {
		return m.local[scope.RepoRoot]
	}
	return m.global
}

// rootFor picks the deepest repository root with local values containing dir.
func (m *Memory) rootFor(dir string) string {
	best := ""
	for root := range m.local {
		if dir == root || strings.HasPrefix(dir, root+string(filepath.Separator)) {
			if len(root) > len(best) {
				best = root
			}
		}
	}
	return best
}
