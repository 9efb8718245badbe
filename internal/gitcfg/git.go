package gitcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
)

// DefaultTimeout bounds every git invocation.
const DefaultTimeout = 10 * time.Second

// Git is a Store backed by the git CLI.
type Git struct {
	// Binary defaults to "git" on PATH.
	Binary string

	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration
}

func (g Git) Get(ctx context.Context, key string, scope Scope) (string, bool, error) {
	if err := checkScope(scope); err != nil {
		return "", false, fmt.Errorf("%w: %v", gerrors.ErrGitConfig, err)
	}
	return g.get(ctx, scopeArgs(scope, "--get", key)...)
}

func (g Git) Set(ctx context.Context, key, value string, scope Scope) error {
	if err := checkScope(scope); err != nil {
		return fmt.Errorf("%w: %v", gerrors.ErrGitConfig, err)
	}
	if _, err := g.exec(ctx, scopeArgs(scope, key, value)...); err != nil {
		return fmt.Errorf("%w: setting %s (%s): %v", gerrors.ErrGitConfig, key, scope, err)
	}
	return nil
}

func (g Git) Effective(ctx context.Context, key, dir string) (string, bool, error) {
	args := []string{"config", "--get", key}
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}
	return g.get(ctx, args...)
}

func (g Git) get(ctx context.Context, args ...string) (string, bool, error) {
	out, err := g.exec(ctx, args...)
	if err != nil {
		// git config --get exits 1 when the key is not set.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %s: %v", gerrors.ErrGitConfig, strings.Join(args, " "), err)
	}
	return strings.TrimRight(string(out), "\r\n"), true, nil
}

func (g Git) exec(ctx context.Context, args ...string) ([]byte, error) {
	binary := g.Binary
	if binary == "" {
		binary = "git"
	}
	timeout := g.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return ExecContext(ctx, timeout, "", binary, args...)
}

func scopeArgs(scope Scope, rest ...string) []string {
	var args []string
	if scope.Kind == Local {
		args = append(args, "-C", scope.RepoRoot, "config", "--local")
	} else {
		args = append(args, "config", "--global")
	}
	return append(args, rest...)
}

// ExecContext runs a command with a timeout, folding stderr into the error.
func ExecContext(ctx context.Context, timeout time.Duration, workDir string, name string, args ...string) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}
