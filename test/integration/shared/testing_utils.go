// Package shared contains testing utilities shared between integration tests.
// The tests drive the real command tree against the OS filesystem and a real
// git binary, isolated from the user's own configuration.
package shared

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/gswitch/cmd"
)

// Env is one isolated home directory with its own global git configuration
// and profile store.
type Env struct {
	Home      string
	StorePath string
}

// SetupTestEnvironment points HOME, the global git config and GSWITCH_CONFIG
// at a fresh temporary directory. It skips the test when git is unavailable.
func SetupTestEnvironment(t *testing.T) *Env {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	home := ResolvedTempDir(t)
	env := &Env{
		Home:      home,
		StorePath: filepath.Join(home, ".config", "gswitch", "config.toml"),
	}

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GSWITCH_CONFIG", env.StorePath)
	t.Setenv("NO_COLOR", "1")

	t.Cleanup(cmd.ResetGlobalState)
	return env
}

// ResolvedTempDir returns a temporary directory with symlinks resolved, so
// paths compare equal to what os.Getwd reports inside it.
func ResolvedTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	return dir
}

// InitRepo creates a git repository at dir.
func InitRepo(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	Git(t, dir, "init", "-q")
}

// Git runs git in dir and returns its trimmed output.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	c := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := c.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// GitConfig reads key from the given git config scope ("--global" or
// "--local"), returning "" when it is unset.
func GitConfig(t *testing.T, dir, scope, key string) string {
	t.Helper()
	out, err := exec.Command("git", "-C", dir, "config", scope, "--get", key).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Run executes gsw with args from inside dir.
func (e *Env) Run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to %s: %v", dir, err)
	}
	defer func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	}()

	var stdout, stderr bytes.Buffer
	cmd.RootCmd.SetOut(&stdout)
	cmd.RootCmd.SetErr(&stderr)
	cmd.RootCmd.SetIn(strings.NewReader(""))
	cmd.RootCmd.SetArgs(args)
	defer func() {
		cmd.RootCmd.SetOut(nil)
		cmd.RootCmd.SetErr(nil)
		cmd.RootCmd.SetIn(nil)
		cmd.RootCmd.SetArgs(nil)
		cmd.ResetGlobalState()
	}()

	err = cmd.RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// MustRun runs gsw and fails the test on error.
func (e *Env) MustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	stdout, stderr, err := e.Run(t, dir, args...)
	if err != nil {
		t.Fatalf("gsw %s failed: %v\nstdout: %s\nstderr: %s", strings.Join(args, " "), err, stdout, stderr)
	}
	return stdout
}
