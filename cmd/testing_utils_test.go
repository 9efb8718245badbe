package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/PolarWolf314/gswitch/internal/gitcfg"
	"github.com/PolarWolf314/gswitch/internal/marker"
	"github.com/PolarWolf314/gswitch/internal/profiles"
)

const (
	testHome      = "/home/jane"
	testStorePath = "/home/jane/.config/gswitch/config.toml"
	testRepo      = "/home/jane/src/api"
)

// testEnv is the in-memory world a command runs against.
type testEnv struct {
	fs  afero.Fs
	git *gitcfg.Memory
	cwd string
}

// setupTestEnvironment swaps the package collaborators for an in-memory
// filesystem and git configuration, with cwd as the working directory.
func setupTestEnvironment(t *testing.T, cwd string) *testEnv {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, dir := range []string{testHome, filepath.Join(testRepo, ".git"), filepath.Join(testRepo, "cmd", "server"), "/tmp/scratch"} {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	env := &testEnv{fs: fs, git: gitcfg.NewMemory(), cwd: cwd}

	originalFs, originalGit, originalGetwd := appFs, gitStore, getwd
	originalNoColor := color.NoColor
	originalInteractive := addInteractive

	appFs = env.fs
	gitStore = env.git
	getwd = func() (string, error) { return env.cwd, nil }
	color.NoColor = true

	t.Cleanup(func() {
		appFs, gitStore, getwd = originalFs, originalGit, originalGetwd
		color.NoColor = originalNoColor
		addInteractive = originalInteractive
		ResetGlobalState()
	})

	ResetGlobalState()
	addInteractive = func() bool { return false }
	return env
}

// run executes gsw with args and returns what it wrote to stdout and stderr.
func (e *testEnv) run(t *testing.T, args ...string) (string, string, error) {
	return e.runWithInput(t, "", args...)
}

func (e *testEnv) runWithInput(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetIn(strings.NewReader(input))
	RootCmd.SetArgs(append([]string{"--config", testStorePath}, args...))
	defer func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetIn(nil)
		RootCmd.SetArgs(nil)
	}()

	err := RootCmd.Execute()
	ResetGlobalState()
	return stdout.String(), stderr.String(), err
}

// mustRun runs a command that is expected to succeed and returns its stdout.
func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	stdout, stderr, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("gsw %s failed: %v\nstdout: %s\nstderr: %s", strings.Join(args, " "), err, stdout, stderr)
	}
	return stdout
}

func (e *testEnv) seedProfiles(t *testing.T, ps ...profiles.Profile) {
	t.Helper()
	store, err := profiles.Load(e.fs, testStorePath)
	if err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}
	for _, p := range ps {
		store.Upsert(p)
	}
	if err := profiles.Save(e.fs, testStorePath, store); err != nil {
		t.Fatalf("Failed to save store: %v", err)
	}
}

func (e *testEnv) loadStore(t *testing.T) *profiles.Store {
	t.Helper()
	store, err := profiles.Load(e.fs, testStorePath)
	if err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}
	return store
}

func (e *testEnv) writeMarker(t *testing.T, dir, content string) {
	t.Helper()
	if err := afero.WriteFile(e.fs, filepath.Join(dir, marker.FileName), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write marker: %v", err)
	}
}

func (e *testEnv) setGlobal(t *testing.T, key, value string) {
	t.Helper()
	if err := e.git.Set(context.Background(), key, value, gitcfg.GlobalScope()); err != nil {
		t.Fatalf("Failed to set %s: %v", key, err)
	}
}

var (
	workProfile     = profiles.Profile{Name: "work", UserName: "Jane Smith", Email: "jane@company.com"}
	personalProfile = profiles.Profile{Name: "personal", UserName: "Jane", Email: "jane@home.org", SigningKey: "ABC123"}
)
