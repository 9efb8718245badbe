package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
)

func newTree(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(dir, 0755))
	}
	return fs
}

func TestFindRoot(t *testing.T) {
	fs := newTree(t, "/repo/.git", "/repo/a/b/c", "/outside/x")

	tests := []struct {
		name      string
		start     string
		wantRoot  string
		wantFound bool
	}{
		{"root itself", "/repo", "/repo", true},
		{"nested directory", "/repo/a/b/c", "/repo", true},
		{"outside any repository", "/outside/x", "", false},
		{"filesystem root", "/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, found, err := FindRoot(fs, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantRoot, root)
		})
	}
}

func TestFindRootNearestWins(t *testing.T) {
	fs := newTree(t, "/outer/.git", "/outer/vendor/inner/.git", "/outer/vendor/inner/src")

	root, found, err := FindRoot(fs, "/outer/vendor/inner/src")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "/outer/vendor/inner", root)
}

func TestFindRootInvalidStart(t *testing.T) {
	fs := newTree(t, "/repo/.git")
	require.NoError(t, afero.WriteFile(fs, "/repo/file.txt", []byte("x"), 0644))

	for _, start := range []string{"", "/does/not/exist", "/repo/file.txt"} {
		_, _, err := FindRoot(fs, start)
		assert.ErrorIs(t, err, gerrors.ErrInvalidPath, "start %q", start)
	}
}

func TestDetectWorktree(t *testing.T) {
	fs := newTree(t, "/main/.git/worktrees/feature", "/wt/feature/src")
	require.NoError(t, afero.WriteFile(fs, "/wt/feature/.git",
		[]byte("gitdir: /main/.git/worktrees/feature\n"), 0644))

	d, found, err := Detect(fs, "/wt/feature/src")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "/wt/feature", d.Root)
	assert.Equal(t, "/wt/feature/.git", d.GitPath)
	assert.True(t, d.Worktree)
	assert.Equal(t, "/main", d.MainRoot)
}

func TestDetectSubmodule(t *testing.T) {
	fs := newTree(t, "/super/.git/modules/lib", "/super/lib")
	require.NoError(t, afero.WriteFile(fs, "/super/lib/.git",
		[]byte("gitdir: ../.git/modules/lib\n"), 0644))

	d, found, err := Detect(fs, "/super/lib")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "/super/lib", d.Root)
	assert.True(t, d.Worktree)
	assert.Equal(t, "/super/lib", d.MainRoot)
}

func TestDetectPlainRepository(t *testing.T) {
	fs := newTree(t, "/repo/.git")

	d, found, err := Detect(fs, "/repo")
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, d.Worktree)
	assert.Equal(t, "/repo", d.MainRoot)
}

func TestFindRootSkipsSymlinkLoop(t *testing.T) {
	dir := t.TempDir()
	repoDir := filepath.Join(dir, "repo")
	nested := filepath.Join(repoDir, "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(repoDir, ".git"), 0755))
	require.NoError(t, os.MkdirAll(nested, 0755))

	// sub/.git points at itself, so stat fails with ELOOP.
	if err := os.Symlink(filepath.Join(nested, ".git"), filepath.Join(nested, ".git")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	root, found, err := FindRoot(afero.NewOsFs(), nested)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, repoDir, root)
}
