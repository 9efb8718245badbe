// Package repo locates the git working tree that contains a directory.
package repo

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
)

// GitDirName is the metadata entry that marks a working tree root.
const GitDirName = ".git"

// Detection describes the repository found above a directory.
type Detection struct {
	// Root is the working tree root, the directory holding .git.
	Root string

	// GitPath is the .git entry itself.
	GitPath string

	// Worktree is true when .git is a file, as in linked worktrees and submodules.
	Worktree bool

	// MainRoot is the main repository root for linked worktrees, else Root.
	MainRoot string
}

// FindRoot walks upward from start, inclusive, and returns the first directory
// containing a .git entry. Directories that cannot be inspected are skipped.
// It fails with ErrInvalidPath only when start itself is not a directory.
func FindRoot(fs afero.Fs, start string) (string, bool, error) {
	d, found, err := Detect(fs, start)
	if err != nil || !found {
		return "", false, err
	}
	return d.Root, true, nil
}

// Detect is FindRoot with details about the .git entry.
func Detect(fs afero.Fs, start string) (Detection, bool, error) {
	current, err := checkStart(fs, start)
	if err != nil {
		return Detection{}, false, err
	}

	for {
		gitPath := filepath.Join(current, GitDirName)
		// Permission errors and symlink loops mean "not here".
		if info, err := fs.Stat(gitPath); err == nil {
			d := Detection{Root: current, GitPath: gitPath, MainRoot: current}
			if info.Mode().IsRegular() {
				d.Worktree = true
				d.MainRoot = mainRootFromGitFile(fs, current, gitPath)
			}
			return d, true, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return Detection{}, false, nil
		}
		current = parent
	}
}

func checkStart(fs afero.Fs, start string) (string, error) {
	if start == "" {
		return "", fmt.Errorf("%w: empty start directory", gerrors.ErrInvalidPath)
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", gerrors.ErrInvalidPath, start, err)
	}

	info, err := fs.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", gerrors.ErrInvalidPath, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", gerrors.ErrInvalidPath, abs)
	}
	return abs, nil
}

// mainRootFromGitFile follows "gitdir: /main/.git/worktrees/name" back to
// /main. Submodules and unreadable files resolve to the worktree itself.
func mainRootFromGitFile(fs afero.Fs, worktree, gitFile string) string {
	content, err := afero.ReadFile(fs, gitFile)
	if err != nil {
		return worktree
	}

	line := strings.TrimSpace(string(content))
	if !strings.HasPrefix(line, "gitdir:") {
		return worktree
	}
	gitDir := strings.TrimSpace(strings.TrimPrefix(line, "gitdir:"))
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(worktree, gitDir)
	}
	gitDir = filepath.Clean(gitDir)

	sep := string(filepath.Separator)
	if idx := strings.Index(gitDir, sep+"worktrees"+sep); idx > 0 {
		return filepath.Dir(gitDir[:idx])
	}
	return worktree
}
