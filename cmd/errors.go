package cmd

import (
	"errors"
	"io"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/ui"
)

// printError prints err with a follow-up hint when one applies.
func printError(w io.Writer, err error) {
	ui.Failf(w, "%s", err)
	if hint := errorHint(err); hint != "" {
		ui.Hintf(w, "%s", hint)
	}
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, gerrors.ErrProfileNotFound), errors.Is(err, gerrors.ErrUnknownProfile):
		return "Run " + ui.Code.Sprint("gsw list") + " to see available profiles"

	case errors.Is(err, gerrors.ErrProfileExists):
		return "Use " + ui.Code.Sprint("--force") + " to replace it, or choose another name"

	case errors.Is(err, gerrors.ErrIdentityNotConfigured):
		return "Make sure git has at least user.name and user.email configured"

	case errors.Is(err, gerrors.ErrConfigCorrupt):
		return "Fix or delete the profile store file, then try again"

	case errors.Is(err, gerrors.ErrNotInRepository):
		return "Run this command inside a git repository"

	case errors.Is(err, gerrors.ErrMarkerExists):
		return "Edit or delete the existing .gswitch file to change its profile"

	case errors.Is(err, gerrors.ErrGitConfig):
		return "Check that git is installed and on your PATH"

	default:
		return ""
	}
}
