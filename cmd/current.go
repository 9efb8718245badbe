package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/resolve"
	"github.com/PolarWolf314/gswitch/internal/ui"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var currentFormat string

func init() {
	currentCmd.Flags().StringVarP(&currentFormat, "format", "f", "full", "output format: full, name or email")
}

// resetCurrentCommandState resets the current command's global state for testing.
func resetCurrentCommandState() {
	currentFormat = "full"
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the git identity used in this directory",
	Long: `Shows the user name, email and signing key git resolves for the working
directory, which stored profile matches them, and which profile a .gswitch file
selects here.

--format name and --format email print only that value and nothing at all on
failure, for use in scripts and prompts.

Examples:
  gsw current
  gsw current --format email`,
	Args: cobra.NoArgs,
	RunE: runCurrent,
}

func runCurrent(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting current command")

	switch currentFormat {
	case "full":
	case "name", "email":
		printCurrentValue(cmd)
		return nil
	default:
		return fmt.Errorf("%w: %q (use full, name or email)", gerrors.ErrInvalidFormat, currentFormat)
	}

	env, err := newEnv()
	if err != nil {
		return err
	}

	result, err := workflows.Current(context.Background(), env)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	id := result.Identity

	fmt.Fprintln(out, "Current git identity:")
	fmt.Fprintf(out, "  Name:  %s\n", valueOrUnset(id.UserName))
	if id.Email == "" {
		fmt.Fprintf(out, "  Email: %s\n", ui.Muted.Sprint("not set"))
	} else {
		fmt.Fprintf(out, "  Email: %s %s\n", ui.Email.Sprint(id.Email), ui.Muted.Sprint("from "+id.EmailSource))
	}
	if id.SigningKey != "" {
		fmt.Fprintf(out, "  Signing key: %s\n", ui.Highlight.Sprint(id.SigningKey))
	}

	if result.Profile != "" {
		fmt.Fprintf(out, "  Profile: %s\n", ui.Profile.Sprint(result.Profile))
	} else {
		fmt.Fprintf(out, "  Profile: %s\n", ui.Muted.Sprint("no matching profile"))
	}

	if repo := result.Repository; repo != nil {
		if repo.Worktree {
			fmt.Fprintf(out, "  Repository: %s %s\n", ui.Path.Sprint(repo.Root), ui.Muted.Sprint("worktree of "+repo.MainRoot))
		} else {
			fmt.Fprintf(out, "  Repository: %s\n", ui.Path.Sprint(repo.Root))
		}
	}

	printResolution(cmd, result.Resolution)
	return nil
}

// printCurrentValue prints one field of the identity, or nothing on any error.
func printCurrentValue(cmd *cobra.Command) {
	env, err := newEnv()
	if err != nil {
		Logger.Debugf("current: %v", err)
		return
	}
	result, err := workflows.Current(context.Background(), env)
	if err != nil {
		Logger.Debugf("current: %v", err)
		return
	}

	value := result.Identity.UserName
	if currentFormat == "email" {
		value = result.Identity.Email
	}
	if value != "" {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
}

func printResolution(cmd *cobra.Command, res *resolve.Resolution) {
	if res == nil {
		return
	}
	out := cmd.OutOrStdout()

	switch res.Outcome {
	case resolve.Resolved:
		fmt.Fprintf(out, "  Marker: %s selects %s\n", ui.Path.Sprint(res.MarkerPath), ui.Profile.Sprint(res.ProfileName))
	case resolve.NoMarker:
		fmt.Fprintf(out, "  Marker: %s\n", ui.Muted.Sprint("none"))
	case resolve.MalformedMarker, resolve.UnknownProfile:
		fmt.Fprintf(out, "  Marker: %s\n", ui.Warning.Sprint(res.Err().Error()))
	}
}

func valueOrUnset(s string) string {
	if s == "" {
		return ui.Muted.Sprint("not set")
	}
	return s
}
