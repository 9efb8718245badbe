package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/gswitch/internal/resolve"
	"github.com/PolarWolf314/gswitch/internal/ui"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var autoQuiet bool

func init() {
	autoCmd.Flags().BoolVarP(&autoQuiet, "quiet", "q", false, "print only changes, warnings and errors")
}

// resetAutoCommandState resets the auto command's global state for testing.
func resetAutoCommandState() {
	autoQuiet = false
}

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Apply the profile selected by the nearest .gswitch file",
	Long: `Looks for a .gswitch file from the working directory up to the repository
root and applies the profile it names to the repository's local configuration.

The shell hooks installed by 'gsw activate' run 'gsw auto --quiet' on every
directory change. Quiet mode says nothing outside repositories, without a
.gswitch file, or when the repository already uses the profile.

Examples:
  gsw auto
  gsw auto --quiet`,
	Args: cobra.NoArgs,
	RunE: runAuto,
}

func runAuto(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting auto command")

	env, err := newEnv()
	if err != nil {
		return err
	}

	result, err := workflows.Auto(context.Background(), env)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	res := result.Resolution

	switch res.Outcome {
	case resolve.NotInRepository:
		if !autoQuiet {
			ui.Warnf(out, "Auto switching only works inside git repositories")
		}
		return nil

	case resolve.NoMarker:
		if !autoQuiet {
			ui.Warnf(out, "No .gswitch file found in this git repository")
			ui.Hintf(out, "Run %s to create one", ui.Code.Sprint("gsw init <profile>"))
		}
		return nil

	case resolve.MalformedMarker:
		ui.Warnf(out, "%s is empty; ignoring it", ui.Path.Sprint(res.MarkerPath))
		return nil

	case resolve.UnknownProfile:
		return res.Err()
	}

	if autoQuiet && !result.Changed {
		return nil
	}

	if result.Changed {
		ui.Successf(out, "Auto-switched to %s %s locally", ui.Profile.Sprint(res.ProfileName), ui.Email.Sprint(res.Profile.Email))
	} else {
		ui.Successf(out, "Already using %s %s", ui.Profile.Sprint(res.ProfileName), ui.Email.Sprint(res.Profile.Email))
	}
	warnStaleKey(cmd, result.StaleSigningKey, "--local")
	return nil
}
