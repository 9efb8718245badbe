package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/gswitch/internal/ui"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var localCmd = &cobra.Command{
	Use:   "local <name>",
	Short: "Apply a profile to the current repository only",
	Long: `Writes the profile to the local configuration of the git repository that
contains the working directory.

Examples:
  cd ~/work/api && gsw local work`,
	Args: cobra.ExactArgs(1),
	RunE: runLocal,
}

func runLocal(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting local command")

	env, err := newEnv()
	if err != nil {
		return err
	}

	spinner, cleanup := startSpinner(cmd.OutOrStdout(), "Applying repository identity...")
	defer cleanup()

	result, err := workflows.Local(context.Background(), env, workflows.LocalOptions{Name: args[0]})
	if err != nil {
		return err
	}

	spinner.FinalMSG = ui.Success.Sprint("✓") + " Using " + ui.Profile.Sprint(result.Profile.Name) +
		" " + ui.Email.Sprint(result.Profile.Email) + " in " + ui.Path.Sprint(result.RepoRoot)
	cleanup()

	warnStaleKey(cmd, result.StaleSigningKey, "--local")
	return nil
}
