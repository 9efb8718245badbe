package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/gswitch/internal/ui"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a stored profile",
	Long: `Deletes a profile from the store. Git configuration that was already written
with the profile stays as it is.

Examples:
  gsw remove old-job`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting remove command")

	env, err := newEnv()
	if err != nil {
		return err
	}

	result, err := workflows.Remove(context.Background(), env, workflows.RemoveOptions{Name: args[0]})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Removed {
		ui.Warnf(out, "No profile named %s", ui.Profile.Sprint(args[0]))
		return nil
	}

	ui.Successf(out, "Removed profile %s", ui.Profile.Sprint(args[0]))
	if result.WasCurrent {
		ui.Hintf(out, "It was the global profile; your global git identity is unchanged")
	}
	return nil
}
