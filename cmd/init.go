package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/ui"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var initCmd = &cobra.Command{
	Use:   "init <profile>",
	Short: "Select a profile for this directory with a .gswitch file",
	Long: `Creates a .gswitch file in the working directory naming a stored profile.
Inside a git repository, 'gsw auto' (and the shell hook from 'gsw activate')
applies that profile to the repository whenever you are in this directory or
below it.

Commit the file to share the choice, or add it to .gitignore to keep it local.

Examples:
  cd ~/work/api && gsw init work`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting init command")

	env, err := newEnv()
	if err != nil {
		return err
	}

	ctx := context.Background()
	result, err := workflows.Init(ctx, env, workflows.InitOptions{Profile: args[0]})
	if errors.Is(err, gerrors.ErrProfileNotFound) {
		printAvailableProfiles(ctx, cmd, env)
		return err
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ui.Successf(out, "Created %s selecting %s", ui.Path.Sprint(result.MarkerPath), ui.Profile.Sprint(args[0]))
	if !result.InRepository {
		ui.Warnf(out, "%s is not inside a git repository; the file has no effect until it is", ui.Path.Sprint(env.Cwd))
		return nil
	}
	ui.Hintf(out, "Run %s to apply it now", ui.Code.Sprint("gsw auto"))
	return nil
}

func printAvailableProfiles(ctx context.Context, cmd *cobra.Command, env workflows.Env) {
	list, err := workflows.List(ctx, env)
	if err != nil || len(list.Profiles) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available profiles:")
	for _, p := range list.Profiles {
		fmt.Fprintf(out, "  %s\n", ui.Profile.Sprint(p.Name))
	}
}
