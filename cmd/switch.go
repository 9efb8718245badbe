package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/gswitch/internal/ui"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var switchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Apply a profile to the global git configuration",
	Long: `Writes the profile's user.name and user.email (and signing settings, when the
profile has a key) to the global git configuration, and remembers it as the
current profile.

Repositories with their own user.* settings keep them.

Examples:
  gsw switch personal`,
	Args: cobra.ExactArgs(1),
	RunE: runSwitch,
}

func runSwitch(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting switch command")

	env, err := newEnv()
	if err != nil {
		return err
	}

	spinner, cleanup := startSpinner(cmd.OutOrStdout(), "Switching global identity...")
	defer cleanup()

	result, err := workflows.Switch(context.Background(), env, workflows.SwitchOptions{Name: args[0]})
	if err != nil {
		return err
	}

	spinner.FinalMSG = ui.Success.Sprint("✓") + " Switched to " + ui.Profile.Sprint(result.Profile.Name) +
		" " + ui.Email.Sprint(result.Profile.Email) + " globally"
	cleanup()

	warnStaleKey(cmd, result.StaleSigningKey, "--global")
	return nil
}

// warnStaleKey reports a signing key left over from another identity.
func warnStaleKey(cmd *cobra.Command, key, flag string) {
	if key == "" {
		return
	}
	out := cmd.OutOrStdout()
	ui.Warnf(out, "This profile has no signing key; %s is still set to %s", ui.Code.Sprint("user.signingkey"), ui.Highlight.Sprint(key))
	ui.Hintf(out, "Run %s if commits should not be signed with it", ui.Code.Sprint("git config "+flag+" --unset user.signingkey"))
}
