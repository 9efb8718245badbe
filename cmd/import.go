package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/gswitch/internal/ui"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var importForce bool

func init() {
	importCmd.Flags().BoolVar(&importForce, "force", false, "replace an existing profile with the same name")
}

// resetImportCommandState resets the import command's global state for testing.
func resetImportCommandState() {
	importForce = false
}

var importCmd = &cobra.Command{
	Use:   "import <name>",
	Short: "Save the identity git uses now as a profile",
	Long: `Reads user.name, user.email and user.signingkey as git resolves them in the
current directory and stores them as a new profile.

Examples:
  gsw import personal
  gsw import work --force              # replace an existing profile`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting import command")

	env, err := newEnv()
	if err != nil {
		return err
	}

	spinner, cleanup := startSpinner(cmd.OutOrStdout(), "Reading git identity...")
	defer cleanup()

	result, err := workflows.Import(context.Background(), env, workflows.ImportOptions{
		Name:  args[0],
		Force: importForce,
	})
	if err != nil {
		return err
	}

	verb := "Imported"
	if result.Replaced {
		verb = "Replaced"
	}
	spinner.FinalMSG = ui.Success.Sprint("✓") + " " + verb + " current git identity as profile " + ui.Profile.Sprint(result.Profile.Name)
	cleanup()
	printProfileDetails(cmd, result.Profile)
	return nil
}
