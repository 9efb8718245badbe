package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/gswitch/internal/shell"
)

var activateCmd = &cobra.Command{
	Use:   "activate <shell>",
	Short: "Print a shell hook that runs 'gsw auto' on directory change",
	Long: `Prints a script that applies .gswitch files whenever the working directory
changes. Supported shells: bash, zsh, fish and nushell.

Examples:
  eval "$(gsw activate bash)"          # ~/.bashrc
  eval "$(gsw activate zsh)"           # ~/.zshrc
  gsw activate fish | source           # ~/.config/fish/config.fish
  gsw activate nushell | save -f ~/.config/nushell/gsw.nu`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: shell.Shells(),
	RunE:      runActivate,
}

func runActivate(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting activate command")

	script, err := shell.Script(args[0], RootCmd.Name())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}
