package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var promptPrefix string

func init() {
	promptCmd.Flags().StringVar(&promptPrefix, "prefix", " ", "text printed before the profile name")
}

// resetPromptCommandState resets the prompt command's global state for testing.
func resetPromptCommandState() {
	promptPrefix = " "
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the profile selected here, for shell prompts",
	Long: `Prints the name of the profile a .gswitch file selects for the working
directory, with no trailing newline. Prints nothing when no profile applies.
It never changes git configuration and never fails.

Examples:
  PS1='$(gsw prompt --prefix " git:")\$ '

  # starship.toml
  [custom.gsw]
  command = "gsw prompt"
  when = true`,
	Args: cobra.NoArgs,
	Run:  runPrompt,
}

func runPrompt(cmd *cobra.Command, args []string) {
	env, err := newEnv()
	if err != nil {
		Logger.Debugf("prompt: %v", err)
		return
	}

	name := workflows.Prompt(context.Background(), env)
	if name == "" {
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), promptPrefix+name)
}
