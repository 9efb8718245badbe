package cmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/profiles"
	"github.com/PolarWolf314/gswitch/internal/ui"
	"github.com/PolarWolf314/gswitch/internal/utils"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var (
	addUserName   string
	addEmail      string
	addSigningKey string

	// addInteractive reports whether missing values may be prompted for.
	addInteractive = utils.IsTerminal
)

func init() {
	addCmd.Flags().StringVar(&addUserName, "user-name", "", "git user.name for this profile")
	addCmd.Flags().StringVar(&addEmail, "email", "", "git user.email for this profile")
	addCmd.Flags().StringVar(&addSigningKey, "signing-key", "", "GPG key id or SSH public key used to sign commits")
}

// resetAddCommandState resets the add command's global state for testing.
func resetAddCommandState() {
	addUserName = ""
	addEmail = ""
	addSigningKey = ""
	addInteractive = utils.IsTerminal
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or replace a profile",
	Long: `Stores a named git identity. Adding a name that already exists replaces that
profile entirely.

When --user-name or --email is missing and stdin is a terminal, gsw asks for it.

Examples:
  gsw add work --user-name "Jane Smith" --email jane@company.com
  gsw add oss --user-name jsmith --email jsmith@users.noreply.github.com --signing-key ~/.ssh/id_ed25519.pub
  gsw add personal                     # prompts for the rest`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting add command")

	p := profiles.Profile{
		Name:       args[0],
		UserName:   addUserName,
		Email:      addEmail,
		SigningKey: addSigningKey,
	}

	if p.UserName == "" || p.Email == "" {
		if !addInteractive() {
			return fmt.Errorf("%w: --user-name and --email are required", gerrors.ErrInvalidProfile)
		}
		if err := promptMissing(cmd, &p); err != nil {
			return err
		}
	}

	env, err := newEnv()
	if err != nil {
		return err
	}

	result, err := workflows.Add(context.Background(), env, workflows.AddOptions{Profile: p})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Replaced {
		ui.Successf(out, "Updated profile %s", ui.Profile.Sprint(p.Name))
	} else {
		ui.Successf(out, "Added profile %s", ui.Profile.Sprint(p.Name))
	}
	printProfileDetails(cmd, result.Profile)
	return nil
}

func promptMissing(cmd *cobra.Command, p *profiles.Profile) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	w := cmd.ErrOrStderr()
	var err error

	if p.UserName == "" {
		if p.UserName, err = utils.PromptForInput(reader, w, "User name", ""); err != nil {
			return err
		}
	}
	if p.Email == "" {
		if p.Email, err = utils.PromptForInput(reader, w, "Email", ""); err != nil {
			return err
		}
	}
	if p.SigningKey == "" {
		if p.SigningKey, err = utils.PromptForInput(reader, w, "Signing key (optional)", ""); err != nil {
			return err
		}
	}
	return nil
}

func printProfileDetails(cmd *cobra.Command, p profiles.Profile) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Name:  %s\n", p.UserName)
	fmt.Fprintf(out, "  Email: %s\n", ui.Email.Sprint(p.Email))
	if p.HasSigningKey() {
		fmt.Fprintf(out, "  Signing key: %s\n", ui.Highlight.Sprint(p.SigningKey))
	}
}
