package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/profiles"
	"github.com/PolarWolf314/gswitch/internal/ui"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var listOutput string

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "text", "output format: text, json or yaml")
}

// resetListCommandState resets the list command's global state for testing.
func resetListCommandState() {
	listOutput = "text"
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored profiles",
	Long: `Lists every stored profile in the order it was added. The profile last applied
with 'gsw switch' is marked with *.

Examples:
  gsw list
  gsw list --output json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// listedProfile is the machine-readable form of one profile.
type listedProfile struct {
	profiles.Profile `yaml:",inline"`
	Current          bool `json:"current" yaml:"current"`
}

func runList(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting list command")

	switch listOutput {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q (use text, json or yaml)", gerrors.ErrInvalidFormat, listOutput)
	}

	env, err := newEnv()
	if err != nil {
		return err
	}

	result, err := workflows.List(context.Background(), env)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch listOutput {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(listed(result))

	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(listed(result)); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(result.Profiles) == 0 {
		fmt.Fprintln(out, "No profiles configured.")
		ui.Hintf(out, "Run %s to create one", ui.Code.Sprint("gsw add <name> --user-name <name> --email <email>"))
		return nil
	}

	for _, p := range result.Profiles {
		mark := " "
		if p.Name == result.Current {
			mark = ui.Success.Sprint("*")
		}
		line := fmt.Sprintf("%s %s %s %s", mark, ui.Profile.Sprint(p.Name), p.UserName, ui.Email.Sprint(p.Email))
		if p.HasSigningKey() {
			line += " " + ui.Muted.Sprint("signed")
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func listed(result *workflows.ListResult) []listedProfile {
	out := make([]listedProfile, 0, len(result.Profiles))
	for _, p := range result.Profiles {
		out = append(out, listedProfile{Profile: p, Current: p.Name == result.Current})
	}
	return out
}
