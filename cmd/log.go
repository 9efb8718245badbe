package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/gswitch/internal/audit"
	"github.com/PolarWolf314/gswitch/internal/ui"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

var (
	logLimit     int
	logReverse   bool
	logProfile   string
	logOperation string
	logSince     string
	logUntil     string
	logOneline   bool
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "show only the last N entries")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logProfile, "profile", "", "show only entries for this profile")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "show only these operations (comma-separated)")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries on or after this date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries on or before this date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "one line per entry")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logProfile = ""
	logOperation = ""
	logSince = ""
	logUntil = ""
	logOneline = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the history of identity changes",
	Long: `Shows profiles added, imported, removed and applied, and every identity
change made by auto switching, oldest first.

Operations: add, import, remove, switch, local, init, auto

Examples:
  gsw log
  gsw log -n 10 --reverse
  gsw log --operation switch,local --since 2026-01-01
  gsw log --profile work --json`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	env, err := newEnv()
	if err != nil {
		return err
	}

	result, err := workflows.Log(context.Background(), env, workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Profile:    logProfile,
		Operations: logOperation,
		Since:      logSince,
		Until:      logUntil,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if logJSON {
		entries := result.Entries
		if entries == nil {
			entries = []audit.Entry{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Fprintln(out, "No history found.")
		} else {
			fmt.Fprintln(out, "No entries match the given filters.")
		}
		return nil
	}

	for _, e := range result.Entries {
		if logOneline {
			fmt.Fprintf(out, "%s %s %s\n", e.Timestamp[:min(10, len(e.Timestamp))], e.Operation, e.Profile)
			continue
		}
		details := workflows.FormatDetails(e)
		fmt.Fprintf(out, "%s  %-7s %s %s\n",
			ui.Muted.Sprint(workflows.FormatDateTime(e.Timestamp)),
			e.Operation,
			ui.Profile.Sprint(e.Profile),
			strings.TrimSpace(details))
	}
	return nil
}
