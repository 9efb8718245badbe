package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	logger "github.com/PolarWolf314/gswitch/internal/logging"
)

// ResetGlobalState restores every flag and package-level variable to its
// default so RootCmd can run repeatedly in one process, as tests do.
func ResetGlobalState() {
	resetCobraFlagState(RootCmd)

	resetAddCommandState()
	resetImportCommandState()
	resetListCommandState()
	resetCurrentCommandState()
	resetAutoCommandState()
	resetPromptCommandState()
	resetLogCommandState()

	verbose, debug, noColor = false, false, false
	configPath, logFile = "", ""
	settings, settingsErr = nil, nil
	Logger = logger.Logger{}
	closeLogSink()
}

func resetCobraFlagState(c *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		if sv, ok := flag.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = flag.Value.Set(flag.DefValue)
		}
		flag.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}
