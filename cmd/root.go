package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/gswitch/internal/audit"
	"github.com/PolarWolf314/gswitch/internal/configs"
	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/gitcfg"
	logger "github.com/PolarWolf314/gswitch/internal/logging"
	"github.com/PolarWolf314/gswitch/internal/workflows"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

var (
	verbose    bool
	debug      bool
	noColor    bool
	configPath string
	logFile    string
	Logger     logger.Logger

	settings    *configs.Settings
	settingsErr error
	logSink     io.Closer

	// Collaborators swapped out by tests.
	appFs    afero.Fs     = afero.NewOsFs()
	gitStore gitcfg.Store = gitcfg.Git{}
	getwd                 = os.Getwd

	RootCmd = &cobra.Command{
		Use:   "gsw",
		Short: "Switch git identities per project",
		Long: `gsw keeps named git identities (user name, email and signing key) and applies
them globally, to one repository, or automatically from a .gswitch file.

Getting started:
  gsw add work --user-name "Jane Smith" --email jane@company.com
  gsw switch work                  # use it everywhere
  gsw init work                    # select it for this project
  eval "$(gsw activate bash)"      # apply .gswitch files on every cd

Profiles live in <user config dir>/gswitch/config.toml (override with --config or
GSWITCH_CONFIG).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			v := configs.NewViper()
			if err := configs.BindFlags(v, cmd.Flags()); err != nil {
				settingsErr = err
				return
			}
			settings, settingsErr = configs.LoadSettings(v)
			if settingsErr != nil {
				return
			}

			if settings.NoColor {
				color.NoColor = true
			}

			Logger = logger.Logger{
				Verbose: settings.Verbose,
				Debug:   settings.Debug,
				Out:     cmd.ErrOrStderr(),
			}
			if settings.LogFile != "" {
				sink := logger.NewFileSink(settings.LogFile)
				Logger.File = sink
				logSink = sink
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t, store=%s", cmd.CommandPath(), settings.Verbose, settings.Debug, settings.StorePath)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLogSink()
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, configs.KeyVerbose, "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, configs.KeyDebug, "d", false, "enable debug output")
	RootCmd.PersistentFlags().BoolVar(&noColor, configs.KeyNoColor, false, "disable colored output")
	RootCmd.PersistentFlags().StringVar(&configPath, configs.KeyStorePath, "", "profile store path (default <config dir>/gswitch/config.toml)")
	RootCmd.PersistentFlags().StringVar(&logFile, configs.KeyLogFile, "", "also write logs to this file")

	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(removeCmd)
	RootCmd.AddCommand(switchCmd)
	RootCmd.AddCommand(localCmd)
	RootCmd.AddCommand(currentCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(autoCmd)
	RootCmd.AddCommand(activateCmd)
	RootCmd.AddCommand(promptCmd)
	RootCmd.AddCommand(logCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := RootCmd.Execute()
	closeLogSink()
	if err != nil {
		printError(RootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func closeLogSink() {
	if logSink != nil {
		_ = logSink.Close()
		logSink = nil
	}
}

// newEnv builds the workflow environment for the working directory.
func newEnv() (workflows.Env, error) {
	if settingsErr != nil {
		return workflows.Env{}, settingsErr
	}
	if settings == nil {
		return workflows.Env{}, fmt.Errorf("settings not loaded")
	}

	cwd, err := getwd()
	if err != nil {
		return workflows.Env{}, fmt.Errorf("%w: working directory: %v", gerrors.ErrInvalidPath, err)
	}

	return workflows.Env{
		FS:          appFs,
		StorePath:   settings.StorePath,
		HistoryPath: audit.PathFor(settings.StorePath),
		Git:         gitStore,
		Cwd:         cwd,
		Log:         Logger,
	}, nil
}
