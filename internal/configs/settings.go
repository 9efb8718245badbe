package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable gsw reads.
const EnvPrefix = "GSWITCH"

// Setting keys. Flags bound to these keys share their names.
const (
	KeyStorePath = "config"
	KeyLogFile   = "log-file"
	KeyVerbose   = "verbose"
	KeyDebug     = "debug"
	KeyNoColor   = "no-color"
)

// Settings holds the resolved runtime configuration for one invocation.
type Settings struct {
	StorePath string
	LogFile   string
	Verbose   bool
	Debug     bool
	NoColor   bool
}

// DefaultStorePath returns <user config dir>/gswitch/config.toml.
func DefaultStorePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, "gswitch", "config.toml"), nil
}

// NewViper returns a viper instance reading GSWITCH_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every flag in flags whose name is a settings key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyStorePath, KeyLogFile, KeyVerbose, KeyDebug, KeyNoColor} {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag --%s: %w", key, err)
		}
	}
	return nil
}

// LoadSettings resolves settings from v, filling in the default store path.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	settings := &Settings{
		StorePath: v.GetString(KeyStorePath),
		LogFile:   v.GetString(KeyLogFile),
		Verbose:   v.GetBool(KeyVerbose),
		Debug:     v.GetBool(KeyDebug),
		NoColor:   v.GetBool(KeyNoColor),
	}

	if settings.StorePath == "" {
		path, err := DefaultStorePath()
		if err != nil {
			return nil, err
		}
		settings.StorePath = path
	}

	return settings, nil
}
