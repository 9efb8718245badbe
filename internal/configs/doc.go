// Package configs manages gsw runtime settings and the TOML codec used by
// the profile store.
//
// # Settings
//
// Settings are resolved by viper with this precedence (highest first):
//
//   - Command-line flags: --config, --log-file, --verbose, --debug, --no-color
//   - Environment variables: GSWITCH_CONFIG, GSWITCH_LOG_FILE,
//     GSWITCH_VERBOSE, GSWITCH_DEBUG, GSWITCH_NO_COLOR
//   - Defaults: the store lives at <user config dir>/gswitch/config.toml
//
// # TOML Files
//
// WriteFileAtomic writes through a temporary file in the target directory
// and renames it into place, so an interrupted save never leaves a partially
// written store behind. All file access goes through an afero.Fs so callers
// can substitute an in-memory filesystem.
package configs
