// Package logger provides leveled logging for gsw commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags or GSWITCH_* environment variables. Console output is prefixed and
// colored; it always goes to stderr so that stdout stays reserved for
// machine-read output such as `gsw prompt` and `gsw current --format`.
//
// # Verbosity Levels
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always shown.
//
// # File Sink
//
// Shell hooks run `gsw auto` with stderr discarded, which hides any
// diagnostics. Setting GSWITCH_LOG_FILE (or log_file in settings) makes the
// logger append every message, debug included, to a size-rotated file:
//
//	sink := logger.NewFileSink("/tmp/gsw.log")
//	defer sink.Close()
//	log := logger.Logger{Verbose: true, File: sink}
//	log.Infof("Resolved %s", name)
package logger
