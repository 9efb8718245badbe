package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	Verbose bool
	Debug   bool

	// Out receives console output. Nil means os.Stderr.
	Out io.Writer

	// File, when set, receives every message uncolored regardless of verbosity.
	File io.Writer
}

// NewFileSink returns a rotating log file writer rooted at path.
func NewFileSink(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // megabytes
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func (l Logger) Infof(msg string, args ...any) {
	l.record("info", msg, args...)
	if l.Verbose || l.Debug {
		fmt.Fprintf(l.out(), color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	l.record("debug", msg, args...)
	if l.Debug {
		fmt.Fprintf(l.out(), color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	l.record("warn", msg, args...)
	fmt.Fprintf(l.out(), color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	l.record("error", msg, args...)
	fmt.Fprintf(l.out(), color.RedString("[error] ")+msg+"\n", args...)
}

// ErrorfAndReturn logs at debug level and returns the formatted message as an error,
// leaving presentation of the failure to the caller.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	l.Debugf("%v", err)
	return err
}

func (l Logger) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stderr
}

func (l Logger) record(level, msg string, args ...any) {
	if l.File == nil {
		return
	}
	line := fmt.Sprintf(msg, args...)
	// Write errors are ignored: the log file must never break a command.
	_, _ = fmt.Fprintf(l.File, "%s [%s] %s\n", time.Now().Format(time.RFC3339), level, line)
}
