package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLoggerVerbosity(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name    string
		logger  func(out *bytes.Buffer) Logger
		emit    func(l Logger)
		wantOut string
	}{
		{
			name:    "InfoHiddenByDefault",
			logger:  func(out *bytes.Buffer) Logger { return Logger{Out: out} },
			emit:    func(l Logger) { l.Infof("hello %s", "world") },
			wantOut: "",
		},
		{
			name:    "InfoShownWhenVerbose",
			logger:  func(out *bytes.Buffer) Logger { return Logger{Verbose: true, Out: out} },
			emit:    func(l Logger) { l.Infof("hello %s", "world") },
			wantOut: "[info] hello world\n",
		},
		{
			name:    "DebugHiddenWhenOnlyVerbose",
			logger:  func(out *bytes.Buffer) Logger { return Logger{Verbose: true, Out: out} },
			emit:    func(l Logger) { l.Debugf("details") },
			wantOut: "",
		},
		{
			name:    "DebugShownWhenDebug",
			logger:  func(out *bytes.Buffer) Logger { return Logger{Debug: true, Out: out} },
			emit:    func(l Logger) { l.Debugf("details") },
			wantOut: "[debug] details\n",
		},
		{
			name:    "WarnAlwaysShown",
			logger:  func(out *bytes.Buffer) Logger { return Logger{Out: out} },
			emit:    func(l Logger) { l.Warnf("careful") },
			wantOut: "[warn] careful\n",
		},
		{
			name:    "ErrorAlwaysShown",
			logger:  func(out *bytes.Buffer) Logger { return Logger{Out: out} },
			emit:    func(l Logger) { l.Errorf("broken: %d", 3) },
			wantOut: "[error] broken: 3\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			tc.emit(tc.logger(&out))
			if out.String() != tc.wantOut {
				t.Errorf("output = %q, want %q", out.String(), tc.wantOut)
			}
		})
	}
}

func TestLoggerFileReceivesEverything(t *testing.T) {
	var console, file bytes.Buffer
	l := Logger{Out: &console, File: &file}

	l.Debugf("resolving %s", "/repo")
	l.Infof("resolved")

	if console.Len() != 0 {
		t.Errorf("expected no console output, got %q", console.String())
	}
	got := file.String()
	if !strings.Contains(got, "[debug] resolving /repo") {
		t.Errorf("file sink missing debug line: %q", got)
	}
	if !strings.Contains(got, "[info] resolved") {
		t.Errorf("file sink missing info line: %q", got)
	}
}

func TestErrorfAndReturn(t *testing.T) {
	var out bytes.Buffer
	l := Logger{Out: &out}

	err := l.ErrorfAndReturn("failed to load %s", "store")
	if err == nil || err.Error() != "failed to load store" {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected nothing printed without debug, got %q", out.String())
	}
}

func TestNewFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsw.log")
	sink := NewFileSink(path)
	defer sink.Close()

	l := Logger{Out: &bytes.Buffer{}, File: sink}
	l.Warnf("stale signing key")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "[warn] stale signing key") {
		t.Errorf("log file content = %q", string(data))
	}
}
