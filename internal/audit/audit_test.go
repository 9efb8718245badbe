package audit

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

const logPath = "/home/jane/.config/gswitch/history.jsonl"

func TestLog_CreatesFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	entry := Entry{Operation: "switch", Profile: "work", Email: "jane@company.com", Scope: "global"}
	if err := Log(fs, logPath, entry); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	if exists, _ := afero.Exists(fs, logPath); !exists {
		t.Fatal("History log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	fs := afero.NewMemMapFs()

	for _, profile := range []string{"work", "personal", "oss"} {
		if err := Log(fs, logPath, Entry{Operation: "switch", Profile: profile}); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	data, err := afero.ReadFile(fs, logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	var last Entry
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("Failed to parse last line: %v", err)
	}
	if last.Profile != "oss" {
		t.Errorf("Expected last profile 'oss', got %q", last.Profile)
	}
}

func TestLog_SetsTimestamp(t *testing.T) {
	fs := afero.NewMemMapFs()
	before := time.Now().UTC().Add(-time.Second)

	if err := Log(fs, logPath, Entry{Operation: "add", Profile: "work"}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	entries, err := ReadEntries(fs, logPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	ts, err := entries[0].Time()
	if err != nil {
		t.Fatalf("Timestamp %q does not parse: %v", entries[0].Timestamp, err)
	}
	if ts.Before(before) {
		t.Errorf("Timestamp %v is older than the test", ts)
	}
}

func TestLog_KeepsExplicitTimestamp(t *testing.T) {
	fs := afero.NewMemMapFs()
	ts := "2024-01-15T10:30:00.123456Z"

	if err := Log(fs, logPath, Entry{Timestamp: ts, Operation: "add", Profile: "work"}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	entries, _ := ReadEntries(fs, logPath)
	if len(entries) != 1 || entries[0].Timestamp != ts {
		t.Errorf("Expected timestamp %s, got %+v", ts, entries)
	}
}

func TestLog_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	if err := Log(fs, logPath, Entry{Operation: "add", Profile: "work"}); err == nil {
		t.Error("Expected error writing to read-only filesystem")
	}
}

func TestReadEntries_MissingLog(t *testing.T) {
	entries, err := ReadEntries(afero.NewMemMapFs(), logPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseEntries_SkipsMalformed(t *testing.T) {
	data := []byte(`{"ts":"2024-01-15T10:30:00.000000Z","op":"switch","profile":"work"}
not json
{"ts":"2024-01-15T10:31:00.000000Z","op":"local","profile":"oss","scope":"local","repo":"/src/oss"}

{"ts":"2024-01-15T10:32:00.000000Z","op":"remo`)

	entries := ParseEntries(data)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].RepoRoot != "/src/oss" {
		t.Errorf("Expected repo /src/oss, got %q", entries[1].RepoRoot)
	}
}

func TestPathFor(t *testing.T) {
	got := PathFor("/home/jane/.config/gswitch/config.toml")
	if got != logPath {
		t.Errorf("PathFor = %q, want %q", got, logPath)
	}
}
