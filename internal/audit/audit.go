package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// FileName is the history log file name.
const FileName = "history.jsonl"

// TimestampFormat is the layout of Entry.Timestamp.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single history entry.
type Entry struct {
	Timestamp string `json:"ts"`      // RFC3339 with microseconds.
	Operation string `json:"op"`      // Operation name.
	Profile   string `json:"profile"` // Profile the operation acted on.

	// Optional fields depending on operation.
	Email    string `json:"email,omitempty"`  // For add/import/switch/local/auto.
	Scope    string `json:"scope,omitempty"`  // For switch/local/auto.
	RepoRoot string `json:"repo,omitempty"`   // For local/auto.
	Marker   string `json:"marker,omitempty"` // For init/auto.
}

// Time parses the entry timestamp.
func (e Entry) Time() (time.Time, error) {
	return time.Parse(TimestampFormat, e.Timestamp)
}

// PathFor returns the history log path that sits beside storePath.
func PathFor(storePath string) string {
	return filepath.Join(filepath.Dir(storePath), FileName)
}

// Log appends entry to the log at path, creating it and its directory.
func Log(fs afero.Fs, path string, entry Entry) error {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening history log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing history log: %w", err)
	}
	return nil
}

// ReadEntries reads all entries from the log at path.
// A missing log yields no entries.
func ReadEntries(fs afero.Fs, path string) ([]Entry, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries
}
