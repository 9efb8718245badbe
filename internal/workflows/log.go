package workflows

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/PolarWolf314/gswitch/internal/audit"
	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
)

const dateLayout = "2006-01-02"

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit keeps only the N most recent matching entries. 0 keeps all.
	Limit int

	// Reverse lists the most recent entry first.
	Reverse bool

	Profile string

	// Operations is a comma-separated list of operation names, matched
	// case-insensitively.
	Operations string

	// Since and Until bound entries by day, both inclusive, as YYYY-MM-DD.
	Since string
	Until string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	Entries []audit.Entry

	// TotalEntriesBeforeFilter tells "no history" apart from "nothing matched".
	TotalEntriesBeforeFilter int
}

// entryMatcher holds the parsed filters of one log query.
type entryMatcher struct {
	profile string
	ops     map[string]bool
	from    time.Time
	to      time.Time
}

func newEntryMatcher(opts LogOptions) (*entryMatcher, error) {
	m := &entryMatcher{profile: opts.Profile}

	if opts.Operations != "" {
		m.ops = make(map[string]bool)
		for _, op := range strings.Split(opts.Operations, ",") {
			if op = strings.ToLower(strings.TrimSpace(op)); op != "" {
				m.ops[op] = true
			}
		}
	}

	var err error
	if opts.Since != "" {
		if m.from, err = time.Parse(dateLayout, opts.Since); err != nil {
			return nil, fmt.Errorf("%w: --since %q, use YYYY-MM-DD", gerrors.ErrInvalidDateFormat, opts.Since)
		}
	}
	if opts.Until != "" {
		day, err := time.Parse(dateLayout, opts.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: --until %q, use YYYY-MM-DD", gerrors.ErrInvalidDateFormat, opts.Until)
		}
		m.to = day.AddDate(0, 0, 1)
	}
	return m, nil
}

func (m *entryMatcher) match(e audit.Entry) bool {
	if m.profile != "" && e.Profile != m.profile {
		return false
	}
	if m.ops != nil && !m.ops[strings.ToLower(e.Operation)] {
		return false
	}
	if m.from.IsZero() && m.to.IsZero() {
		return true
	}

	t, err := e.Time()
	if err != nil {
		return false
	}
	if !m.from.IsZero() && t.Before(m.from) {
		return false
	}
	return m.to.IsZero() || t.Before(m.to)
}

// Log reads the history log and applies the filters in opts.
//
// Returns ErrInvalidDateFormat if Since or Until is not a YYYY-MM-DD date.
func Log(ctx context.Context, env Env, opts LogOptions) (*LogResult, error) {
	matcher, err := newEntryMatcher(opts)
	if err != nil {
		return nil, err
	}

	result := &LogResult{}
	if env.HistoryPath == "" {
		return result, nil
	}

	entries, err := audit.ReadEntries(env.FS, env.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading history: %v", gerrors.ErrIO, err)
	}
	result.TotalEntriesBeforeFilter = len(entries)

	var matched []audit.Entry
	for _, e := range entries {
		if matcher.match(e) {
			matched = append(matched, e)
		}
	}

	// The log is oldest first, so the most recent entries are at the end.
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[len(matched)-opts.Limit:]
	}
	if opts.Reverse {
		slices.Reverse(matched)
	}

	result.Entries = matched
	env.Log.Debugf("History: %d of %d entries match", len(matched), len(entries))
	return result, nil
}

// FormatDateTime renders an entry timestamp as "YYYY-MM-DD HH:MM:SS".
// Unparseable values are returned as they are, cut to that length.
func FormatDateTime(ts string) string {
	t, err := time.Parse(audit.TimestampFormat, ts)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ts)
	}
	if err == nil {
		return t.Format(time.DateTime)
	}
	if len(ts) > len(time.DateTime) {
		return ts[:len(time.DateTime)]
	}
	return ts
}

// FormatDetails describes where an entry's operation took effect.
func FormatDetails(e audit.Entry) string {
	switch e.Operation {
	case "add", "import":
		return e.Email
	case "switch":
		return e.Email + " (global)"
	case "local", "auto":
		return e.Email + " in " + e.RepoRoot
	case "init":
		return e.Marker
	}
	return ""
}
