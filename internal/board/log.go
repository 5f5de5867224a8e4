package board

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	logFileMode   = 0o600
	maxLogEntries = 10000 // truncate oldest entries when log exceeds this size
)

// Activity log actions.
const (
	ActionAdd          = "add"
	ActionComplete     = "complete"
	ActionDelete       = "delete"
	ActionClearHistory = "clear-history"
)

// LogEntry represents a single activity log entry.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Task      string    `json:"task,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

// newEntryID returns a ULID for a log entry; IDs sort by creation time.
func newEntryID(now time.Time) string {
	id, err := ulid.New(ulid.Timestamp(now), ulid.Monotonic(randReader{}, 0))
	if err != nil {
		return strconv.FormatInt(now.UnixNano(), 10)
	}
	return id.String()
}

// AppendLog appends a log entry to the activity log file at path.
// If the log exceeds maxLogEntries, the oldest entries are truncated.
func AppendLog(path string, entry LogEntry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode) //nolint:gosec // log path from trusted config
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling log entry: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}

	// Truncate if needed (best-effort; errors are non-fatal).
	_ = truncateLogIfNeeded(path)

	return nil
}

// ReadLog returns every entry in the activity log at path, oldest first.
// Lines that do not parse are skipped.
func ReadLog(path string) ([]LogEntry, error) {
	f, err := os.Open(path) //nolint:gosec // trusted path
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e LogEntry
		if json.Unmarshal(scanner.Bytes(), &e) == nil {
			entries = append(entries, e)
		}
	}
	return entries, scanner.Err()
}

// truncateLogIfNeeded reads the log file and, if it exceeds maxLogEntries,
// rewrites it keeping only the most recent entries.
func truncateLogIfNeeded(path string) error {
	f, err := os.Open(path) //nolint:gosec // trusted path
	if err != nil {
		return err
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	_ = f.Close()

	if err := scanner.Err(); err != nil {
		return err
	}

	if len(lines) <= maxLogEntries {
		return nil
	}

	lines = lines[len(lines)-maxLogEntries:]

	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(buf.String()), logFileMode)
}

// logMutation appends an activity log entry. Errors are silently discarded
// because logging should never fail an operation.
func (b *Board) logMutation(action, encoded, detail string) {
	if b.logPath == "" {
		return
	}
	now := b.now()
	_ = AppendLog(b.logPath, LogEntry{
		ID:        newEntryID(now),
		Timestamp: now,
		Action:    action,
		Task:      encoded,
		Detail:    detail,
	})
}
