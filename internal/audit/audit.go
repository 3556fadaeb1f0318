package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/deploykit/kitlog/internal/utils"
)

// Operations recorded in the journal.
const (
	OpLog    = "log"
	OpAssert = "assert"
	OpExec   = "exec"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`     // RFC3339 with microseconds.
	RunID     string `json:"run"`    // Identifies the kitlog process.
	User      string `json:"user"`   // Username of the process owner.
	Host      string `json:"host"`   // Hostname.
	Operation string `json:"op"`     // Operation name.
	Prefix    string `json:"prefix"` // Logger prefix in effect.

	// Optional fields depending on operation.
	Message  string   `json:"message,omitempty"`   // For log/assert.
	Command  []string `json:"command,omitempty"`   // For exec.
	ExitCode int      `json:"exit_code,omitempty"` // For assert/exec.
}

var (
	runIDOnce sync.Once
	runID     string
)

// RunID returns the identifier shared by every entry this process writes.
func RunID() string {
	runIDOnce.Do(func() {
		runID = uuid.New().String()
	})
	return runID
}

// NewEntry returns an entry for op with run, user and host populated.
func NewEntry(op string) Entry {
	entry := Entry{Operation: op, RunID: RunID()}

	if username, err := utils.GetUsername(); err == nil {
		entry.User = username
	}
	if hostname, err := utils.GetHostname(); err == nil {
		entry.Host = hostname
	}

	return entry
}

// Log appends an entry to the journal at logPath.
// Failures are ignored: a command never fails because the journal could not be written.
func Log(logPath string, entry Entry) {
	if logPath == "" {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the journal at logPath.
// Returns an empty slice if the journal doesn't exist.
func ReadEntries(logPath string) ([]Entry, error) {
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

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
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// FilterByOperation keeps the entries whose operation matches the glob
// pattern. An empty pattern keeps everything.
func FilterByOperation(entries []Entry, pattern string) ([]Entry, error) {
	if pattern == "" {
		return entries, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}

	var filtered []Entry
	for _, entry := range entries {
		matched, err := doublestar.Match(pattern, entry.Operation)
		if err != nil {
			return nil, err
		}
		if matched {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}
