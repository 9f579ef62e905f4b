package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
	"github.com/PolarWolf314/rsatrace/internal/pipeline"
)

// Entry represents a single transcript line.
type Entry struct {
	Timestamp string           `json:"ts"`      // RFC3339 with microseconds.
	SessionID string           `json:"session"` // Session that produced the message.
	Mode      string           `json:"mode,omitempty"`
	Message   pipeline.Message `json:"message"`
}

// NewEntry builds an entry for msg, stamped with the message's send time.
func NewEntry(sessionID, mode string, msg pipeline.Message) Entry {
	entry := Entry{SessionID: sessionID, Mode: mode, Message: msg}
	if !msg.SentAt.IsZero() {
		entry.Timestamp = formatTime(msg.SentAt)
	}
	return entry
}

// Append writes entry to the transcript at path, creating the file and its
// parent directories if needed.
func Append(path string, entry Entry) error {
	if entry.Timestamp == "" {
		entry.Timestamp = formatTime(time.Now())
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating transcript directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening transcript: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding transcript entry: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	return nil
}

// ReadEntries reads all entries from the transcript at path.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", path, kerrors.ErrTranscriptNotFound)
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into transcript entries.
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
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// Messages extracts the messages from entries, in order.
func Messages(entries []Entry) []pipeline.Message {
	msgs := make([]pipeline.Message, 0, len(entries))
	for _, e := range entries {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000Z")
}
