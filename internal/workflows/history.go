package workflows

import (
	"context"

	"github.com/PolarWolf314/rsatrace/internal/pipeline"
	"github.com/PolarWolf314/rsatrace/internal/transcript"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Path is the transcript file to read.
	Path string
}

// HistoryResult contains the messages of a transcript.
type HistoryResult struct {
	Entries  []transcript.Entry
	Messages []pipeline.Message

	// Sessions is the number of distinct sessions in the transcript.
	Sessions int
}

// History reads a transcript file.
//
// Returns ErrTranscriptNotFound if the file does not exist.
func History(ctx context.Context, opts HistoryOptions) (*HistoryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := transcript.ReadEntries(opts.Path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, e := range entries {
		seen[e.SessionID] = struct{}{}
	}

	return &HistoryResult{
		Entries:  entries,
		Messages: transcript.Messages(entries),
		Sessions: len(seen),
	}, nil
}
