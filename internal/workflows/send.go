package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/rsatrace/internal/keys"
	"github.com/PolarWolf314/rsatrace/internal/pipeline"
	"github.com/PolarWolf314/rsatrace/internal/session"
	"github.com/PolarWolf314/rsatrace/internal/transcript"
)

// SessionOptions configures a new session.
type SessionOptions struct {
	Keys keys.Options
}

// StartSession creates a session with freshly generated keys and an empty log.
func StartSession(ctx context.Context, opts SessionOptions) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess, err := session.New(opts.Keys)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// DeliverOptions configures the deliver workflow.
type DeliverOptions struct {
	Session *session.Session

	// From is the sender; the message is encrypted for the other party.
	From pipeline.Party

	// Text is the raw plaintext. Only A–Z survive filtering.
	Text string

	// TranscriptPath, when set, receives the message as a JSON line.
	TranscriptPath string
}

// DeliverResult contains the outcome of a deliver operation.
type DeliverResult struct {
	// Message is the full step record. Zero when Sent is false.
	Message pipeline.Message

	// Sent is false when the text contained no letters and nothing happened.
	Sent bool

	// Index is the message's 1-based position in the session history.
	Index int

	// TranscriptErr is set when the message was sent but could not be
	// written to the transcript.
	TranscriptErr error
}

// Deliver encrypts and decrypts one message inside an existing session and
// records it in the session log.
//
// Returns ErrUnknownParty if From is neither alice nor bob.
func Deliver(ctx context.Context, opts DeliverOptions) (*DeliverResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Session == nil {
		return nil, fmt.Errorf("deliver: no session")
	}

	msg, ok, err := opts.Session.Send(opts.From, opts.Text)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &DeliverResult{}, nil
	}

	result := &DeliverResult{
		Message: msg,
		Sent:    true,
		Index:   opts.Session.Log.Len(),
	}

	if opts.TranscriptPath != "" {
		entry := transcript.NewEntry(opts.Session.ID, string(opts.Session.Mode), msg)
		if err := transcript.Append(opts.TranscriptPath, entry); err != nil {
			result.TranscriptErr = err
		}
	}

	return result, nil
}

// SendOptions configures the one-shot send workflow.
type SendOptions struct {
	Keys           keys.Options
	From           pipeline.Party
	Text           string
	TranscriptPath string
}

// SendResult contains the outcome of a one-shot send.
type SendResult struct {
	*DeliverResult
	Session *session.Session
}

// Send starts a session and delivers a single message in it.
func Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	sess, err := StartSession(ctx, SessionOptions{Keys: opts.Keys})
	if err != nil {
		return nil, err
	}

	delivered, err := Deliver(ctx, DeliverOptions{
		Session:        sess,
		From:           opts.From,
		Text:           opts.Text,
		TranscriptPath: opts.TranscriptPath,
	})
	if err != nil {
		return nil, err
	}

	return &SendResult{DeliverResult: delivered, Session: sess}, nil
}
