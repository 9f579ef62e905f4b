// Package session holds the state of one interactive demo: both parties'
// keypairs and the chat history. Nothing in a Session outlives it.
package session

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/PolarWolf314/rsatrace/internal/chatlog"
	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
	"github.com/PolarWolf314/rsatrace/internal/keys"
	"github.com/PolarWolf314/rsatrace/internal/pipeline"
)

// Session owns the keys of both parties and the messages exchanged between them.
type Session struct {
	ID    string
	Mode  keys.Mode
	Seed  uint64 // zero in fixed mode
	Alice keys.KeyPair
	Bob   keys.KeyPair
	Log   *chatlog.Store

	now func() time.Time
}

// New starts a session with freshly generated keys and an empty log.
func New(opts keys.Options) (*Session, error) {
	opts = opts.WithDefaults().WithSeed()

	alice, bob, err := keys.GeneratePair(opts)
	if err != nil {
		return nil, fmt.Errorf("generating session keys: %w", err)
	}

	return &Session{
		ID:    uuid.New().String(),
		Mode:  opts.Mode,
		Seed:  opts.Seed,
		Alice: alice,
		Bob:   bob,
		Log:   chatlog.New(),
		now:   time.Now,
	}, nil
}

// KeysFor returns the keypair belonging to p.
func (s *Session) KeysFor(p pipeline.Party) (keys.KeyPair, error) {
	switch p {
	case pipeline.Alice:
		return s.Alice, nil
	case pipeline.Bob:
		return s.Bob, nil
	default:
		return keys.KeyPair{}, fmt.Errorf("%q: %w", p, kerrors.ErrUnknownParty)
	}
}

// Send encrypts text from sender to the other party with the recipient's keys
// and appends the result to the log.
//
// Text without any letter is a no-op: ok is false and nothing is appended.
func (s *Session) Send(sender pipeline.Party, text string) (msg pipeline.Message, ok bool, err error) {
	if _, err := s.KeysFor(sender); err != nil {
		return pipeline.Message{}, false, err
	}
	recipient := sender.Other()
	recipientKeys, err := s.KeysFor(recipient)
	if err != nil {
		return pipeline.Message{}, false, err
	}

	msg = pipeline.Transform(text, recipientKeys)
	if msg.FilteredText == "" {
		return pipeline.Message{}, false, nil
	}

	msg.Sender = sender
	msg.Recipient = recipient
	msg.SentAt = s.now().UTC()
	s.Log.Append(msg)

	return msg, true, nil
}

// History yields the session's messages in the order they were sent.
func (s *Session) History() iter.Seq[pipeline.Message] {
	return s.Log.All()
}
