// Package chatlog keeps the ordered, append-only history of a session's messages.
package chatlog

import (
	"iter"
	"slices"

	"github.com/PolarWolf314/rsatrace/internal/pipeline"
)

// Store is an append-only sequence of messages. It has no deletion or update
// API, and readers only ever see copies.
type Store struct {
	messages []pipeline.Message
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Append adds msg to the end of the history.
func (s *Store) Append(msg pipeline.Message) {
	s.messages = append(s.messages, clone(msg))
}

// All yields every message in the order it was appended. The sequence can be
// ranged over any number of times.
func (s *Store) All() iter.Seq[pipeline.Message] {
	return func(yield func(pipeline.Message) bool) {
		for _, m := range s.messages {
			if !yield(clone(m)) {
				return
			}
		}
	}
}

// Len returns the number of stored messages.
func (s *Store) Len() int {
	return len(s.messages)
}

func clone(m pipeline.Message) pipeline.Message {
	m.PlainNums = slices.Clone(m.PlainNums)
	m.CipherNums = slices.Clone(m.CipherNums)
	m.DecryptedNums = slices.Clone(m.DecryptedNums)
	m.EncSteps = slices.Clone(m.EncSteps)
	m.DecSteps = slices.Clone(m.DecSteps)
	return m
}
