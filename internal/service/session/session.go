// Package session holds per-conversation state. A Session replaces the
// process-wide chat history: transports look one up by ID and pass it to the
// bot for every turn.
package session

import (
	"sync"
	"time"

	"github.com/sandevgo/weatherbot/internal/core"
)

// Transcript is an append-only list of messages.
type Transcript struct {
	mu       sync.RWMutex
	messages []core.Message
}

func (t *Transcript) Append(msg core.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
}

// Messages returns a copy of the transcript.
func (t *Transcript) Messages() []core.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]core.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Lines renders every message with its speaker prefix.
func (t *Transcript) Lines() []string {
	msgs := t.Messages()
	lines := make([]string, len(msgs))
	for i, m := range msgs {
		lines[i] = m.String()
	}
	return lines
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

type Session struct {
	ID         string
	CreatedAt  time.Time
	Transcript *Transcript

	// turn serializes turns within one session.
	turn sync.Mutex
}

func New(id string) *Session {
	return &Session{
		ID:         id,
		CreatedAt:  time.Now(),
		Transcript: &Transcript{},
	}
}

// Lock holds the session for the duration of one turn.
func (s *Session) Lock()   { s.turn.Lock() }
func (s *Session) Unlock() { s.turn.Unlock() }

// Store keeps live sessions in memory. Nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, starting an empty one on first use.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = New(id)
		s.sessions[id] = sess
	}
	return sess
}

// Lookup returns an existing session.
func (s *Store) Lookup(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// Drop ends a session and discards its transcript.
func (s *Store) Drop(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
