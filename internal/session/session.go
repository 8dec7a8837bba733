package session

import (
	"sync"
	"sync/atomic"

	"fixie/internal/domain"
)

// Session is the per-chat conversation session: who is logged in, the
// conversation state machine, the ephemeral message history, and the voice
// and mute flags. It is a non-authoritative cache; the document store owns
// users and knowledge.
type Session struct {
	ChatID   int64
	UserName string

	// Points mirrors the user's persisted point total for fast profile
	// display; the users table is authoritative.
	Points int

	State domain.ConversationState

	Muted     bool
	FromVoice bool

	busy atomic.Bool

	histMu  sync.Mutex
	history []domain.Message
}

// New creates a session for a logged-in user in idle state.
func New(chatID int64, userName string, points int) *Session {
	return &Session{
		ChatID:   chatID,
		UserName: userName,
		Points:   points,
		State:    domain.ConversationState{Mode: domain.ModeIdle},
	}
}

// TryBegin marks the session busy for one turn. It returns false when a
// query pipeline is already in flight; such sends are rejected, not queued.
func (s *Session) TryBegin() bool {
	return s.busy.CompareAndSwap(false, true)
}

// End clears the busy flag.
func (s *Session) End() {
	s.busy.Store(false)
}

// Append adds messages to the history.
func (s *Session) Append(msgs ...domain.Message) {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	s.history = append(s.history, msgs...)
}

// RemoveText drops every text message with exactly the given text, used to
// clear transient placeholders.
func (s *Session) RemoveText(text string) {
	s.histMu.Lock()
	defer s.histMu.Unlock()

	kept := s.history[:0]
	for _, m := range s.history {
		if m.Kind == domain.KindText && m.Text == text {
			continue
		}
		kept = append(kept, m)
	}
	s.history = kept
}

// ClearHistory wipes the message history.
func (s *Session) ClearHistory() {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	s.history = nil
}

// History returns a copy of the message history.
func (s *Session) History() []domain.Message {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	return append([]domain.Message(nil), s.history...)
}
