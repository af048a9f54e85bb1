// internal/models/session.go
package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionState - явное состояние формы вместо неявной цепочки хендлеров
type SessionState string

const (
	StateBranchChoice     SessionState = "branch_choice"
	StateRecurringDetails SessionState = "recurring_details"
	StateOneTimeDetails   SessionState = "one_time_details"
	StateSubmitted        SessionState = "submitted"
	StateFailed           SessionState = "failed"
)

const (
	BranchRecurring = "recurring"
	BranchOneTime   = "one_time"
)

// FormSession - состояние одного прохождения формы. Идентификатор
// переносится между модалками в private_metadata.
type FormSession struct {
	ID        string
	UserID    string
	Branch    string // recurring, one_time
	State     SessionState
	CreatedAt time.Time
}

func NewFormSession(userID string) *FormSession {
	return &FormSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		State:     StateBranchChoice,
		CreatedAt: time.Now(),
	}
}

// SessionStore хранит сессии форм в памяти. Сессии независимы между
// пользователями, общего состояния кроме этой мапы нет.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*FormSession
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*FormSession),
		ttl:      ttl,
	}
}

func (s *SessionStore) Put(session *FormSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Заодно выкидываем брошенные модалки
	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}

	s.sessions[session.ID] = session
}

func (s *SessionStore) Get(id string) (*FormSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Since(session.CreatedAt) > s.ttl {
		return nil, false
	}
	return session, true
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
