package repository

import (
	"errors"
	"sync"
	"time"

	"studydesk/internal/domain"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// SharedSessionID is the only session id handed out in single-session mode.
const SharedSessionID = "shared"

// Session owns one State. Callers hold the session lock for the duration of
// a handler call via WithState.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	state    domain.State
	lastSeen time.Time
}

// WithState runs fn with exclusive access to the session's State.
func (s *Session) WithState(now time.Time, fn func(st *domain.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
	fn(&s.state)
}

// Snapshot returns a copy of the current State.
func (s *Session) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	single   bool
	now      func() time.Time
}

// NewSessionStore creates an empty store. With single set, every Create
// returns the same shared session. A nil now uses time.Now.
func NewSessionStore(single bool, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		single:   single,
		now:      now,
	}
}

// Create returns a new session holding an empty State. The bool reports
// whether the session did not exist before.
func (s *SessionStore) Create() (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	if s.single {
		if sess, ok := s.sessions[SharedSessionID]; ok {
			return sess, false
		}
		id = SharedSessionID
	}

	now := s.now()
	sess := &Session{ID: id, CreatedAt: now, lastSeen: now, state: domain.NewState()}
	s.sessions[id] = sess
	return sess, true
}

func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle drops sessions not used within ttl and returns their ids.
// The shared session is never evicted.
func (s *SessionStore) EvictIdle(ttl time.Duration) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var evicted []string
	for id, sess := range s.sessions {
		if id == SharedSessionID && s.single {
			continue
		}
		if now.Sub(sess.idleSince()) > ttl {
			delete(s.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}
