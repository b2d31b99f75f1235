package database

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Aalify-X/progrify-be/types"
	"github.com/Aalify-X/progrify-be/utils"
)

// SessionStore keeps verified subscription sessions in process memory,
// keyed by session id. Sessions are independent, so concurrent requests
// only contend on the map itself. Expiry is checked on read; there is no
// background sweeper.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*types.VerificationSession
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*types.VerificationSession),
		ttl:      utils.SessionLifetime,
		now:      time.Now,
	}
}

// Create registers a new verified session holding the identity payload
// returned by the verification provider.
func (s *SessionStore) Create(user json.RawMessage) *types.VerificationSession {
	now := s.now()
	sess := &types.VerificationSession{
		ID:        uuid.NewString(),
		Verified:  true,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id if it exists and has not expired. Expired
// sessions are dropped on read.
func (s *SessionStore) Get(id string) (*types.VerificationSession, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().After(sess.ExpiresAt) {
		s.Delete(id)
		return nil, false
	}
	return sess, true
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
