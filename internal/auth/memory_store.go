package auth

import (
	"context"
	"sync"
	"time"

	"entry-tracker-backend/internal/database/models"
	apperrors "entry-tracker-backend/internal/errors"
)

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart and are not shared between replicas.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.Session)}
}

// Create stores a copy of session
func (s *MemoryStore) Create(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.TokenHash] = *session
	return nil
}

// GetByTokenHash returns a copy of the stored session or ErrSessionNotFound
func (s *MemoryStore) GetByTokenHash(_ context.Context, tokenHash string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[tokenHash]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return &session, nil
}

// Touch records activity on a session
func (s *MemoryStore) Touch(_ context.Context, tokenHash string, seenAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[tokenHash]; ok {
		session.LastSeenAt = seenAt
		s.sessions[tokenHash] = session
	}
	return nil
}

// Delete removes a session
func (s *MemoryStore) Delete(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, tokenHash)
	return nil
}

// DeleteExpired removes sessions past their deadline or idle since before idleCutoff
func (s *MemoryStore) DeleteExpired(_ context.Context, now, idleCutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for hash, session := range s.sessions {
		if !now.Before(session.ExpiresAt) || session.LastSeenAt.Before(idleCutoff) {
			delete(s.sessions, hash)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored sessions
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
