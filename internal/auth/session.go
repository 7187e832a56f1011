package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"entry-tracker-backend/internal/database/models"
	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/logger"
)

const tokenBytes = 32

// SessionStore persists sessions keyed by token hash.
// repository.SessionRepository and MemoryStore both satisfy it.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	Touch(ctx context.Context, tokenHash string, seenAt time.Time) error
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now, idleCutoff time.Time) (int64, error)
}

// SessionManager issues and resolves opaque session tokens
type SessionManager struct {
	store           SessionStore
	idleTimeout     time.Duration
	absoluteTimeout time.Duration
	now             func() time.Time
}

// NewSessionManager creates a session manager over store
func NewSessionManager(store SessionStore, config *AuthConfig) *SessionManager {
	return &SessionManager{
		store:           store,
		idleTimeout:     config.IdleTimeout,
		absoluteTimeout: config.AbsoluteTimeout,
		now:             time.Now,
	}
}

// Start opens a session for userID and returns the raw token.
// Only the token's SHA-256 digest is stored.
func (m *SessionManager) Start(ctx context.Context, userID uint) (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	now := m.now()
	session := &models.Session{
		TokenHash:  hashToken(token),
		UserID:     userID,
		CreatedAt:  now,
		LastSeenAt: now,
		ExpiresAt:  now.Add(m.absoluteTimeout),
	}
	if err := m.store.Create(ctx, session); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// CurrentUser resolves token to its user id. Empty, unknown, ended and expired
// tokens all yield ErrUnauthenticated.
func (m *SessionManager) CurrentUser(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, apperrors.ErrUnauthenticated
	}

	hash := hashToken(token)
	session, err := m.store.GetByTokenHash(ctx, hash)
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		return 0, apperrors.ErrUnauthenticated
	}
	if err != nil {
		return 0, fmt.Errorf("load session: %w", err)
	}

	now := m.now()
	if session.Expired(now, m.idleTimeout) {
		if err := m.store.Delete(ctx, hash); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Failed to delete expired session")
		}
		return 0, apperrors.ErrUnauthenticated
	}

	if err := m.store.Touch(ctx, hash, now); err != nil {
		return 0, fmt.Errorf("touch session: %w", err)
	}

	return session.UserID, nil
}

// End terminates the session for token. Ending an unknown session is a no-op.
func (m *SessionManager) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, hashToken(token))
}

// PurgeExpired removes every session past either deadline
func (m *SessionManager) PurgeExpired(ctx context.Context) (int64, error) {
	now := m.now()
	return m.store.DeleteExpired(ctx, now, now.Add(-m.idleTimeout))
}

// RunSweeper purges expired sessions every interval until ctx is cancelled
func (m *SessionManager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := m.PurgeExpired(ctx)
			if err != nil {
				logger.New().WithError(err).Error("Session sweep failed")
				continue
			}
			if removed > 0 {
				logger.New().WithField("removed", removed).Debug("Purged expired sessions")
			}
		}
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
