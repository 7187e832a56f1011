package repository

import (
	"context"
	"errors"
	"time"

	"entry-tracker-backend/internal/database/models"
	apperrors "entry-tracker-backend/internal/errors"

	"gorm.io/gorm"
)

// SessionRepository persists server-side sessions in the sessions table
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// GetByTokenHash returns the session for a token hash or ErrSessionNotFound
func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).First(&session, "token_hash = ?", tokenHash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Touch records activity on a session
func (r *SessionRepository) Touch(ctx context.Context, tokenHash string, seenAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("token_hash = ?", tokenHash).
		Update("last_seen_at", seenAt).Error
}

// Delete removes a session; deleting an unknown token is not an error
func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).Delete(&models.Session{}, "token_hash = ?", tokenHash).Error
}

// DeleteExpired removes sessions past their deadline or idle since before idleCutoff
func (r *SessionRepository) DeleteExpired(ctx context.Context, now, idleCutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ? OR last_seen_at < ?", now, idleCutoff).
		Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
