package models

import (
	"time"
)

// Session binds a hashed opaque token to a user. The raw token is never stored.
type Session struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	TokenHash  string    `gorm:"uniqueIndex:idx_sessions_token_hash;not null;size:64"`
	UserID     uint      `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
	LastSeenAt time.Time `gorm:"not null;index"`
	ExpiresAt  time.Time `gorm:"not null;index"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its absolute deadline or has been idle too long
func (s *Session) Expired(now time.Time, idleTimeout time.Duration) bool {
	if !now.Before(s.ExpiresAt) {
		return true
	}
	return idleTimeout > 0 && now.Sub(s.LastSeenAt) > idleTimeout
}
