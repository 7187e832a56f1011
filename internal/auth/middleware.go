package auth

import (
	"errors"
	"net/http"
	"strings"

	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	contextUserID   = "user_id"
	contextUsername = "username"
	contextToken    = "session_token"
)

// SessionMiddleware gates routes behind an active session
type SessionMiddleware struct {
	service    *AuthService
	cookieName string
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(service *AuthService, config *AuthConfig) *SessionMiddleware {
	return &SessionMiddleware{service: service, cookieName: config.CookieName}
}

// RequireSession resolves the session token and sets user context.
// Each presented token is tried in turn, so a stale cookie does not mask a
// valid bearer token. Requests without a live session are rejected with 401.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, token := range TokensFromRequest(c, m.cookieName) {
			user, err := m.service.CurrentUser(c.Request.Context(), token)
			if err == nil {
				c.Set(contextUserID, user.ID)
				c.Set(contextUsername, user.Username)
				c.Set(contextToken, token)
				c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), user.ID, user.Username))
				c.Next()
				return
			}
			if !apperrors.IsAuthentication(err) && !errors.Is(err, apperrors.ErrUserNotFound) {
				logger.WithContext(c).WithError(err).Error("Failed to resolve session")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
	}
}

// TokensFromRequest returns the non-empty session tokens the client presented:
// the cookie first, then an Authorization: Bearer header
func TokensFromRequest(c *gin.Context, cookieName string) []string {
	var tokens []string
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		tokens = append(tokens, cookie)
	}

	header := c.GetHeader("Authorization")
	if token := strings.TrimPrefix(header, "Bearer "); token != header {
		if token = strings.TrimSpace(token); token != "" && (len(tokens) == 0 || tokens[0] != token) {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// CurrentUserID returns the authenticated user's id set by RequireSession
func CurrentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(contextUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint)
	return id, ok && id != 0
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(contextUsername)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}
