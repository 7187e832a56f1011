package logger

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

type contextKey int

const (
	userKey contextKey = iota
	requestIDKey
)

type contextUser struct {
	id       uint
	username string
}

// ContextWithUser returns ctx tagged with the authenticated user for WithContext
func ContextWithUser(ctx context.Context, userID uint, username string) context.Context {
	return context.WithValue(ctx, userKey, contextUser{id: userID, username: username})
}

// ContextWithRequestID returns ctx tagged with the request id for WithContext
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithContext creates a logger carrying the caller and request id found in ctx.
// Request contexts are tagged by ContextWithUser and ContextWithRequestID; a
// *gin.Context also resolves the string keys set with c.Set.
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger.WithField("user", "unknown")
	}

	logger.Entry = logger.Entry.WithField("user", userField(ctx))

	requestID, _ := ctx.Value(requestIDKey).(string)
	if requestID == "" {
		requestID, _ = ctx.Value("request_id").(string)
	}
	if requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

func userField(ctx context.Context) string {
	if user, ok := ctx.Value(userKey).(contextUser); ok {
		if user.username != "" {
			return user.username
		}
		if user.id != 0 {
			return fmt.Sprintf("id:%d", user.id)
		}
	}
	if username, ok := ctx.Value("username").(string); ok && username != "" {
		return username
	}
	if userID, ok := ctx.Value("user_id").(uint); ok && userID != 0 {
		return fmt.Sprintf("id:%d", userID)
	}
	return "unknown"
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err under the standard error key
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// Setup configures the standard logger: JSON output and the given level.
// Unknown levels fall back to info.
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
