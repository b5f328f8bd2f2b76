package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

// Context keys read by WithContext. The auth and request-id middleware
// store values under these names on the gin context.
const (
	ContextKeyUser      = "user"
	ContextKeyEmail     = "email"
	ContextKeyRequestID = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logrus logger for JSON output at the given level
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

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

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the acting user and request id
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	if email, ok := ctx.Value(ContextKeyEmail).(string); ok && email != "" {
		logger.Entry = logger.Entry.WithField("user", email)
	} else if user, ok := ctx.Value(ContextKeyUser).(string); ok && user != "" {
		logger.Entry = logger.Entry.WithField("user", user)
	} else {
		logger.Entry = logger.Entry.WithField("user", "anonymous")
	}

	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
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

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
