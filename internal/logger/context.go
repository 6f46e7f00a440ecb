package logger

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	loggerKey    contextKey = "logger"
)

// RequestIDHeader carries the correlation ID between client and server
const RequestIDHeader = "X-Request-ID"

// contextFields are copied onto every entry logged through Ctx, in this order.
var contextFields = []contextKey{requestIDKey, userIDKey}

// NewRequestID returns a time-ordered UUIDv7, falling back to a random v4.
func NewRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// WithRequestID stores requestID, generating one when empty.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = NewRequestID()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// WithUserID stores the authenticated user's ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) string {
	return stringValue(ctx, userIDKey)
}

// WithLogger attaches l so downstream code can log with request scope.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the attached logger or Default.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// Ctx is FromContext enriched with the request and user IDs.
func Ctx(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}

func stringValue(ctx context.Context, key contextKey) string {
	s, _ := ctx.Value(key).(string)
	return s
}

func extractContextFields(ctx context.Context) []Field {
	var fields []Field
	for _, key := range contextFields {
		if v := stringValue(ctx, key); v != "" {
			fields = append(fields, String(string(key), v))
		}
	}
	return fields
}
