package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyCommandID is the key for storing the invocation ID in context.
	KeyCommandID ContextKey = "command_id"

	// KeyLogger is the key for storing the command-scoped logger in context.
	KeyLogger ContextKey = "logger"
)

// NewCommandID returns a fresh invocation ID.
func NewCommandID() string {
	return uuid.New().String()
}

// GetCommandIDFromContext extracts the invocation ID from context.Context.
// If not found, returns empty string.
func GetCommandIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyCommandID).(string); ok {
		return id
	}

	return ""
}

// WithCommandID returns a new context with the invocation ID.
func WithCommandID(ctx context.Context, commandID string) context.Context {
	return context.WithValue(ctx, KeyCommandID, commandID)
}

// GetLogger extracts the command-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the command-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithCommand scopes ctx to one invocation: it stores a fresh ID and a logger
// annotated with the command name and that ID.
func WithCommand(ctx context.Context, logger *slog.Logger, command string) context.Context {
	id := NewCommandID()
	scoped := logger.With(slog.String("command", command), slog.String("command_id", id))

	return WithLogger(WithCommandID(ctx, id), scoped)
}
