package sink

import (
	"context"
	"log/slog"
)

// Slog adapts a *slog.Logger to the Sink interface.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a slog-backed sink. A nil logger falls back to slog.Default.
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger}
}

// Log emits text at the given level.
func (s *Slog) Log(ctx context.Context, level Level, text string) {
	s.logger.LogAttrs(ctx, convertSlogLevel(level), text)
}

// LogError emits text with err attached as a structured attribute.
func (s *Slog) LogError(ctx context.Context, level Level, text string, err error) {
	s.logger.LogAttrs(ctx, convertSlogLevel(level), text, slog.Any("error", err))
}

// convertSlogLevel converts a sink Level to a slog.Level.
func convertSlogLevel(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
