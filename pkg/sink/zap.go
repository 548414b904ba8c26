package sink

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap adapts a *zap.Logger to the Sink interface.
type Zap struct {
	logger *zap.Logger
}

// NewZap creates a zap-backed sink. A nil logger falls back to zap.NewNop.
func NewZap(logger *zap.Logger) *Zap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Zap{logger: logger}
}

// Log emits text at the given level.
func (z *Zap) Log(ctx context.Context, level Level, text string) {
	z.logger.Log(convertZapLevel(level), text)
}

// LogError emits text with err attached as a structured zap field, letting
// zap render the error chain (and stack trace, when available) itself.
func (z *Zap) LogError(ctx context.Context, level Level, text string, err error) {
	z.logger.Log(convertZapLevel(level), text, zap.Error(err))
}

// convertZapLevel converts a sink Level to a zapcore.Level.
func convertZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
