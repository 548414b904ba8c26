package sink

import "context"

// Level represents the severity of an emitted log entry.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Sink is the destination for formatted request log entries.
//
// It exposes the two call shapes a request logger needs: plain text, and
// text with a separately attached error whose rendering (stack trace
// expansion, structured field, etc.) is up to the backend.
type Sink interface {
	// Log emits text at the given level.
	Log(ctx context.Context, level Level, text string)

	// LogError emits text at the given level with err attached for the
	// backend to render alongside it.
	LogError(ctx context.Context, level Level, text string, err error)
}

// noop is a sink that discards everything.
// Used as default when no sink is provided.
type noop struct{}

func (noop) Log(ctx context.Context, level Level, text string)                 {}
func (noop) LogError(ctx context.Context, level Level, text string, err error) {}

// NewNoop returns a sink that discards everything.
func NewNoop() Sink {
	return noop{}
}
