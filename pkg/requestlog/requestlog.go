package requestlog

import (
	"context"

	"github.com/JailtonJunior94/querytrack/pkg/profile"
	"github.com/JailtonJunior94/querytrack/pkg/sink"
)

// RequestLogger observes request completions and logs them according to
// live configuration. It keeps no per-event state, so a single instance is
// safe for concurrent use from every request-completion path.
type RequestLogger struct {
	cfg       profile.Profile
	sink      sink.Sink
	formatter *formatter
}

// Option is a functional option for configuring the request logger.
type Option func(*RequestLogger)

// WithPrefix sets the log-prefix tag identifying the owning session.
func WithPrefix(prefix string) Option {
	return func(l *RequestLogger) {
		if prefix != "" {
			l.formatter.prefix = prefix
		}
	}
}

// New creates a request logger reading its policy from cfg and emitting to
// s. A nil cfg behaves as an empty profile (everything disabled); a nil
// sink discards all output.
func New(cfg profile.Profile, s sink.Sink, opts ...Option) *RequestLogger {
	if cfg == nil {
		cfg = profile.NewMap()
	}
	if s == nil {
		s = sink.NewNoop()
	}

	logger := &RequestLogger{
		cfg:       cfg,
		sink:      s,
		formatter: &formatter{prefix: defaultPrefix},
	}
	for _, opt := range opts {
		opt(logger)
	}
	return logger
}

// Observe classifies a completed request and, when its category is
// currently loggable, emits a single formatted entry to the sink.
// Emission is fire-and-forget; suppressed events do no formatting work.
//
// Malformed events (negative latency, missing request or error) are
// precondition violations and panic.
func (l *RequestLogger) Observe(ctx context.Context, event CompletionEvent) {
	mustValid(event)

	category := classify(event, l.cfg)
	if category == CategorySuppressed {
		return
	}

	text, level, attached := l.formatter.format(event, category, resolveLimits(l.cfg, category))
	if attached != nil {
		l.sink.LogError(ctx, level, text, attached)
		return
	}
	l.sink.Log(ctx, level, text)
}

// mustValid panics on malformed completion events.
func mustValid(event CompletionEvent) {
	if event.Latency < 0 {
		panic(ErrNegativeLatency)
	}
	switch event.Kind {
	case KindSuccess, KindError:
		if event.Request == nil {
			panic(ErrNilRequest)
		}
	}
	switch event.Kind {
	case KindError, KindNodeError:
		if event.Err == nil {
			panic(ErrNilError)
		}
	}
}
