package requestlog

import "errors"

// Precondition violations. These are raised as panics: callers feeding the
// logger malformed events or negative limits have a programming error, and
// silently coercing would corrupt log semantics.
var (
	ErrNegativeLatency = errors.New("latency must not be negative")
	ErrNilRequest      = errors.New("request must not be nil")
	ErrNilError        = errors.New("error completion requires a non-nil error")
	ErrNegativeLimit   = errors.New("formatting limits must not be negative")
)
