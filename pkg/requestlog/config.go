package requestlog

import (
	"math"
	"time"
)

// Configuration keys resolved against the profile on every observed
// completion, so values can change at runtime without rebuilding the logger.
const (
	KeySuccessEnabled  = "request-logger.success.enabled"
	KeySlowEnabled     = "request-logger.slow.enabled"
	KeySlowThreshold   = "request-logger.slow.threshold"
	KeyErrorEnabled    = "request-logger.error.enabled"
	KeyMaxQueryLength  = "request-logger.max-query-length"
	KeyShowValues      = "request-logger.show-values"
	KeyMaxValues       = "request-logger.max-values"
	KeyMaxValueLength  = "request-logger.max-value-length"
	KeyShowStackTraces = "request-logger.show-stack-traces"
)

const (
	defaultSuccessEnabled  = false
	defaultSlowEnabled     = false
	defaultErrorEnabled    = false
	defaultMaxQueryLength  = 500
	defaultShowValues      = false
	defaultMaxValues       = 0
	defaultMaxValueLength  = 0
	defaultShowStackTraces = false

	// Without a configured threshold nothing is ever slow.
	defaultSlowThreshold = time.Duration(math.MaxInt64)

	defaultPrefix = "s0"
)
