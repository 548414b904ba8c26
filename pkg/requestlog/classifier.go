package requestlog

import "github.com/JailtonJunior94/querytrack/pkg/profile"

// Category is the logging decision for a single completion event.
type Category int8

const (
	// CategorySuppressed means no log entry is produced.
	CategorySuppressed Category = iota
	// CategorySuccess is a normal successful request.
	CategorySuccess
	// CategorySlow is a successful request above the slow threshold.
	CategorySlow
	// CategoryError is a failed request.
	CategoryError
)

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case CategorySuppressed:
		return "suppressed"
	case CategorySuccess:
		return "success"
	case CategorySlow:
		return "slow"
	case CategoryError:
		return "error"
	default:
		return "unknown"
	}
}

// classify decides whether and how event should be logged under the current
// configuration. Boolean gates are read before the threshold so a fully
// disabled logger costs two lookups on the success path and one on the
// error path.
func classify(event CompletionEvent, cfg profile.Profile) Category {
	switch event.Kind {
	case KindSuccess:
		successEnabled := cfg.GetBool(KeySuccessEnabled, defaultSuccessEnabled)
		slowEnabled := cfg.GetBool(KeySlowEnabled, defaultSlowEnabled)
		if !successEnabled && !slowEnabled {
			return CategorySuppressed
		}

		// Threshold is exclusive: a latency exactly at the threshold is
		// still a normal success.
		isSlow := event.Latency > cfg.GetDuration(KeySlowThreshold, defaultSlowThreshold)
		switch {
		case isSlow && !slowEnabled:
			return CategorySuppressed
		case !isSlow && !successEnabled:
			return CategorySuppressed
		case isSlow:
			return CategorySlow
		default:
			return CategorySuccess
		}

	case KindError:
		if !cfg.GetBool(KeyErrorEnabled, defaultErrorEnabled) {
			return CategorySuppressed
		}
		return CategoryError

	case KindNodeSuccess, KindNodeError:
		// Node-scoped completions carry no logging policy of their own.
		return CategorySuppressed

	default:
		return CategorySuppressed
	}
}
