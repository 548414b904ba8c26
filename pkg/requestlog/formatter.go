package requestlog

import (
	"strings"

	"github.com/JailtonJunior94/querytrack/pkg/profile"
	"github.com/JailtonJunior94/querytrack/pkg/sink"
)

const truncationMarker = "..."

// limits holds the formatting bounds resolved from configuration for a
// single log entry.
type limits struct {
	maxQueryLength  int
	showValues      bool
	maxValues       int
	maxValueLength  int
	showStackTraces bool
}

// resolveLimits reads the formatting bounds from configuration. The stack
// trace toggle only matters for errors, so it is not read for successes.
func resolveLimits(cfg profile.Profile, category Category) limits {
	lim := limits{
		maxQueryLength: cfg.GetInt(KeyMaxQueryLength, defaultMaxQueryLength),
		showValues:     cfg.GetBool(KeyShowValues, defaultShowValues),
		maxValues:      cfg.GetInt(KeyMaxValues, defaultMaxValues),
		maxValueLength: cfg.GetInt(KeyMaxValueLength, defaultMaxValueLength),
	}
	if category == CategoryError {
		lim.showStackTraces = cfg.GetBool(KeyShowStackTraces, defaultShowStackTraces)
	}
	return lim
}

// formatter builds textual log entries for classified completion events.
type formatter struct {
	prefix string
}

// format renders the entry for an already-classified event and returns the
// text, the severity, and an optional error to attach separately. The
// attached error is non-nil only for error entries with stack traces
// enabled; otherwise a one-line summary is embedded in the text instead.
func (f *formatter) format(event CompletionEvent, category Category, lim limits) (string, sink.Level, error) {
	if lim.maxQueryLength < 0 || lim.maxValues < 0 || lim.maxValueLength < 0 {
		panic(ErrNegativeLimit)
	}

	var b strings.Builder
	f.appendHeader(&b, event.Node)
	f.appendCategory(&b, category)
	f.appendLatency(&b, event)
	f.appendRequest(&b, event.Request, lim)

	if category != CategoryError {
		return b.String(), sink.LevelInfo, nil
	}

	if lim.showStackTraces {
		return b.String(), sink.LevelError, event.Err
	}

	b.WriteString(" [error: ")
	b.WriteString(event.Err.Error())
	b.WriteString("]")
	return b.String(), sink.LevelError, nil
}

func (f *formatter) appendHeader(b *strings.Builder, node Node) {
	b.WriteString("[")
	b.WriteString(f.prefix)
	b.WriteString("]")
	if node != nil {
		b.WriteString("[")
		b.WriteString(node.Address())
		b.WriteString("]")
	}
}

func (f *formatter) appendCategory(b *strings.Builder, category Category) {
	switch category {
	case CategorySlow:
		b.WriteString(" [Slow]")
	case CategoryError:
		b.WriteString(" [Error]")
	default:
		b.WriteString(" [Success]")
	}
}

func (f *formatter) appendLatency(b *strings.Builder, event CompletionEvent) {
	b.WriteString(" (")
	b.WriteString(event.Latency.String())
	b.WriteString(")")
}

func (f *formatter) appendRequest(b *strings.Builder, request Request, lim limits) {
	// A zero max query length omits the query text entirely.
	if lim.maxQueryLength > 0 {
		b.WriteString(" ")
		b.WriteString(truncate(request.Query(), lim.maxQueryLength))
	}

	// Values sit behind a double gate: both the toggle and a positive
	// max-values are required.
	if !lim.showValues || lim.maxValues == 0 {
		return
	}

	values := request.Values()
	if len(values) == 0 {
		return
	}

	omitted := false
	if len(values) > lim.maxValues {
		values = values[:lim.maxValues]
		omitted = true
	}

	b.WriteString(" [")
	for i, value := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		if lim.maxValueLength > 0 {
			value = truncate(value, lim.maxValueLength)
		}
		b.WriteString(value)
	}
	if omitted {
		b.WriteString(", " + truncationMarker)
	}
	b.WriteString("]")
}

// truncate cuts s to at most max characters and appends the truncation
// marker when anything was cut. The cut is applied to the raw value, before
// any quoting or escaping a backend might add.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + truncationMarker
}
