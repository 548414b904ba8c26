package sink

import (
	"context"
	"time"

	otellog "go.opentelemetry.io/otel/log"
)

// OTel adapts an OpenTelemetry log.Logger to the Sink interface, emitting
// one log record per entry with the mapped severity.
type OTel struct {
	logger otellog.Logger
}

// NewOTel creates an OpenTelemetry-backed sink.
func NewOTel(logger otellog.Logger) *OTel {
	return &OTel{logger: logger}
}

// Log emits text as a log record at the given severity.
func (o *OTel) Log(ctx context.Context, level Level, text string) {
	o.emit(ctx, level, text, nil)
}

// LogError emits text as a log record with err rendered into an
// "exception.message" attribute.
func (o *OTel) LogError(ctx context.Context, level Level, text string, err error) {
	o.emit(ctx, level, text, err)
}

func (o *OTel) emit(ctx context.Context, level Level, text string, err error) {
	record := otellog.Record{}
	record.SetTimestamp(time.Now())
	record.SetBody(otellog.StringValue(text))
	record.SetSeverity(convertOTelSeverity(level))
	record.SetSeverityText(level.String())
	if err != nil {
		record.AddAttributes(otellog.String("exception.message", err.Error()))
	}

	o.logger.Emit(ctx, record)
}

// convertOTelSeverity converts a sink Level to an OTel log severity.
func convertOTelSeverity(level Level) otellog.Severity {
	switch level {
	case LevelDebug:
		return otellog.SeverityDebug
	case LevelWarn:
		return otellog.SeverityWarn
	case LevelError:
		return otellog.SeverityError
	default:
		return otellog.SeverityInfo
	}
}
