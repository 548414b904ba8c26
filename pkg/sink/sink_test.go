package sink

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestNoop(t *testing.T) {
	s := NewNoop()

	// Must accept anything without side effects.
	s.Log(context.Background(), LevelInfo, "hello")
	s.LogError(context.Background(), LevelError, "boom", errors.New("boom"))
}

func TestZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewZap(zap.New(core))

	s.Log(context.Background(), LevelInfo, "request done")
	s.LogError(context.Background(), LevelError, "request failed", errors.New("timeout"))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "request done", entries[0].Message)
	assert.Empty(t, entries[0].Context)

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "request failed", entries[1].Message)
	require.Len(t, entries[1].Context, 1)
	assert.Equal(t, "error", entries[1].Context[0].Key)
}

func TestZap_NilLogger(t *testing.T) {
	s := NewZap(nil)
	s.Log(context.Background(), LevelInfo, "discarded")
}

func TestSlog(t *testing.T) {
	var buf bytes.Buffer
	s := NewSlog(slog.New(slog.NewJSONHandler(&buf, nil)))

	s.Log(context.Background(), LevelInfo, "request done")
	assert.Contains(t, buf.String(), `"msg":"request done"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)

	buf.Reset()
	s.LogError(context.Background(), LevelError, "request failed", errors.New("timeout"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"timeout"`)
}

// recordingOTelLogger captures emitted records for assertions.
type recordingOTelLogger struct {
	otellog.Logger
	records []otellog.Record
}

func (r *recordingOTelLogger) Emit(ctx context.Context, record otellog.Record) {
	r.records = append(r.records, record)
}

func TestOTel(t *testing.T) {
	rec := &recordingOTelLogger{}
	s := NewOTel(rec)

	s.Log(context.Background(), LevelInfo, "request done")
	s.LogError(context.Background(), LevelError, "request failed", errors.New("timeout"))

	require.Len(t, rec.records, 2)

	assert.Equal(t, "request done", rec.records[0].Body().AsString())
	assert.Equal(t, otellog.SeverityInfo, rec.records[0].Severity())
	assert.Equal(t, "info", rec.records[0].SeverityText())

	assert.Equal(t, otellog.SeverityError, rec.records[1].Severity())

	var sawException bool
	rec.records[1].WalkAttributes(func(kv otellog.KeyValue) bool {
		if kv.Key == "exception.message" {
			sawException = true
			assert.Equal(t, "timeout", kv.Value.AsString())
		}
		return true
	})
	assert.True(t, sawException, "error should be attached as exception.message")
}

func TestFake(t *testing.T) {
	f := NewFake()

	f.Log(context.Background(), LevelInfo, "one")
	f.LogError(context.Background(), LevelError, "two", errors.New("boom"))

	entries := f.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].Text)
	assert.NoError(t, entries[0].Err)
	assert.EqualError(t, entries[1].Err, "boom")

	f.Reset()
	assert.Empty(t, f.Entries())
}
