package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "debug")
	ctx := context.Background()

	log.Debug(ctx, "sending", "method", "GET")
	log.Info(ctx, "refreshed", "status", 200)
	log.Warn(ctx, "cleared", "reason", "refresh failed")
	log.Error(ctx, "broken", "code", 500)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=sending", "method=GET",
		"level=INFO", "msg=refreshed", "status=200",
		"level=WARN", "msg=cleared",
		"level=ERROR", "msg=broken", "code=500",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "warn")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "info").With("component", "client")

	log.Info(context.Background(), "hello", "k", "v")

	require.Contains(t, buf.String(), "component=client")
	require.Contains(t, buf.String(), "k=v")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	var l Logger = Nop{}
	l = l.With("a", 1)
	l.Debug(context.Background(), "x")
	l.Info(context.Background(), "x")
	l.Warn(context.Background(), "x")
	l.Error(context.Background(), "x")
}
