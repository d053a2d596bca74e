package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelWarn,
	}
	for in, want := range cases {
		l := newLogger(in, "text", &bytes.Buffer{})
		assert.True(t, l.Enabled(context.Background(), want), in)
		assert.False(t, l.Enabled(context.Background(), want-1), in)
	}
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	newLogger("info", "json", &buf).Info("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	newLogger("info", "text", &buf).Info("hello", "k", 1)
	assert.Contains(t, buf.String(), "msg=hello")
}
