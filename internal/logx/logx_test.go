package logx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LovableCodezG/tplan/internal/logx"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logx.ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, logx.ParseLevel(" INFO "))
	assert.Equal(t, slog.LevelError, logx.ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, logx.ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, logx.ParseLevel("nonsense"))
}

func TestNew_filtersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logx.New(&buf, "warn")

	log.Info("hidden")
	log.Warn("shown", "day", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown day=2")
}
