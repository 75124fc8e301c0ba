package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Zhima-Mochi/minishop-checkout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithTraceDefaultsUnknown(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	WithTrace(zap.New(core), "", "").Info("boot")
	System(zap.New(core)).Info("boot")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "unknown", entries[0].ContextMap()["trace_id"])
	assert.Equal(t, "unknown", entries[0].ContextMap()["span_id"])
	assert.Equal(t, "system", entries[1].ContextMap()["trace_id"])
	assert.Equal(t, "system", entries[1].ContextMap()["span_id"])
}

func TestNewLoggerWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, err := NewLogger(config.Config{ServiceName: "minishop-checkout", Env: "test", LogFile: path})
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"service":"minishop-checkout"`)
	assert.Contains(t, string(data), `"env":"test"`)
}

func TestNewLoggerLevel(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		want zapcore.Level
	}{
		{"dev defaults to debug", config.Config{Env: "dev"}, zap.DebugLevel},
		{"prod defaults to info", config.Config{Env: "prod"}, zap.InfoLevel},
		{"explicit level wins", config.Config{Env: "dev", LogLevel: "warn"}, zap.WarnLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := NewLogger(tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, logger.Level())
		})
	}

	_, err := NewLogger(config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}
