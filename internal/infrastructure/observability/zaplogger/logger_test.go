package zaplogger

import (
	"errors"
	"testing"

	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Wrap(zap.New(core))

	l.With(observability.F("service", "checkout")).
		Info("use_case_done", observability.F("outcome", "success"), observability.F("error", errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "use_case_done", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "checkout", ctx["service"])
	assert.Equal(t, "success", ctx["outcome"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	l := Wrap(zap.New(core))

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	l.Error("kept")

	assert.Equal(t, 2, logs.Len())
}
