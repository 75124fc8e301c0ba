package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Zhima-Mochi/minishop-checkout/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// System ids tag log lines emitted outside any request or event.
const (
	SystemTraceID = "system"
	SystemSpanID  = "system"
)

// NewLogger builds the process logger from cfg: JSON on stdout, mirrored to
// cfg.LogFile when set, tagged with service and env.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := levelFor(cfg)
	if err != nil {
		return nil, err
	}

	sinks := []string{"stdout"}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("logging: log dir: %w", err)
		}
		sinks = append(sinks, cfg.LogFile)
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.MessageKey = "msg"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder

	zcfg := zap.Config{
		Level:            level,
		Encoding:         "json",
		EncoderConfig:    enc,
		OutputPaths:      sinks,
		ErrorOutputPaths: sinks,
		Sampling:         &zap.SamplingConfig{Initial: 100, Thereafter: 100},
		InitialFields: map[string]any{
			"service": cfg.ServiceName,
			"env":     cfg.Env,
		},
	}
	return zcfg.Build()
}

func levelFor(cfg config.Config) (zap.AtomicLevel, error) {
	if cfg.LogLevel != "" {
		lvl, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("logging: LOG_LEVEL: %w", err)
		}
		return lvl, nil
	}
	if cfg.Env == "dev" {
		return zap.NewAtomicLevelAt(zap.DebugLevel), nil
	}
	return zap.NewAtomicLevelAt(zap.InfoLevel), nil
}

// System returns logger tagged with the system trace and span ids.
func System(logger *zap.Logger) *zap.Logger {
	return WithTrace(logger, SystemTraceID, SystemSpanID)
}

// WithTrace tags logger with trace and span ids; empty ids become "unknown".
func WithTrace(logger *zap.Logger, traceID, spanID string) *zap.Logger {
	if logger == nil {
		logger = zap.L()
	}
	if traceID == "" {
		traceID = "unknown"
	}
	if spanID == "" {
		spanID = "unknown"
	}
	return logger.With(
		zap.String("trace_id", traceID),
		zap.String("span_id", spanID),
	)
}
