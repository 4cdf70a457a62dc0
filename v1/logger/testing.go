package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewTestLogger returns a logger backed by an in-memory observer core
// together with the captured logs. It honors the config's redaction
// policy, tracing flag and metrics hook but ignores level, format and
// output settings; every level is recorded.
//
// Intended for tests that assert on emitted records:
//
//	log, logs := logger.NewTestLogger(logger.Config{Redaction: policy})
//	log.Info("hello", nil, map[string]interface{}{"password": "p1"})
//	entries := logs.All()
func NewTestLogger(cfg Config) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{
		Zap:            zap.New(core),
		redaction:      cfg.Redaction,
		tracingEnabled: cfg.EnableTracing,
		counter:        cfg.Metrics,
	}, logs
}
