// Package logger wires this module's logr.Logger façade to a concrete zap
// backend, the same split the teacher uses: every package holds a
// logr.Logger field or accepts one at construction, and only this package
// knows about zap directly.
package logger

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logr.Logger backed by zap. level follows zapcore's text
// parsing ("debug", "info", "warn", "error"); an empty or unrecognized
// level falls back to the config's default (info in production, debug in
// development).
func New(production bool, level string) logr.Logger {
	config := zap.NewDevelopmentConfig()
	if production {
		config = zap.NewProductionConfig()
	}

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	zapLogger, err := config.Build()
	if err != nil {
		return logr.Discard()
	}

	return zapr.NewLogger(zapLogger).WithName("rtpsend")
}
