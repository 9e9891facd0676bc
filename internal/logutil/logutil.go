// File: internal/logutil/logutil.go
// Package logutil holds the process-wide zap logger.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package logutil

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hioload-mem/api"
)

var (
	globalLogger atomic.Pointer[zap.Logger]
	globalLevel  = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	globalLogger.Store(zap.NewNop())
}

// GetGlobalLogger returns the installed logger. It is a no-op logger until
// Setup or SetGlobalLogger runs.
func GetGlobalLogger() *zap.Logger {
	return globalLogger.Load()
}

// SetGlobalLogger installs l; nil restores the no-op logger.
func SetGlobalLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	globalLogger.Store(l)
}

// Named returns a child of the global logger.
func Named(name string) *zap.Logger {
	return GetGlobalLogger().Named(name)
}

// Setup builds a logger writing to stderr with the given level and encoding
// ("json" or "console") and installs it globally.
func Setup(level, encoding string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	globalLevel.SetLevel(lvl)

	cfg := zap.NewProductionConfig()
	cfg.Level = globalLevel
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	switch strings.ToLower(encoding) {
	case "", "json":
		cfg.Encoding = "json"
	case "console":
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, api.InvalidArgument("log.encoding", encoding)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	SetGlobalLogger(l)
	return l, nil
}

// SetLevel changes the level of loggers built by Setup without rebuilding them.
func SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	globalLevel.SetLevel(lvl)
	return nil
}

// Level reports the level shared by loggers built by Setup.
func Level() zapcore.Level {
	return globalLevel.Level()
}

// ParseLevel accepts zap level names (debug, info, warn, error, ...).
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zap.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.InfoLevel, api.InvalidArgument("log.level", level)
	}
	return lvl, nil
}
