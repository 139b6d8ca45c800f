// Package telemetry provides structured logging and Prometheus metrics
// for the simulation core and its demo host. Grounded on
// rdtc8822-debug-L1JGO-Whale/cmd/l1jgo/main.go's newLogger and
// fight-club-go/internal/api/observability.go's promauto metric
// registration.
package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig selects the level and encoder a Logger is built with,
// matching rdtc8822-debug-L1JGO-Whale/internal/config.LoggingConfig's
// two fields.
type LoggingConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json" or "console"
}

// DefaultLoggingConfig returns an info-level console logger, the
// development-friendly default the demo host starts with.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{Level: "info", Format: "console"}
}

// NewLogger builds a *zap.Logger from cfg, production-encoded JSON for
// "json" format, colorized console output otherwise — the same
// level-then-format branch as rdtc8822-debug-L1JGO-Whale's newLogger.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// NewNop returns a logger that discards everything, the library-mode
// default (spec §3.2: "nop logger by default in library use") so
// embedding internal/sim in a host that hasn't wired zap yet doesn't
// panic on a nil *zap.Logger.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
